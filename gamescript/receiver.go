package gamescript

import (
	"sync"

	"president.com/server/game"
)

// CollectingReceiver captures the engine's outbound events so scripts
// and tests can assert on them.
type CollectingReceiver struct {
	mu         sync.Mutex
	broadcasts []*game.SessionMessage
	seatMsgs   map[string][]*game.SessionMessage
}

func NewCollectingReceiver() *CollectingReceiver {
	return &CollectingReceiver{
		seatMsgs: make(map[string][]*game.SessionMessage),
	}
}

func (c *CollectingReceiver) BroadcastSessionMessage(message *game.SessionMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broadcasts = append(c.broadcasts, message)
}

func (c *CollectingReceiver) SendSeatMessage(seatID string, message *game.SessionMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seatMsgs[seatID] = append(c.seatMsgs[seatID], message)
}

// LastBroadcast returns the most recent broadcast of the given type.
func (c *CollectingReceiver) LastBroadcast(msgType string) *game.SessionMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.broadcasts) - 1; i >= 0; i-- {
		if c.broadcasts[i].Type == msgType {
			return c.broadcasts[i]
		}
	}
	return nil
}

// Broadcasts returns every broadcast of the given type in order.
func (c *CollectingReceiver) Broadcasts(msgType string) []*game.SessionMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*game.SessionMessage
	for _, m := range c.broadcasts {
		if m.Type == msgType {
			out = append(out, m)
		}
	}
	return out
}

// SeatMessages returns the private messages sent to one seat.
func (c *CollectingReceiver) SeatMessages(seatID string) []*game.SessionMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seatMsgs[seatID]
}
