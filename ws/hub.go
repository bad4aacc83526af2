package ws

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"president.com/server/game"
	"president.com/server/logging"
)

var hubLogger = log.With().Str("logger_name", "ws::hub").Logger()

var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// subscriber is one websocket connection inside a room. Messages are
// buffered; a subscriber that cannot keep up is closed rather than
// allowed to stall the room.
type subscriber struct {
	msgs      chan []byte
	seatID    string
	closeSlow func()
}

// Hub tracks every connected client by session code and pushes the
// engine's outbound events to them.
type Hub struct {
	subscriberMessageBuffer int
	publishLimiter          *rate.Limiter

	mu    sync.Mutex
	rooms map[string]map[*subscriber]struct{}

	manager *game.Manager
}

// newIntentLimiter paces the read loop of a single connection.
func newIntentLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Millisecond*100), 10)
}

func NewHub(manager *game.Manager) *Hub {
	return &Hub{
		subscriberMessageBuffer: 16,
		publishLimiter:          rate.NewLimiter(rate.Every(time.Millisecond*10), 50),
		rooms:                   make(map[string]map[*subscriber]struct{}),
		manager:                 manager,
	}
}

func (h *Hub) addSubscriber(code string, s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[code]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[code] = room
	}
	room[s] = struct{}{}
}

func (h *Hub) deleteSubscriber(code string, s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room, ok := h.rooms[code]; ok {
		delete(room, s)
		if len(room) == 0 {
			delete(h.rooms, code)
		}
	}
}

// publish pushes data to the room, or to the one subscriber attached
// to seatID when it is non-empty.
func (h *Hub) publish(code string, seatID string, data []byte) {
	h.publishLimiter.Wait(context.Background())

	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.rooms[code] {
		if seatID != "" && s.seatID != seatID {
			continue
		}
		select {
		case s.msgs <- data:
		default:
			go s.closeSlow()
		}
	}
}

// RoomReceiver adapts one session's event stream onto the hub.
type RoomReceiver struct {
	hub  *Hub
	code string
}

func NewRoomReceiver(hub *Hub, code string) *RoomReceiver {
	return &RoomReceiver{hub: hub, code: code}
}

func (r *RoomReceiver) BroadcastSessionMessage(message *game.SessionMessage) {
	r.send("", message)
}

func (r *RoomReceiver) SendSeatMessage(seatID string, message *game.SessionMessage) {
	r.send(seatID, message)
}

func (r *RoomReceiver) send(seatID string, message *game.SessionMessage) {
	data, err := wireJSON.Marshal(message)
	if err != nil {
		hubLogger.Error().
			Str(logging.SessionCodeKey, r.code).
			Str(logging.MsgTypeKey, message.Type).
			Msgf("Failed to marshal session message: %v", err)
		return
	}
	r.hub.publish(r.code, seatID, data)
}
