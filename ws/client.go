package ws

import (
	"context"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"president.com/server/cards"
	"president.com/server/game"
	"president.com/server/logging"
)

// ClientIntent is the inbound shape on a websocket connection.
type ClientIntent struct {
	Action string   `json:"action"`
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Cards  []string `json:"cards,omitempty"`
}

type errorEvent struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// HandleWS upgrades the connection and runs its read loop. A client
// joins a room with a join intent; after that its seat identity lives
// on the subscriber and every further intent is dispatched by seat.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		hubLogger.Info().Msgf("Failed to accept websocket connection: %v", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	sub := &subscriber{
		msgs: make(chan []byte, h.subscriberMessageBuffer),
	}
	sub.closeSlow = func() {
		conn.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with messages")
	}

	ctx := r.Context()
	joinedCode := ""
	defer func() {
		if joinedCode != "" {
			h.deleteSubscriber(joinedCode, sub)
		}
	}()

	go writeLoop(ctx, conn, sub)

	limiter := newIntentLimiter()
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var intent ClientIntent
		if err := wireJSON.Unmarshal(data, &intent); err != nil {
			h.sendError(ctx, conn, "bad_intent", "could not parse intent")
			continue
		}
		if intent.Action == "join" || intent.Action == "watch" {
			code, err := h.handleJoin(sub, &intent)
			if err != nil {
				h.sendError(ctx, conn, errorCode(err), err.Error())
				continue
			}
			if joinedCode != "" && joinedCode != code {
				h.deleteSubscriber(joinedCode, sub)
			}
			joinedCode = code
			continue
		}
		if joinedCode == "" {
			h.sendError(ctx, conn, "not_joined", "join a session first")
			continue
		}
		if err := h.dispatch(joinedCode, sub, &intent); err != nil {
			h.sendError(ctx, conn, errorCode(err), err.Error())
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, sub *subscriber) {
	for {
		select {
		case msg := <-sub.msgs:
			writeCtx, cancel := context.WithTimeout(ctx, time.Second*5)
			err := conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleJoin(sub *subscriber, intent *ClientIntent) (string, error) {
	session, err := h.manager.SessionByCode(intent.Code)
	if err != nil {
		return "", err
	}
	if intent.Action == "join" {
		seatID, err := session.JoinSeat(intent.Name, true)
		if err != nil {
			return "", err
		}
		sub.seatID = seatID
	}
	h.addSubscriber(session.Code(), sub)

	snapshot := session.Snapshot(sub.seatID)
	if data, err := wireJSON.Marshal(snapshot); err == nil {
		select {
		case sub.msgs <- data:
		default:
		}
	}
	hubLogger.Info().
		Str(logging.SessionCodeKey, session.Code()).
		Str(logging.SeatIDKey, sub.seatID).
		Msgf("Websocket client joined (%s)", intent.Action)
	return session.Code(), nil
}

func (h *Hub) dispatch(code string, sub *subscriber, intent *ClientIntent) error {
	session, err := h.manager.SessionByCode(code)
	if err != nil {
		return err
	}
	switch intent.Action {
	case "start":
		return session.StartDealing()
	case "play":
		cs, err := cards.Parse(intent.Cards)
		if err != nil {
			return err
		}
		return session.PlayMeld(sub.seatID, cs)
	case "pass":
		return session.Pass(sub.seatID)
	case "exchange":
		cs, err := cards.Parse(intent.Cards)
		if err != nil {
			return err
		}
		return session.SubmitExchange(sub.seatID, cs)
	case "leave":
		return session.LeaveSeat(sub.seatID)
	case "state":
		snapshot := session.Snapshot(sub.seatID)
		if data, err := wireJSON.Marshal(snapshot); err == nil {
			select {
			case sub.msgs <- data:
			default:
			}
		}
		return nil
	default:
		return &game.ValidationError{Code: "bad_intent", Reason: "unknown action " + intent.Action}
	}
}

func (h *Hub) sendError(ctx context.Context, conn *websocket.Conn, code string, reason string) {
	data, err := wireJSON.Marshal(&errorEvent{Type: "ERROR", Code: code, Reason: reason})
	if err != nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	conn.Write(writeCtx, websocket.MessageText, data)
}

func errorCode(err error) string {
	if verr, ok := err.(*game.ValidationError); ok {
		return verr.Code
	}
	return "internal"
}
