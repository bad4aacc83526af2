package nats

import (
	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"president.com/server/cards"
	"president.com/server/game"
	"president.com/server/logging"
)

var natsLogger = log.With().Str("logger_name", "nats::session").Logger()

var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// For each session, clients hear state on two subject families and
// send intents on one:
//
//	president.<code>.game        session -> all seats
//	president.<code>.seat.<id>   session -> one seat (private hand)
//	president.<code>.intent      seat -> session
type NatsSession struct {
	sessionCode string

	session2AllSubject string
	intentSubject      string

	intentSubscription *natsgo.Subscription
	natsConn           *natsgo.Conn

	resolveSession func(code string) (*game.Session, error)
}

// IntentMessage is the inbound shape on the intent subject.
type IntentMessage struct {
	Action string   `json:"action"`
	SeatID string   `json:"seatId"`
	Name   string   `json:"name"`
	Cards  []string `json:"cards,omitempty"`
}

// Connect dials the NATS server.
func Connect(url string) (*natsgo.Conn, error) {
	nc, err := natsgo.Connect(url)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to connect to NATS server at %s", url)
	}
	return nc, nil
}

// NewNatsSession wires a session's outbound events and inbound intents
// to its subjects. The session itself is resolved per intent; the
// adapter is created before the registry finishes minting the session.
func NewNatsSession(nc *natsgo.Conn, sessionCode string,
	resolveSession func(code string) (*game.Session, error)) (*NatsSession, error) {
	n := &NatsSession{
		sessionCode:        sessionCode,
		session2AllSubject: GetSession2AllSeatsSubject(sessionCode),
		intentSubject:      GetSeat2SessionSubject(sessionCode),
		natsConn:           nc,
		resolveSession:     resolveSession,
	}
	var err error
	n.intentSubscription, err = nc.Subscribe(n.intentSubject, n.onIntent)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to subscribe to %s", n.intentSubject)
	}
	return n, nil
}

func (n *NatsSession) Cleanup() {
	if n.intentSubscription != nil {
		n.intentSubscription.Unsubscribe()
	}
}

func (n *NatsSession) BroadcastSessionMessage(message *game.SessionMessage) {
	n.publish(n.session2AllSubject, message)
}

func (n *NatsSession) SendSeatMessage(seatID string, message *game.SessionMessage) {
	n.publish(GetSession2SeatSubject(n.sessionCode, seatID), message)
}

func (n *NatsSession) publish(subject string, message *game.SessionMessage) {
	data, err := wireJSON.Marshal(message)
	if err != nil {
		natsLogger.Error().
			Str(logging.SessionCodeKey, n.sessionCode).
			Str(logging.MsgTypeKey, message.Type).
			Msgf("Failed to marshal session message: %v", err)
		return
	}
	if err := n.natsConn.Publish(subject, data); err != nil {
		natsLogger.Error().
			Str(logging.SessionCodeKey, n.sessionCode).
			Str(logging.MsgTypeKey, message.Type).
			Msgf("Failed to publish to %s: %v", subject, err)
	}
}

func (n *NatsSession) onIntent(msg *natsgo.Msg) {
	session, err := n.resolveSession(n.sessionCode)
	if err != nil {
		natsLogger.Info().
			Str(logging.SessionCodeKey, n.sessionCode).
			Msgf("Dropping intent for unknown session: %v", err)
		return
	}
	var intent IntentMessage
	if err := wireJSON.Unmarshal(msg.Data, &intent); err != nil {
		natsLogger.Error().
			Str(logging.SessionCodeKey, n.sessionCode).
			Msgf("Dropping unparseable intent: %v", err)
		return
	}
	if err := n.dispatch(session, &intent); err != nil {
		natsLogger.Info().
			Str(logging.SessionCodeKey, n.sessionCode).
			Str(logging.SeatIDKey, intent.SeatID).
			Msgf("Rejected %s intent: %v", intent.Action, err)
	}
}

func (n *NatsSession) dispatch(session *game.Session, intent *IntentMessage) error {
	switch intent.Action {
	case "play":
		cs, err := cards.Parse(intent.Cards)
		if err != nil {
			return err
		}
		return session.PlayMeld(intent.SeatID, cs)
	case "pass":
		return session.Pass(intent.SeatID)
	case "exchange":
		cs, err := cards.Parse(intent.Cards)
		if err != nil {
			return err
		}
		return session.SubmitExchange(intent.SeatID, cs)
	case "start":
		return session.StartDealing()
	case "leave":
		return session.LeaveSeat(intent.SeatID)
	default:
		return errors.Errorf("unknown intent action [%s]", intent.Action)
	}
}
