package game

// Outbound message types. The boundary layer decides how and when to
// deliver these; the engine only produces them.
const (
	MessageNewRound         string = "NEW_ROUND"
	MessageDealCards        string = "DEAL"
	MessageMeldPlayed       string = "MELD_PLAYED"
	MessagePlayerPassed     string = "PLAYER_PASSED"
	MessageTableCleared     string = "TABLE_CLEARED"
	MessageSeatFinished     string = "SEAT_FINISHED"
	MessageRoundEnded       string = "ROUND_ENDED"
	MessageExchangeProgress string = "EXCHANGE_PROGRESS"
	MessageExchangeComplete string = "EXCHANGE_COMPLETE"
	MessageSeatUpdate       string = "SEAT_UPDATE"
	MessageGameUpdate       string = "UPDATE"
	MessageSessionHalted    string = "SESSION_HALTED"
)

// SeatStatus is the outward view of a seat. Hands are never included
// here; full hands travel only in seat-private messages.
type SeatStatus struct {
	SeatID       string `json:"seatId"`
	Name         string `json:"name"`
	Index        int    `json:"index"`
	Occupied     bool   `json:"occupied"`
	Automated    bool   `json:"automated"`
	CardCount    int    `json:"cardCount"`
	IsTurn       bool   `json:"isTurn"`
	Role         string `json:"role"`
	FinishedRank int    `json:"finishedRank,omitempty"`
}

// SessionMessage is the single outward message shape. Fields are
// populated per message type; unused fields are omitted on the wire.
type SessionMessage struct {
	Type        string            `json:"type"`
	Code        string            `json:"code"`
	Round       int               `json:"round"`
	State       string            `json:"state"`
	Seats       []SeatStatus      `json:"seats,omitempty"`
	CurrentSeat string            `json:"currentSeat,omitempty"`
	SeatID      string            `json:"seatId,omitempty"`
	Cards       []string          `json:"cards,omitempty"`
	TableMeld   []string          `json:"tableMeld,omitempty"`
	MeldType    string            `json:"meldType,omitempty"`
	OwnerSeat   string            `json:"ownerSeat,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	Elimination []string          `json:"elimination,omitempty"`
	Roles       map[string]string `json:"roles,omitempty"`
	Waiting     []string          `json:"waitingOn,omitempty"`
}

// MessageReceiver is implemented by boundary adapters (websocket room,
// NATS fanout, test observers). Any push-capable channel suffices.
type MessageReceiver interface {
	BroadcastSessionMessage(message *SessionMessage)
	SendSeatMessage(seatID string, message *SessionMessage)
}

type teeReceiver struct {
	receivers []MessageReceiver
}

// CombineReceivers fans one event stream out to several receivers.
func CombineReceivers(receivers ...MessageReceiver) MessageReceiver {
	return &teeReceiver{receivers: receivers}
}

func (t *teeReceiver) BroadcastSessionMessage(message *SessionMessage) {
	for _, r := range t.receivers {
		r.BroadcastSessionMessage(message)
	}
}

func (t *teeReceiver) SendSeatMessage(seatID string, message *SessionMessage) {
	for _, r := range t.receivers {
		r.SendSeatMessage(seatID, message)
	}
}
