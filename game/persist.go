package game

import (
	jsoniter "github.com/json-iterator/go"

	"president.com/server/cards"
)

var persistJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionRecord is the serialized shape of a session, written after
// every accepted mutation so a crashed server can resume its tables.
type SessionRecord struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Options     Options          `json:"options"`
	State       string           `json:"state"`
	Round       int              `json:"round"`
	Halted      bool             `json:"halted"`
	Seats       []SeatRecord     `json:"seats"`
	Table       TableRecord      `json:"table"`
	CursorOrder []int            `json:"cursorOrder,omitempty"`
	CursorPos   int              `json:"cursorPos"`
	Elimination []int            `json:"elimination,omitempty"`
	Dealt       []int            `json:"dealt,omitempty"`
	Pending     map[int][]string `json:"pendingExchange,omitempty"`
	Owed        map[int]int      `json:"exchangeCount,omitempty"`
}

type SeatRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Index        int      `json:"index"`
	Occupied     bool     `json:"occupied"`
	Attended     bool     `json:"attended"`
	Cards        []string `json:"cards"`
	FinishedRank int      `json:"finishedRank"`
	Role         int      `json:"role"`
}

type TableRecord struct {
	Cards    []string `json:"cards,omitempty"`
	OwnerIdx int      `json:"ownerIdx"`
	Passed   []int    `json:"passed,omitempty"`
}

// SessionTracker stores session records keyed by session code.
type SessionTracker interface {
	Load(code string) (*SessionRecord, error)
	Save(code string, record *SessionRecord) error
	Remove(code string) error
}

func (s *Session) buildRecord() *SessionRecord {
	record := &SessionRecord{
		ID:          s.id,
		Code:        s.code,
		Options:     s.options,
		State:       string(s.state),
		Round:       s.round,
		Halted:      s.halted,
		Table: TableRecord{
			OwnerIdx: s.table.OwnerIdx,
		},
		Elimination: s.elimination,
		Dealt:       s.dealt,
	}
	if !s.table.Meld.IsEmpty() {
		record.Table.Cards = cards.ToStrings(s.table.Meld.Cards)
	}
	for idx := range s.table.Passed {
		record.Table.Passed = append(record.Table.Passed, idx)
	}
	if s.cursor != nil {
		record.CursorOrder = s.cursor.order
		record.CursorPos = s.cursor.current
	}
	for _, seat := range s.seats {
		record.Seats = append(record.Seats, SeatRecord{
			ID:           seat.ID,
			Name:         seat.Name,
			Index:        seat.Index,
			Occupied:     seat.Occupied,
			Attended:     seat.Attended,
			Cards:        cards.ToStrings(seat.Hand.Cards()),
			FinishedRank: seat.FinishedRank,
			Role:         int(seat.Role),
		})
	}
	if s.pendingExchange != nil {
		record.Pending = make(map[int][]string)
		for idx, selection := range s.pendingExchange {
			record.Pending[idx] = cards.ToStrings(selection)
		}
	}
	if s.exchangeCount != nil {
		record.Owed = make(map[int]int)
		for idx, n := range s.exchangeCount {
			record.Owed[idx] = n
		}
	}
	return record
}

func (s *Session) saveState() {
	if s.tracker == nil {
		return
	}
	if err := s.tracker.Save(s.code, s.buildRecord()); err != nil {
		s.log.Error().Msgf("Failed to persist session state: %v", err)
	}
}
