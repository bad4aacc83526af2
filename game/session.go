package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"president.com/server/cards"
	"president.com/server/logging"
	"president.com/server/util"
)

var sessionLogger = log.With().Str("logger_name", "game::session").Logger()

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseWaiting       Phase = "waiting"
	PhaseDealing       Phase = "dealing"
	PhasePlaying       Phase = "playing"
	PhaseRoundComplete Phase = "round_complete"
	PhaseExchanging    Phase = "exchanging"
)

// TableState holds the meld to beat and the passes accumulated since
// it was played.
type TableState struct {
	Meld     Meld
	OwnerIdx int
	Passed   map[int]bool
}

// Session is the single owner of all mutable game data for one table.
// Every public operation serializes on the session mutex; automation
// for unattended seats runs inside the same critical section as the
// intent that triggered it.
type Session struct {
	id      string
	code    string
	options Options

	seats       []*Seat
	table       TableState
	cursor      *turnCursor
	state       Phase
	round       int
	elimination []int // seat indices in finishing order
	dealt       []int // seat indices participating in the current round

	pendingExchange map[int][]cards.Card
	exchangeCount   map[int]int

	receiver MessageReceiver
	tracker  SessionTracker
	randSrc  rand.Source

	scriptedDeck []cards.Card

	halted bool
	log    zerolog.Logger

	lock chan struct{}
}

// NewSession validates options and creates an empty session in the
// Waiting phase. Seat IDs are minted up front so seat identity stays
// stable across occupant changes.
func NewSession(id string, code string, o Options, receiver MessageReceiver,
	tracker SessionTracker, src rand.Source) (*Session, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	seats := make([]*Seat, o.Seats)
	for i := range seats {
		seats[i] = &Seat{
			ID:    newSeatID(),
			Index: i,
			Hand:  NewHand(),
		}
	}

	s := &Session{
		id:       id,
		code:     code,
		options:  o,
		seats:    seats,
		table:    TableState{OwnerIdx: -1, Passed: make(map[int]bool)},
		state:    PhaseWaiting,
		receiver: receiver,
		tracker:  tracker,
		randSrc:  src,
		log: sessionLogger.With().
			Str(logging.SessionIDKey, id).
			Str(logging.SessionCodeKey, code).
			Logger(),
		lock: make(chan struct{}, 1),
	}
	s.lock <- struct{}{}
	return s, nil
}

func (s *Session) acquire() {
	<-s.lock
}

func (s *Session) release() {
	s.lock <- struct{}{}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Code() string {
	return s.code
}

func (s *Session) Options() Options {
	return s.options
}

// State returns the current lifecycle phase.
func (s *Session) State() Phase {
	s.acquire()
	defer s.release()
	return s.state
}

// Halted reports whether an invariant violation stopped the session.
func (s *Session) Halted() bool {
	s.acquire()
	defer s.release()
	return s.halted
}

// Round returns the current round number (1-based after the first deal).
func (s *Session) Round() int {
	s.acquire()
	defer s.release()
	return s.round
}

// SetScriptedDeck pins the deal order for scripted games and tests.
func (s *Session) SetScriptedDeck(deck []cards.Card) {
	s.acquire()
	defer s.release()
	s.scriptedDeck = make([]cards.Card, len(deck))
	copy(s.scriptedDeck, deck)
}

// JoinSeat seats a new occupant. While waiting, occupants fill seats
// in order; once a game is under way only vacated seats can be taken,
// in place, inheriting the hand that seat already holds.
func (s *Session) JoinSeat(name string, attended bool) (string, error) {
	s.acquire()
	defer s.release()

	if s.halted {
		return "", newValidationError(ErrCodeHalted, "session is halted")
	}
	for _, seat := range s.seats {
		if seat.Occupied {
			continue
		}
		if s.state != PhaseWaiting && !s.seatDealt(seat.Index) {
			// Mid-game joins may only replace a vacated, dealt seat.
			continue
		}
		seat.Name = name
		seat.Occupied = true
		seat.Attended = attended
		s.log.Info().
			Str(logging.SeatNameKey, name).
			Int(logging.SeatNumKey, seat.Index).
			Msgf("Seat joined (attended=%v)", attended)
		s.broadcast(s.seatUpdateMessage(seat))
		return seat.ID, nil
	}
	if s.state == PhaseWaiting {
		return "", newValidationError(ErrCodeSessionFull, "all %d seats are occupied", len(s.seats))
	}
	return "", newValidationError(ErrCodeNotJoinable, "no vacated seat to take over")
}

// LeaveSeat vacates a seat. The round continues; the sequencer skips
// the seat from now on and a later joiner may replace it in place.
func (s *Session) LeaveSeat(seatID string) error {
	s.acquire()
	defer s.release()

	seat := s.seatByID(seatID)
	if seat == nil || !seat.Occupied {
		return newValidationError(ErrCodeNoSuchSeat, "seat %s is not occupied", seatID)
	}
	seat.Occupied = false
	seat.Attended = false
	s.log.Info().Int(logging.SeatNumKey, seat.Index).Msg("Seat vacated")
	s.broadcast(s.seatUpdateMessage(seat))

	if s.state == PhasePlaying && s.cursor != nil && s.cursor.currentSeat() == seat.Index {
		if s.activeCount() <= 1 {
			s.completeRound()
		} else if _, ok := s.cursor.advance(s.eligible); !ok {
			s.haltWith("no valid next seat after seat %d vacated", seat.Index)
		}
	}
	s.driveAutomation()
	s.saveState()
	return nil
}

// StartDealing begins the first round once at least two seats are taken.
func (s *Session) StartDealing() error {
	s.acquire()
	defer s.release()

	if s.halted {
		return newValidationError(ErrCodeHalted, "session is halted")
	}
	if s.state != PhaseWaiting {
		return newValidationError(ErrCodeWrongState, "cannot deal in state %s", s.state)
	}
	occupied := 0
	for _, seat := range s.seats {
		if seat.Occupied {
			occupied++
		}
	}
	if occupied < minSeats {
		return newValidationError(ErrCodeWrongState, "need at least %d seated players, have %d", minSeats, occupied)
	}
	s.deal()
	s.driveAutomation()
	s.saveState()
	return nil
}

// PlayMeld handles a play intent for a seat.
func (s *Session) PlayMeld(seatID string, cs []cards.Card) error {
	s.acquire()
	defer s.release()

	if s.halted {
		return newValidationError(ErrCodeHalted, "session is halted")
	}
	seat := s.seatByID(seatID)
	if seat == nil {
		return newValidationError(ErrCodeNoSuchSeat, "unknown seat %s", seatID)
	}
	if err := s.tryPlay(seat.Index, cs); err != nil {
		return err
	}
	s.driveAutomation()
	s.saveState()
	return nil
}

// Pass handles a pass intent for a seat.
func (s *Session) Pass(seatID string) error {
	s.acquire()
	defer s.release()

	if s.halted {
		return newValidationError(ErrCodeHalted, "session is halted")
	}
	seat := s.seatByID(seatID)
	if seat == nil {
		return newValidationError(ErrCodeNoSuchSeat, "unknown seat %s", seatID)
	}
	if err := s.tryPass(seat.Index); err != nil {
		return err
	}
	s.driveAutomation()
	s.saveState()
	return nil
}

// SubmitExchange records a role holder's swap selection.
func (s *Session) SubmitExchange(seatID string, cs []cards.Card) error {
	s.acquire()
	defer s.release()

	if s.halted {
		return newValidationError(ErrCodeHalted, "session is halted")
	}
	seat := s.seatByID(seatID)
	if seat == nil {
		return newValidationError(ErrCodeNoSuchSeat, "unknown seat %s", seatID)
	}
	if err := s.submitExchange(seat.Index, cs); err != nil {
		return err
	}
	s.driveAutomation()
	s.saveState()
	return nil
}

// Drive runs pending automation. Boundary layers call it to resume
// bot-only tables; pacing between calls is their concern, the engine
// stays correct with zero delay.
func (s *Session) Drive() {
	s.acquire()
	defer s.release()
	s.driveAutomation()
	s.saveState()
}

// Snapshot builds the outward state view. When forSeatID names a seat,
// that seat's full hand is included; other hands never leave the core.
func (s *Session) Snapshot(forSeatID string) *SessionMessage {
	s.acquire()
	defer s.release()

	msg := s.updateMessage()
	msg.Type = MessageGameUpdate
	if seat := s.seatByID(forSeatID); seat != nil {
		msg.SeatID = seat.ID
		msg.Cards = cards.ToStrings(seat.Hand.Cards())
	}
	return msg
}

// --- internals; every function below runs with the session lock held ---

func (s *Session) seatByID(seatID string) *Seat {
	for _, seat := range s.seats {
		if seat.ID == seatID {
			return seat
		}
	}
	return nil
}

func (s *Session) seatDealt(idx int) bool {
	for _, d := range s.dealt {
		if d == idx {
			return true
		}
	}
	return false
}

func (s *Session) eligible(idx int) bool {
	return s.seats[idx].active()
}

func (s *Session) activeCount() int {
	count := 0
	for _, seat := range s.seats {
		if seat.active() {
			count++
		}
	}
	return count
}

func (s *Session) hasAttendedSeat() bool {
	for _, seat := range s.seats {
		if seat.Occupied && seat.Attended {
			return true
		}
	}
	return false
}

// deal shuffles a fresh deck, partitions it round-robin across the
// occupied seats and moves the session into Playing.
func (s *Session) deal() {
	s.state = PhaseDealing
	s.round++

	// Roles survive the deal: the exchange phase that follows a deal
	// consumes the roles computed from the previous round.
	s.dealt = s.dealt[:0]
	for _, seat := range s.seats {
		seat.Hand.reset()
		seat.FinishedRank = 0
		if seat.Occupied {
			s.dealt = append(s.dealt, seat.Index)
		}
	}
	s.elimination = nil
	s.clearTable()
	s.pendingExchange = nil
	s.exchangeCount = nil

	var deck *cards.Deck
	if s.scriptedDeck != nil {
		deck = cards.NewDeckFromCards(s.scriptedDeck)
	} else {
		deck = cards.NewDeck(s.options.NumDecks, s.randSrc)
	}
	for i := 0; !deck.Empty(); i++ {
		idx := s.dealt[i%len(s.dealt)]
		s.seats[idx].Hand.AddAll(deck.Draw(1))
	}
	for _, idx := range s.dealt {
		s.seats[idx].Hand.SortByPower(s.options)
	}

	order := make([]int, len(s.dealt))
	copy(order, s.dealt)
	s.cursor = newTurnCursor(order, 0)
	s.state = PhasePlaying

	s.log.Info().
		Int(logging.RoundNumKey, s.round).
		Msgf("Dealt %d cards across %d seats", cards.DeckSize*s.options.NumDecks, len(s.dealt))

	msg := s.updateMessage()
	msg.Type = MessageNewRound
	s.broadcast(msg)
	for _, idx := range s.dealt {
		seat := s.seats[idx]
		private := s.updateMessage()
		private.Type = MessageDealCards
		private.SeatID = seat.ID
		private.Cards = cards.ToStrings(seat.Hand.Cards())
		s.sendToSeat(seat.ID, private)
	}
}

func (s *Session) tryPlay(seatIdx int, cs []cards.Card) error {
	if s.state != PhasePlaying {
		return newValidationError(ErrCodeWrongState, "cannot play in state %s", s.state)
	}
	seat := s.seats[seatIdx]
	if seat.finished() {
		return newValidationError(ErrCodeSeatFinished, "seat %d already finished", seatIdx)
	}
	if s.cursor.currentSeat() != seatIdx {
		return newValidationError(ErrCodeNotYourTurn, "it is not seat %d's turn", seatIdx)
	}
	if !seat.Hand.ContainsAll(cs) {
		return newValidationError(ErrCodeCardNotInHand, "seat %d does not hold all of %s", seatIdx, cards.CardsToString(cs))
	}

	meld := Classify(cs, s.options)
	if meld.Type == MeldInvalid {
		return newValidationError(ErrCodeInvalidMeld, "%s is not a legal meld", cards.CardsToString(cs))
	}
	result := Beats(meld, s.table.Meld, s.options)
	if !result.Legal {
		return newValidationError(ErrCodeDoesNotBeat, "%s", result.Reason)
	}

	seat.Hand.RemoveAll(cs)
	s.table.Meld = meld
	s.table.OwnerIdx = seatIdx
	s.table.Passed = make(map[int]bool)
	util.Metrics.MeldPlayed()

	s.log.Info().
		Int(logging.SeatNumKey, seatIdx).
		Int(logging.RoundNumKey, s.round).
		Msgf("Played %s (%s): %s", cards.CardsToString(cs), meld.Type, result.Reason)

	msg := s.updateMessage()
	msg.Type = MessageMeldPlayed
	msg.SeatID = seat.ID
	msg.Cards = cards.ToStrings(meld.Cards)
	msg.MeldType = meld.Type.String()
	msg.Reason = result.Reason
	s.broadcast(msg)

	roundBefore := s.round
	if seat.Hand.IsEmpty() {
		s.finishSeat(seatIdx)
	}
	if s.state != PhasePlaying || s.round != roundBefore {
		// finishSeat completed the round and a fresh deal went out.
		return nil
	}

	if s.options.ClearOnTwo && containsNaturalTwo(cs) {
		s.clearTable()
		cleared := s.updateMessage()
		cleared.Type = MessageTableCleared
		cleared.SeatID = seat.ID
		s.broadcast(cleared)
		if _, ok := s.cursor.resumeAt(seatIdx, s.eligible); !ok {
			s.haltWith("no valid seat to lead after two cleared the table")
		}
		return nil
	}

	if _, ok := s.cursor.advance(s.eligible); !ok {
		s.haltWith("no valid next seat after play by seat %d", seatIdx)
	}
	return nil
}

func (s *Session) tryPass(seatIdx int) error {
	if s.state != PhasePlaying {
		return newValidationError(ErrCodeWrongState, "cannot pass in state %s", s.state)
	}
	seat := s.seats[seatIdx]
	if seat.finished() {
		return newValidationError(ErrCodeSeatFinished, "seat %d already finished", seatIdx)
	}
	if s.cursor.currentSeat() != seatIdx {
		return newValidationError(ErrCodeNotYourTurn, "it is not seat %d's turn", seatIdx)
	}
	if s.table.Meld.IsEmpty() {
		return newValidationError(ErrCodeNothingToBeat, "cannot pass on an empty table")
	}

	s.table.Passed[seatIdx] = true
	util.Metrics.PassRecorded()

	msg := s.updateMessage()
	msg.Type = MessagePlayerPassed
	msg.SeatID = seat.ID
	s.broadcast(msg)

	passedActive := 0
	for idx := range s.table.Passed {
		if s.seats[idx].active() {
			passedActive++
		}
	}
	if passedActive >= s.activeCount()-1 {
		owner := s.table.OwnerIdx
		ownerSeat := s.seats[owner]
		s.clearTable()
		cleared := s.updateMessage()
		cleared.Type = MessageTableCleared
		cleared.OwnerSeat = ownerSeat.ID
		s.broadcast(cleared)
		if _, ok := s.cursor.resumeAt(owner, s.eligible); !ok {
			s.haltWith("no valid seat to lead after table cleared")
		}
		return nil
	}

	if _, ok := s.cursor.advance(s.eligible); !ok {
		s.haltWith("no valid next seat after pass by seat %d", seatIdx)
	}
	return nil
}

func (s *Session) clearTable() {
	s.table.Meld = Meld{}
	s.table.OwnerIdx = -1
	s.table.Passed = make(map[int]bool)
}

func (s *Session) finishSeat(seatIdx int) {
	seat := s.seats[seatIdx]
	s.elimination = append(s.elimination, seatIdx)
	seat.FinishedRank = len(s.elimination)

	s.log.Info().
		Int(logging.SeatNumKey, seatIdx).
		Int(logging.RoundNumKey, s.round).
		Msgf("Seat emptied its hand, finishing rank %d", seat.FinishedRank)

	msg := s.updateMessage()
	msg.Type = MessageSeatFinished
	msg.SeatID = seat.ID
	s.broadcast(msg)

	if s.activeCount() <= 1 {
		s.completeRound()
	}
}

// completeRound appends the implicit last finisher, computes roles and
// opens the exchange phase.
func (s *Session) completeRound() {
	for _, idx := range s.dealt {
		if s.seats[idx].active() {
			s.elimination = append(s.elimination, idx)
			s.seats[idx].FinishedRank = len(s.elimination)
		}
	}
	s.state = PhaseRoundComplete

	roles := assignRoles(s.elimination, len(s.dealt))
	for _, idx := range s.dealt {
		s.seats[idx].Role = RoleCitizen
	}
	for idx, role := range roles {
		s.seats[idx].Role = role
	}
	util.Metrics.RoundCompleted()

	elimIDs := make([]string, len(s.elimination))
	for i, idx := range s.elimination {
		elimIDs[i] = s.seats[idx].ID
	}
	roleNamesByID := make(map[string]string)
	for idx, role := range roles {
		roleNamesByID[s.seats[idx].ID] = role.String()
	}

	s.log.Info().
		Int(logging.RoundNumKey, s.round).
		Msgf("Round complete, finishing order %v", s.elimination)

	msg := s.updateMessage()
	msg.Type = MessageRoundEnded
	msg.Elimination = elimIDs
	msg.Roles = roleNamesByID
	s.broadcast(msg)

	// Fresh hands go out first; the exchange moves cards between the
	// new hands before play resumes.
	s.deal()
	s.beginExchange()
}

func (s *Session) beginExchange() {
	s.pendingExchange = make(map[int][]cards.Card)
	s.exchangeCount = make(map[int]int)
	for _, idx := range s.dealt {
		if n := exchangeContribution(s.seats[idx].Role); n > 0 {
			if _, ok := s.exchangePartnerSeat(idx); !ok {
				s.haltWith("role %s at seat %d has no exchange partner", s.seats[idx].Role, idx)
				return
			}
			s.exchangeCount[idx] = n
		}
	}
	if len(s.exchangeCount) == 0 {
		return
	}
	s.state = PhaseExchanging
	s.broadcast(s.exchangeProgressMessage())
}

func (s *Session) exchangePartnerSeat(seatIdx int) (int, bool) {
	partnerRole, ok := exchangePartner(s.seats[seatIdx].Role)
	if !ok {
		return -1, false
	}
	for _, idx := range s.dealt {
		if s.seats[idx].Role == partnerRole {
			return idx, true
		}
	}
	return -1, false
}

func (s *Session) submitExchange(seatIdx int, cs []cards.Card) error {
	if s.state != PhaseExchanging {
		return newValidationError(ErrCodeWrongState, "cannot exchange in state %s", s.state)
	}
	required, owes := s.exchangeCount[seatIdx]
	if !owes {
		return newValidationError(ErrCodeBadExchange, "seat %d owes no cards in this exchange", seatIdx)
	}
	if _, done := s.pendingExchange[seatIdx]; done {
		return newValidationError(ErrCodeBadExchange, "seat %d already submitted its swap", seatIdx)
	}
	if len(cs) != required {
		return newValidationError(ErrCodeBadExchange, "seat %d must surrender exactly %d cards, got %d", seatIdx, required, len(cs))
	}
	if !s.seats[seatIdx].Hand.ContainsAll(cs) {
		return newValidationError(ErrCodeCardNotInHand, "seat %d does not hold all of %s", seatIdx, cards.CardsToString(cs))
	}

	selected := make([]cards.Card, len(cs))
	copy(selected, cs)
	s.pendingExchange[seatIdx] = selected
	s.broadcast(s.exchangeProgressMessage())

	if len(s.pendingExchange) == len(s.exchangeCount) {
		s.performExchange()
	}
	return nil
}

// performExchange moves every staged selection to its partner seat as
// remove-then-add steps, then deals the next round.
func (s *Session) performExchange() {
	for idx, selection := range s.pendingExchange {
		partner, ok := s.exchangePartnerSeat(idx)
		if !ok {
			s.haltWith("exchange partner vanished for seat %d", idx)
			return
		}
		if !s.seats[idx].Hand.RemoveAll(selection) {
			s.haltWith("staged exchange cards missing from seat %d", idx)
			return
		}
		s.seats[partner].Hand.AddAll(selection)
	}
	for _, idx := range s.dealt {
		s.seats[idx].Hand.SortByPower(s.options)
	}
	util.Metrics.ExchangeCompleted()
	s.state = PhasePlaying

	s.log.Info().Int(logging.RoundNumKey, s.round).Msg("Exchange complete")
	msg := s.updateMessage()
	msg.Type = MessageExchangeComplete
	s.broadcast(msg)
}

// driveAutomation is the bounded driver loop: it keeps producing moves
// for unattended seats until an attended seat is current, the round
// ends in a bot-only table, or the session halts. It never re-enters
// intent handlers from outside the critical section.
func (s *Session) driveAutomation() {
	steps := 0
	stepCap := 2 * (cards.DeckSize*s.options.NumDecks + len(s.seats)) * (len(s.seats) + 1)
	roundAtStart := s.round

	for !s.halted {
		// Bot-only tables advance one round per Drive call; the caller
		// owns the pacing between rounds.
		if !s.hasAttendedSeat() && s.round > roundAtStart && s.state == PhasePlaying {
			return
		}
		switch s.state {
		case PhasePlaying:
			idx := s.cursor.currentSeat()
			seat := s.seats[idx]
			if seat.Occupied && seat.Attended {
				return
			}
			if !seat.Occupied {
				// Vacant seat under the cursor: skip it.
				if s.activeCount() <= 1 {
					s.completeRound()
					continue
				}
				if _, ok := s.cursor.advance(s.eligible); !ok {
					s.haltWith("no valid next seat while skipping vacant seat %d", idx)
					return
				}
				continue
			}
			play, pass := s.chooseAutoMove(seat)
			var err error
			if pass {
				err = s.tryPass(idx)
			} else {
				err = s.tryPlay(idx, play)
			}
			if err != nil {
				s.haltWith("automation produced an illegal move for seat %d: %v", idx, err)
				return
			}
			util.Metrics.AutomationStep()
		case PhaseExchanging:
			progressed := false
			for idx := range s.exchangeCount {
				if _, done := s.pendingExchange[idx]; done {
					continue
				}
				seat := s.seats[idx]
				if seat.Occupied && seat.Attended {
					continue
				}
				selection := s.chooseAutoExchange(seat, s.exchangeCount[idx])
				if err := s.submitExchange(idx, selection); err != nil {
					s.haltWith("automation produced a bad exchange for seat %d: %v", idx, err)
					return
				}
				util.Metrics.AutomationStep()
				progressed = true
				break
			}
			if !progressed {
				return
			}
		default:
			return
		}

		steps++
		if steps > stepCap {
			s.haltWith("automation step cap exceeded (%d steps)", steps)
			return
		}
	}
}

func newSeatID() string {
	return uuid.New().String()
}

func (s *Session) haltWith(format string, args ...interface{}) {
	violation := &InvariantViolation{Msg: fmt.Sprintf(format, args...)}
	s.halted = true
	util.Metrics.SessionHalted()
	s.log.Error().Msg(violation.Error())

	msg := s.updateMessage()
	msg.Type = MessageSessionHalted
	msg.Reason = violation.Msg
	s.broadcast(msg)
}

// --- outbound helpers ---

func (s *Session) broadcast(msg *SessionMessage) {
	if s.receiver != nil {
		s.receiver.BroadcastSessionMessage(msg)
	}
}

func (s *Session) sendToSeat(seatID string, msg *SessionMessage) {
	if s.receiver != nil {
		s.receiver.SendSeatMessage(seatID, msg)
	}
}

func (s *Session) updateMessage() *SessionMessage {
	currentSeat := ""
	if s.state == PhasePlaying && s.cursor != nil {
		currentSeat = s.seats[s.cursor.currentSeat()].ID
	}
	ownerSeat := ""
	if s.table.OwnerIdx >= 0 {
		ownerSeat = s.seats[s.table.OwnerIdx].ID
	}
	statuses := make([]SeatStatus, len(s.seats))
	for i, seat := range s.seats {
		statuses[i] = SeatStatus{
			SeatID:       seat.ID,
			Name:         seat.Name,
			Index:        seat.Index,
			Occupied:     seat.Occupied,
			Automated:    seat.Occupied && !seat.Attended,
			CardCount:    seat.Hand.Len(),
			IsTurn:       seat.ID == currentSeat,
			Role:         seat.Role.String(),
			FinishedRank: seat.FinishedRank,
		}
	}
	return &SessionMessage{
		Type:        MessageGameUpdate,
		Code:        s.code,
		Round:       s.round,
		State:       string(s.state),
		Seats:       statuses,
		CurrentSeat: currentSeat,
		TableMeld:   cards.ToStrings(s.table.Meld.Cards),
		OwnerSeat:   ownerSeat,
	}
}

func (s *Session) seatUpdateMessage(seat *Seat) *SessionMessage {
	msg := s.updateMessage()
	msg.Type = MessageSeatUpdate
	msg.SeatID = seat.ID
	return msg
}

func (s *Session) exchangeProgressMessage() *SessionMessage {
	msg := s.updateMessage()
	msg.Type = MessageExchangeProgress
	for idx := range s.exchangeCount {
		if _, done := s.pendingExchange[idx]; !done {
			msg.Waiting = append(msg.Waiting, s.seats[idx].ID)
		}
	}
	if len(s.pendingExchange) == len(s.exchangeCount) {
		msg.Type = MessageExchangeComplete
	}
	return msg
}

func containsNaturalTwo(cs []cards.Card) bool {
	for _, c := range cs {
		if c.IsTwo() {
			return true
		}
	}
	return false
}
