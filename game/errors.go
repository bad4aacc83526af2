package game

import "fmt"

// ValidationError reports an illegal intent back to the originating seat.
// The session state is untouched when one of these is returned.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func newValidationError(code string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Code:   code,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Validation error codes surfaced to clients.
const (
	ErrCodeNotYourTurn   = "not_your_turn"
	ErrCodeCardNotInHand = "card_not_in_hand"
	ErrCodeInvalidMeld   = "invalid_meld"
	ErrCodeDoesNotBeat   = "does_not_beat"
	ErrCodeNothingToBeat = "nothing_to_beat"
	ErrCodeSeatFinished  = "seat_finished"
	ErrCodeWrongState    = "wrong_state"
	ErrCodeSessionFull   = "session_full"
	ErrCodeNotJoinable   = "not_joinable"
	ErrCodeNoSuchSeat    = "no_such_seat"
	ErrCodeNoSuchSession = "no_such_session"
	ErrCodeBadExchange   = "bad_exchange"
	ErrCodeHalted        = "session_halted"
)

// InvariantViolation indicates a bug in round or role bookkeeping.
// Automation is halted for the session when one is raised.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Msg)
}

// ConfigurationError rejects bad options at session creation time.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Msg)
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

func IsInvariantViolation(err error) bool {
	_, ok := err.(*InvariantViolation)
	return ok
}

func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}
