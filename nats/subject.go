package nats

import (
	"fmt"
)

func GetSession2AllSeatsSubject(sessionCode string) string {
	return fmt.Sprintf("president.%s.game", sessionCode)
}

func GetSession2SeatSubject(sessionCode string, seatID string) string {
	return fmt.Sprintf("president.%s.seat.%s", sessionCode, seatID)
}

func GetSeat2SessionSubject(sessionCode string) string {
	return fmt.Sprintf("president.%s.intent", sessionCode)
}
