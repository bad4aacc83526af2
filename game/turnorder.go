package game

// turnCursor rotates over the seat order fixed at deal time. Vacated
// seats are replaced in place at the same index, never reinserted
// elsewhere, so the order itself never changes mid-round.
type turnCursor struct {
	order   []int // seat indices participating in this round
	current int   // position within order
}

func newTurnCursor(order []int, startPos int) *turnCursor {
	return &turnCursor{order: order, current: startPos}
}

func (tc *turnCursor) currentSeat() int {
	return tc.order[tc.current]
}

// advance moves to the next seat that is occupied with a non-empty
// hand. The scan is strictly bounded by the seat count; a false return
// means no such seat exists, which the session treats as an invariant
// violation while a round is still in progress.
func (tc *turnCursor) advance(eligible func(seatIdx int) bool) (int, bool) {
	for step := 1; step <= len(tc.order); step++ {
		pos := (tc.current + step) % len(tc.order)
		if eligible(tc.order[pos]) {
			tc.current = pos
			return tc.order[pos], true
		}
	}
	return -1, false
}

// resumeAt points the cursor at the given seat, or the next eligible
// seat after it if that one has since emptied its hand or vacated.
// Used when the table clears and the meld owner leads again.
func (tc *turnCursor) resumeAt(seatIdx int, eligible func(seatIdx int) bool) (int, bool) {
	pos := -1
	for i, idx := range tc.order {
		if idx == seatIdx {
			pos = i
			break
		}
	}
	if pos < 0 {
		return -1, false
	}
	if eligible(seatIdx) {
		tc.current = pos
		return seatIdx, true
	}
	tc.current = pos
	return tc.advance(eligible)
}
