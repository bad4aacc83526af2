package game

import (
	"testing"
)

func eligibleFrom(set map[int]bool) func(int) bool {
	return func(idx int) bool { return set[idx] }
}

func TestTurnCursorAdvance(t *testing.T) {
	tc := newTurnCursor([]int{0, 1, 2, 3}, 0)

	next, ok := tc.advance(eligibleFrom(map[int]bool{0: true, 1: true, 2: true, 3: true}))
	if !ok || next != 1 {
		t.Fatalf("expected seat 1, got %d ok=%v", next, ok)
	}

	// Seats 2 and 3 dropped out; next from 1 wraps to 0.
	next, ok = tc.advance(eligibleFrom(map[int]bool{0: true, 1: true}))
	if !ok || next != 0 {
		t.Fatalf("expected seat 0, got %d ok=%v", next, ok)
	}
}

func TestTurnCursorNeverReturnsSelfUnlessSoleSurvivor(t *testing.T) {
	tc := newTurnCursor([]int{0, 1, 2}, 0)

	// With another eligible seat available, advance must move off the
	// current seat.
	next, ok := tc.advance(eligibleFrom(map[int]bool{0: true, 2: true}))
	if !ok || next != 2 {
		t.Fatalf("expected seat 2, got %d ok=%v", next, ok)
	}

	// Sole survivor: the cursor comes back around to the same seat.
	next, ok = tc.advance(eligibleFrom(map[int]bool{2: true}))
	if !ok || next != 2 {
		t.Fatalf("sole survivor should be returned, got %d ok=%v", next, ok)
	}
}

func TestTurnCursorAdvanceTerminates(t *testing.T) {
	tc := newTurnCursor([]int{0, 1, 2, 3, 4}, 2)
	calls := 0
	_, ok := tc.advance(func(idx int) bool {
		calls++
		return false
	})
	if ok {
		t.Fatal("advance reported success with no eligible seat")
	}
	if calls > 5 {
		t.Errorf("advance scanned %d seats, bound is 5", calls)
	}
}

func TestTurnCursorResumeAt(t *testing.T) {
	tc := newTurnCursor([]int{0, 1, 2, 3}, 3)

	seat, ok := tc.resumeAt(1, eligibleFrom(map[int]bool{0: true, 1: true, 2: true, 3: true}))
	if !ok || seat != 1 {
		t.Fatalf("expected resume at seat 1, got %d ok=%v", seat, ok)
	}

	// Owner emptied its hand: resume at the next eligible seat after it.
	seat, ok = tc.resumeAt(1, eligibleFrom(map[int]bool{0: true, 3: true}))
	if !ok || seat != 3 {
		t.Fatalf("expected seat 3 after ineligible owner, got %d ok=%v", seat, ok)
	}

	if _, ok := tc.resumeAt(9, eligibleFrom(map[int]bool{0: true})); ok {
		t.Error("resumeAt accepted a seat outside the order")
	}
}
