package game

import "fmt"

// BeatResult reports whether a candidate meld may be played over the
// table meld. The reason is diagnostic text only and never drives
// control flow.
type BeatResult struct {
	Legal  bool
	Reason string
}

func legal(format string, args ...interface{}) BeatResult {
	return BeatResult{Legal: true, Reason: fmt.Sprintf(format, args...)}
}

func illegal(format string, args ...interface{}) BeatResult {
	return BeatResult{Legal: false, Reason: fmt.Sprintf(format, args...)}
}

// Beats decides whether candidate legally beats the table meld.
// Ordering: opening lead, bomb override, wild overrides, standard
// same-shape comparison.
func Beats(candidate Meld, table Meld, o Options) BeatResult {
	if candidate.Type == MeldInvalid {
		return illegal("cards do not form a legal meld")
	}

	if table.IsEmpty() {
		return legal("opening lead")
	}

	if o.BombsEnabled && candidate.Type == MeldBomb {
		return legal("bomb beats %s", table.Type)
	}

	if o.WildsBeatMultiples {
		if result, matched := wildOverride(candidate, table); matched {
			return result
		}
	}

	if candidate.Type != table.Type {
		return illegal("%s does not match %s on the table", candidate.Type, table.Type)
	}
	if candidate.Type == MeldRun && candidate.Length != table.Length {
		return illegal("run of %d does not match run of %d on the table", candidate.Length, table.Length)
	}
	if candidate.Value <= table.Value {
		return illegal("%s (power %d) does not beat %s (power %d)",
			candidate.Type, candidate.Value, table.Type, table.Value)
	}
	return legal("%s beats %s", candidate.Type, table.Type)
}

// wildOverride applies the wildsBeatMultiples exceptions: threes beat
// anything, a single two beats singles, pairs and runs, and a pair of
// twos beats a triple.
func wildOverride(candidate Meld, table Meld) (BeatResult, bool) {
	threes := 0
	twos := 0
	for _, c := range candidate.Cards {
		if c.IsThree() {
			threes++
		}
		if c.IsTwo() {
			twos++
		}
	}

	if threes == len(candidate.Cards) && threes >= 1 {
		if threes == 1 {
			return legal("wild three override beats %s", table.Type), true
		}
		return legal("wild three set override beats %s", table.Type), true
	}

	if twos == len(candidate.Cards) {
		if twos == 1 {
			switch table.Type {
			case MeldSingle, MeldPair, MeldRun:
				return legal("wild two override beats %s", table.Type), true
			}
		}
		if twos == 2 && table.Type == MeldTriple {
			return legal("wild two pair override beats triple"), true
		}
	}

	return BeatResult{}, false
}
