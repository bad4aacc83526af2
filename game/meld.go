package game

import (
	"sort"

	"president.com/server/cards"
)

type MeldType int

const (
	MeldInvalid MeldType = iota
	MeldSingle
	MeldPair
	MeldTriple
	MeldQuad
	MeldRun
	MeldBomb
)

var meldTypeNames = map[MeldType]string{
	MeldInvalid: "invalid",
	MeldSingle:  "single",
	MeldPair:    "pair",
	MeldTriple:  "triple",
	MeldQuad:    "quad",
	MeldRun:     "run",
	MeldBomb:    "bomb",
}

func (t MeldType) String() string {
	return meldTypeNames[t]
}

// Meld is a classified set of played cards plus its comparison key.
// For single/pair/triple/quad the Value is the maximum option-adjusted
// power among the cards; for runs it keys off the highest card.
type Meld struct {
	Type   MeldType
	Cards  []cards.Card
	Value  int
	Length int
}

func (m Meld) IsEmpty() bool {
	return m.Type == MeldInvalid && len(m.Cards) == 0
}

// bombRankIndex is the rank index of a 6 in "3456789TJQKA2".
const bombRankIndex = 3

// Classify determines the meld shape of a set of cards, or MeldInvalid.
// Checked in order: empty, oversized, single, same-rank sets (with the
// bomb exception before triple), then runs.
func Classify(cs []cards.Card, o Options) Meld {
	n := len(cs)
	if n == 0 || n > maxMeldSize {
		return Meld{Type: MeldInvalid}
	}

	copied := make([]cards.Card, n)
	copy(copied, cs)

	if n == 1 {
		return Meld{Type: MeldSingle, Cards: copied, Value: cardPower(copied[0], o), Length: 1}
	}

	if allSameRank(copied) {
		if o.BombsEnabled && n == 3 && copied[0].Rank() == bombRankIndex {
			return Meld{Type: MeldBomb, Cards: copied, Value: maxPower(copied, o), Length: n}
		}
		switch n {
		case 2:
			return Meld{Type: MeldPair, Cards: copied, Value: maxPower(copied, o), Length: 2}
		case 3:
			return Meld{Type: MeldTriple, Cards: copied, Value: maxPower(copied, o), Length: 3}
		case 4:
			return Meld{Type: MeldQuad, Cards: copied, Value: maxPower(copied, o), Length: 4}
		}
		return Meld{Type: MeldInvalid}
	}

	if n >= 3 && o.MaxRunLength >= 3 && n <= o.MaxRunLength {
		if value, ok := classifyRun(copied, o); ok {
			return Meld{Type: MeldRun, Cards: copied, Value: value, Length: n}
		}
	}

	return Meld{Type: MeldInvalid}
}

func allSameRank(cs []cards.Card) bool {
	rank := cs[0].Rank()
	for _, c := range cs {
		if c.Rank() != rank {
			return false
		}
	}
	return true
}

// classifyRun detects a run using raw rank order 3..2; option-based
// power reordering never affects detection. When twoWildInRun is on,
// natural 2s fill internal gaps first and leftovers extend the top.
// The returned value is the run's comparison key: the option-adjusted
// power of its highest card, or the top effective rank's base power
// when a wild occupies the top.
func classifyRun(cs []cards.Card, o Options) (int, bool) {
	wilds := 0
	natural := make([]cards.Card, 0, len(cs))
	for _, c := range cs {
		if o.TwoWildInRun && c.IsTwo() {
			wilds++
			continue
		}
		natural = append(natural, c)
	}

	if len(natural) == 0 {
		// All wilds; same-rank classification has already claimed this.
		return 0, false
	}

	sort.Slice(natural, func(i, j int) bool {
		return natural[i].BaseValue() < natural[j].BaseValue()
	})

	gaps := 0
	for i := 1; i < len(natural); i++ {
		diff := natural[i].BaseValue() - natural[i-1].BaseValue()
		if diff == 0 {
			return 0, false // duplicate rank never forms a run
		}
		gaps += diff - 1
	}
	if gaps > wilds {
		return 0, false
	}

	leftover := wilds - gaps
	top := natural[len(natural)-1].BaseValue() + leftover
	if top > 13 {
		// Push the excess below the bottom of the run.
		excess := top - 13
		top = 13
		if natural[0].BaseValue()-excess < 1 {
			return 0, false
		}
	}

	if leftover > 0 {
		// A wild holds the top position: key off that rank's base power.
		return top, true
	}
	return cardPower(natural[len(natural)-1], o), true
}
