package game

import (
	"sort"

	"president.com/server/cards"
)

// chooseAutoMove picks a move for an unattended seat. On an open table
// it leads its lowest single. Otherwise it considers every same-rank
// set it can assemble, run windows matching the table run, and filters
// them through the comparator; bombs are held back unless nothing
// standard beats the table. Returns (nil, true) to pass.
func (s *Session) chooseAutoMove(seat *Seat) ([]cards.Card, bool) {
	held := seat.Hand.Cards()
	sort.SliceStable(held, func(i, j int) bool {
		return cardPower(held[i], s.options) < cardPower(held[j], s.options)
	})

	if s.table.Meld.IsEmpty() {
		return held[:1], false
	}

	candidates := s.sameRankCandidates(seat)
	if s.table.Meld.Type == MeldRun {
		candidates = append(candidates, s.runCandidates(seat, s.table.Meld.Length)...)
	}

	var best, bestBomb []cards.Card
	bestValue, bestBombValue := 0, 0
	for _, cand := range candidates {
		meld := Classify(cand, s.options)
		if meld.Type == MeldInvalid {
			continue
		}
		if !Beats(meld, s.table.Meld, s.options).Legal {
			continue
		}
		if meld.Type == MeldBomb {
			if bestBomb == nil || meld.Value < bestBombValue {
				bestBomb, bestBombValue = cand, meld.Value
			}
			continue
		}
		if best == nil || meld.Value < bestValue ||
			(meld.Value == bestValue && len(cand) < len(best)) {
			best, bestValue = cand, meld.Value
		}
	}
	if best != nil {
		return best, false
	}
	if bestBomb != nil {
		return bestBomb, false
	}
	return nil, true
}

// sameRankCandidates lists every same-rank set of one to four cards the
// seat can assemble, lowest cards of each rank first.
func (s *Session) sameRankCandidates(seat *Seat) [][]cards.Card {
	var out [][]cards.Card
	for _, group := range seat.Hand.groupByRank() {
		limit := len(group)
		if limit > 4 {
			limit = 4
		}
		for n := 1; n <= limit; n++ {
			cand := make([]cards.Card, n)
			copy(cand, group[:n])
			out = append(out, cand)
		}
	}
	return out
}

// runCandidates lists every window of length consecutive natural ranks
// the seat can cover, one lowest card per rank. Twos are never used as
// run material here even when they could fill a gap.
func (s *Session) runCandidates(seat *Seat, length int) [][]cards.Card {
	byBase := make(map[int]cards.Card)
	for _, c := range seat.Hand.Cards() {
		if c.IsTwo() {
			continue
		}
		base := c.BaseValue()
		if cur, ok := byBase[base]; !ok || cardPower(c, s.options) < cardPower(cur, s.options) {
			byBase[base] = c
		}
	}

	var out [][]cards.Card
	for start := 1; start+length-1 <= 13; start++ {
		cand := make([]cards.Card, 0, length)
		for v := start; v < start+length; v++ {
			c, ok := byBase[v]
			if !ok {
				cand = nil
				break
			}
			cand = append(cand, c)
		}
		if cand != nil {
			out = append(out, cand)
		}
	}
	return out
}

// chooseAutoExchange picks the cards an unattended role holder
// surrenders: upper roles give away their weakest cards, lower roles
// their strongest.
func (s *Session) chooseAutoExchange(seat *Seat, n int) []cards.Card {
	held := seat.Hand.Cards()
	sort.SliceStable(held, func(i, j int) bool {
		return cardPower(held[i], s.options) < cardPower(held[j], s.options)
	})
	switch seat.Role {
	case RolePresident, RoleVicePresident:
		return held[:n]
	default:
		return held[len(held)-n:]
	}
}
