package game

import (
	"sort"

	"president.com/server/cards"
)

// Hand is a seat's ordered card collection. It is owned exclusively by
// the session on behalf of that seat; cards move between seats only as
// remove-then-add steps performed by the session.
type Hand struct {
	cards []cards.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]cards.Card, 0, 16)}
}

func (h *Hand) Add(c cards.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddAll(cs []cards.Card) {
	h.cards = append(h.cards, cs...)
}

// RemoveExact removes one copy of the card. A false return is a
// caller-error signal, not an expected outcome.
func (h *Hand) RemoveExact(c cards.Card) bool {
	for i, held := range h.cards {
		if held == c {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

// ContainsAll checks multiset containment: every requested card must be
// present, counting duplicates (relevant with more than one deck).
func (h *Hand) ContainsAll(cs []cards.Card) bool {
	counts := make(map[cards.Card]int, len(h.cards))
	for _, held := range h.cards {
		counts[held]++
	}
	for _, c := range cs {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// RemoveAll removes one copy of each card; it verifies containment
// first so a failed request leaves the hand untouched.
func (h *Hand) RemoveAll(cs []cards.Card) bool {
	if !h.ContainsAll(cs) {
		return false
	}
	for _, c := range cs {
		h.RemoveExact(c)
	}
	return true
}

// SortByPower stable-sorts the hand ascending by option-adjusted power.
func (h *Hand) SortByPower(o Options) {
	sort.SliceStable(h.cards, func(i, j int) bool {
		return cardPower(h.cards[i], o) < cardPower(h.cards[j], o)
	})
}

func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy; the hand never leaks its backing slice.
func (h *Hand) Cards() []cards.Card {
	copied := make([]cards.Card, len(h.cards))
	copy(copied, h.cards)
	return copied
}

func (h *Hand) reset() {
	h.cards = h.cards[:0]
}

// groupByRank buckets the hand for the automation policy.
func (h *Hand) groupByRank() map[int][]cards.Card {
	groups := make(map[int][]cards.Card)
	for _, c := range h.cards {
		groups[c.Rank()] = append(groups[c.Rank()], c)
	}
	return groups
}
