package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"president.com/server/cards"
)

func TestHandRemoveExact(t *testing.T) {
	h := NewHand()
	h.AddAll(mustParse(t, "3s", "Kh", "Kh"))

	if !h.RemoveExact(cards.New("Kh")) {
		t.Fatal("RemoveExact failed for a held card")
	}
	if h.Len() != 2 {
		t.Errorf("expected 2 cards, got %d", h.Len())
	}
	// One copy of Kh must survive.
	if !h.ContainsAll(mustParse(t, "Kh")) {
		t.Error("second copy of Kh lost")
	}
	if h.RemoveExact(cards.New("2c")) {
		t.Error("RemoveExact succeeded for a card not in hand")
	}
}

func TestHandContainsAllMultiset(t *testing.T) {
	h := NewHand()
	h.AddAll(mustParse(t, "9h", "9h", "Ks"))

	if !h.ContainsAll(mustParse(t, "9h", "9h")) {
		t.Error("two held copies reported missing")
	}
	if h.ContainsAll(mustParse(t, "9h", "9h", "9h")) {
		t.Error("three copies reported present when only two held")
	}
}

func TestHandRemoveAllAtomic(t *testing.T) {
	h := NewHand()
	h.AddAll(mustParse(t, "9h", "Ks"))

	if h.RemoveAll(mustParse(t, "9h", "2c")) {
		t.Fatal("RemoveAll succeeded with a missing card")
	}
	// Failed removal leaves the hand untouched.
	if h.Len() != 2 {
		t.Errorf("hand mutated by failed RemoveAll, %d cards left", h.Len())
	}
	if !h.RemoveAll(mustParse(t, "9h", "Ks")) {
		t.Fatal("RemoveAll failed for fully held cards")
	}
	if !h.IsEmpty() {
		t.Error("hand not empty after removing everything")
	}
}

func TestHandSortByPower(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, TwoIsHigh: true}
	h := NewHand()
	h.AddAll(mustParse(t, "2s", "3h", "Kh", "4c", "3s"))
	h.SortByPower(o)

	expected := mustParse(t, "3h", "3s", "4c", "Kh", "2s")
	if diff := cmp.Diff(expected, h.Cards()); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestHandCardsIsACopy(t *testing.T) {
	h := NewHand()
	h.AddAll(mustParse(t, "9h", "Ks"))
	view := h.Cards()
	view[0] = cards.New("2c")
	if !h.ContainsAll(mustParse(t, "9h")) {
		t.Error("mutating the returned slice changed the hand")
	}
}
