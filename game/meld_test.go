package game

import (
	"testing"

	"president.com/server/cards"
)

func mustParse(t *testing.T, strs ...string) []cards.Card {
	t.Helper()
	cs, err := cards.Parse(strs)
	if err != nil {
		t.Fatalf("bad test cards %v: %s", strs, err)
	}
	return cs
}

func TestClassify(t *testing.T) {
	runOptions := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true}
	wildRunOptions := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true, TwoWildInRun: true}
	bombOptions := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true, BombsEnabled: true}

	testCases := []struct {
		name     string
		cards    []string
		options  Options
		meldType MeldType
		value    int
		length   int
	}{
		{name: "single", cards: []string{"9h"}, options: runOptions, meldType: MeldSingle, value: 7, length: 1},
		{name: "single red three", cards: []string{"3d"}, options: runOptions, meldType: MeldSingle, value: 0, length: 1},
		{name: "pair", cards: []string{"Kh", "Ks"}, options: runOptions, meldType: MeldPair, value: 11, length: 2},
		{name: "mismatched pair", cards: []string{"Kh", "Qs"}, options: runOptions, meldType: MeldInvalid},
		{name: "triple", cards: []string{"9h", "9s", "9c"}, options: runOptions, meldType: MeldTriple, value: 7, length: 3},
		{name: "quad", cards: []string{"9h", "9s", "9c", "9d"}, options: runOptions, meldType: MeldQuad, value: 7, length: 4},
		{name: "five of a kind invalid", cards: []string{"9h", "9s", "9c", "9d", "9h"}, options: runOptions, meldType: MeldInvalid},
		{name: "empty", cards: nil, options: runOptions, meldType: MeldInvalid},
		{name: "oversized", cards: []string{"3s", "4s", "5s", "6s", "7s", "8s"}, options: runOptions, meldType: MeldInvalid},

		{name: "run of three", cards: []string{"5h", "6s", "7c"}, options: runOptions, meldType: MeldRun, value: 5, length: 3},
		{name: "run unordered input", cards: []string{"7c", "5h", "6s"}, options: runOptions, meldType: MeldRun, value: 5, length: 3},
		{name: "run of five", cards: []string{"9h", "Ts", "Jc", "Qd", "Kh"}, options: runOptions, meldType: MeldRun, value: 11, length: 5},
		{name: "run with gap invalid", cards: []string{"5h", "6s", "8c"}, options: runOptions, meldType: MeldInvalid},
		{name: "run with duplicate invalid", cards: []string{"5h", "5s", "6c"}, options: runOptions, meldType: MeldInvalid},
		{name: "runs disabled", cards: []string{"5h", "6s", "7c"}, options: Options{Seats: 4, NumDecks: 1}, meldType: MeldInvalid},
		{name: "run beyond max length", cards: []string{"9h", "Ts", "Jc", "Qd"}, options: Options{Seats: 4, NumDecks: 1, MaxRunLength: 3}, meldType: MeldInvalid},

		{name: "wild two fills gap", cards: []string{"5h", "2s", "7c"}, options: wildRunOptions, meldType: MeldRun, value: 5, length: 3},
		{name: "wild two extends top", cards: []string{"5h", "6s", "2c"}, options: wildRunOptions, meldType: MeldRun, value: 5, length: 3},
		{name: "wild two capped at top", cards: []string{"Kh", "As", "2c"}, options: wildRunOptions, meldType: MeldRun, value: 13, length: 3},
		{name: "two not wild without option", cards: []string{"5h", "2s", "7c"}, options: runOptions, meldType: MeldInvalid},

		{name: "bomb", cards: []string{"6h", "6s", "6c"}, options: bombOptions, meldType: MeldBomb, value: 4, length: 3},
		{name: "bomb disabled is a triple", cards: []string{"6h", "6s", "6c"}, options: runOptions, meldType: MeldTriple, value: 4, length: 3},
		{name: "four sixes is a quad", cards: []string{"6h", "6s", "6c", "6d"}, options: bombOptions, meldType: MeldQuad, value: 4, length: 4},
	}
	for _, tc := range testCases {
		var cs []cards.Card
		if len(tc.cards) > 0 {
			cs = mustParse(t, tc.cards...)
		}
		meld := Classify(cs, tc.options)
		if meld.Type != tc.meldType {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.meldType, meld.Type)
			continue
		}
		if tc.meldType == MeldInvalid {
			continue
		}
		if meld.Value != tc.value {
			t.Errorf("%s: expected value %d, got %d", tc.name, tc.value, meld.Value)
		}
		if meld.Length != tc.length {
			t.Errorf("%s: expected length %d, got %d", tc.name, tc.length, meld.Length)
		}
	}
}

// Every 1-5 card selection classifies to exactly one shape; Classify
// never panics and never returns a shape without cards.
func TestClassifyTotal(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true, TwoWildInRun: true, BombsEnabled: true}
	deck := cards.NewDeckNoShuffle(1)
	all := deck.Draw(cards.DeckSize)

	// Sliding windows over the canonical deck give a broad mix of
	// same-rank sets and cross-rank selections.
	for size := 1; size <= 5; size++ {
		for start := 0; start+size <= len(all); start++ {
			meld := Classify(all[start:start+size], o)
			switch meld.Type {
			case MeldInvalid:
			case MeldSingle, MeldPair, MeldTriple, MeldQuad, MeldRun, MeldBomb:
				if len(meld.Cards) != size {
					t.Fatalf("classified meld lost cards: %d in, %d kept", size, len(meld.Cards))
				}
				if meld.Value < 0 {
					t.Fatalf("classified meld has negative value %d", meld.Value)
				}
			default:
				t.Fatalf("unknown meld type %d", meld.Type)
			}
		}
	}
}

func TestBombPrecedesTriple(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, BombsEnabled: true}
	meld := Classify(mustParse(t, "6h", "6s", "6d"), o)
	if meld.Type != MeldBomb {
		t.Fatalf("three sixes with bombs enabled must classify as bomb, got %s", meld.Type)
	}
}
