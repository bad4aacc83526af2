package cards

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCard(t *testing.T) {
	testCases := []struct {
		str       string
		rank      int
		suit      int
		baseValue int
	}{
		{str: "3s", rank: 0, suit: Spade, baseValue: 1},
		{str: "3h", rank: 0, suit: Heart, baseValue: 1},
		{str: "7d", rank: 4, suit: Diamond, baseValue: 5},
		{str: "Tc", rank: 7, suit: Club, baseValue: 8},
		{str: "Jd", rank: 8, suit: Diamond, baseValue: 9},
		{str: "As", rank: 11, suit: Spade, baseValue: 12},
		{str: "2c", rank: 12, suit: Club, baseValue: 13},
	}
	for _, tc := range testCases {
		c := New(tc.str)
		if c.Rank() != tc.rank {
			t.Errorf("%s: expected rank %d, got %d", tc.str, tc.rank, c.Rank())
		}
		if c.Suit() != tc.suit {
			t.Errorf("%s: expected suit %d, got %d", tc.str, tc.suit, c.Suit())
		}
		if c.BaseValue() != tc.baseValue {
			t.Errorf("%s: expected base value %d, got %d", tc.str, tc.baseValue, c.BaseValue())
		}
		if c.String() != tc.str {
			t.Errorf("%s: round trip produced %s", tc.str, c.String())
		}
	}
}

func TestCardPredicates(t *testing.T) {
	if !New("3h").IsRed() || !New("3d").IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if New("3s").IsRed() || New("3c").IsRed() {
		t.Error("spades and clubs should not be red")
	}
	if !New("3s").IsThree() || New("4s").IsThree() {
		t.Error("IsThree misclassified")
	}
	if !New("2d").IsTwo() || New("As").IsTwo() {
		t.Error("IsTwo misclassified")
	}
}

func TestParse(t *testing.T) {
	parsed, err := Parse([]string{"3s", "Kh", "2c"})
	if err != nil {
		t.Fatalf("Parse returned error [%s]", err)
	}
	expected := []Card{New("3s"), New("Kh"), New("2c")}
	if diff := cmp.Diff(expected, parsed); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", "3", "3x", "Zs", "10s"} {
		if _, err := Parse([]string{bad}); err == nil {
			t.Errorf("Parse accepted invalid card [%s]", bad)
		}
	}
}

func TestToStrings(t *testing.T) {
	cs := []Card{New("Qh"), New("2s")}
	if diff := cmp.Diff([]string{"Qh", "2s"}, ToStrings(cs)); diff != "" {
		t.Errorf("ToStrings mismatch (-want +got):\n%s", diff)
	}
}
