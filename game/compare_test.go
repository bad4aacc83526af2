package game

import (
	"strings"
	"testing"
)

func TestBeatsOpeningLead(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true, BombsEnabled: true}
	candidates := [][]string{
		{"3d"},
		{"Kh", "Ks"},
		{"9h", "9s", "9c"},
		{"9h", "9s", "9c", "9d"},
		{"5h", "6s", "7c"},
		{"6h", "6s", "6c"},
	}
	for _, strs := range candidates {
		meld := Classify(mustParse(t, strs...), o)
		if meld.Type == MeldInvalid {
			t.Fatalf("test candidate %v failed to classify", strs)
		}
		result := Beats(meld, Meld{}, o)
		if !result.Legal {
			t.Errorf("classifiable candidate %v rejected on an empty table: %s", strs, result.Reason)
		}
	}
}

func TestBeatsStandardComparison(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true}
	testCases := []struct {
		name      string
		candidate []string
		table     []string
		legal     bool
	}{
		{name: "higher single", candidate: []string{"Kh"}, table: []string{"9s"}, legal: true},
		{name: "equal single", candidate: []string{"Kh"}, table: []string{"Ks"}, legal: false},
		{name: "lower single", candidate: []string{"9h"}, table: []string{"Ks"}, legal: false},
		{name: "two over ace", candidate: []string{"2h"}, table: []string{"As"}, legal: true},
		{name: "pair over pair", candidate: []string{"Kh", "Kd"}, table: []string{"9s", "9c"}, legal: true},
		{name: "pair over single", candidate: []string{"Kh", "Kd"}, table: []string{"9s"}, legal: false},
		{name: "single over pair", candidate: []string{"Kh"}, table: []string{"9s", "9c"}, legal: false},
		{name: "higher run", candidate: []string{"6h", "7s", "8c"}, table: []string{"5d", "6d", "7d"}, legal: true},
		{name: "longer run mismatch", candidate: []string{"6h", "7s", "8c", "9c"}, table: []string{"5d", "6d", "7d"}, legal: false},
		{name: "red three never beats", candidate: []string{"3h"}, table: []string{"4s"}, legal: false},
	}
	for _, tc := range testCases {
		candidate := Classify(mustParse(t, tc.candidate...), o)
		table := Classify(mustParse(t, tc.table...), o)
		result := Beats(candidate, table, o)
		if result.Legal != tc.legal {
			t.Errorf("%s: expected legal=%v, got %v (%s)", tc.name, tc.legal, result.Legal, result.Reason)
		}
	}
}

func TestWildThreeBeatsPairOfKings(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, TwoIsHigh: true, BombsEnabled: true, WildsBeatMultiples: true}
	candidate := Classify(mustParse(t, "3s"), o)
	table := Classify(mustParse(t, "Kh", "Ks"), o)

	result := Beats(candidate, table, o)
	if !result.Legal {
		t.Fatalf("single three must beat a pair of kings under wild overrides: %s", result.Reason)
	}
	if !strings.Contains(result.Reason, "three") {
		t.Errorf("reason should mention the three override, got [%s]", result.Reason)
	}
}

func TestWildOverrides(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true, WildsBeatMultiples: true}
	testCases := []struct {
		name      string
		candidate []string
		table     []string
		legal     bool
	}{
		{name: "three beats quad", candidate: []string{"3c"}, table: []string{"9h", "9s", "9c", "9d"}, legal: true},
		{name: "pair of threes beats pair", candidate: []string{"3s", "3c"}, table: []string{"Kh", "Ks"}, legal: true},
		{name: "two beats single", candidate: []string{"2s"}, table: []string{"Ah"}, legal: true},
		{name: "two beats pair", candidate: []string{"2s"}, table: []string{"Kh", "Ks"}, legal: true},
		{name: "two beats run", candidate: []string{"2s"}, table: []string{"5h", "6s", "7c"}, legal: true},
		{name: "two does not beat triple", candidate: []string{"2s"}, table: []string{"9h", "9s", "9c"}, legal: false},
		{name: "pair of twos beats triple", candidate: []string{"2s", "2c"}, table: []string{"9h", "9s", "9c"}, legal: true},
		{name: "pair of twos does not beat quad", candidate: []string{"2s", "2c"}, table: []string{"9h", "9s", "9c", "9d"}, legal: false},
	}
	for _, tc := range testCases {
		candidate := Classify(mustParse(t, tc.candidate...), o)
		table := Classify(mustParse(t, tc.table...), o)
		result := Beats(candidate, table, o)
		if result.Legal != tc.legal {
			t.Errorf("%s: expected legal=%v, got %v (%s)", tc.name, tc.legal, result.Legal, result.Reason)
		}
	}
}

func TestBombBeatsEverything(t *testing.T) {
	o := Options{Seats: 4, NumDecks: 1, MaxRunLength: 5, TwoIsHigh: true, BombsEnabled: true}
	bomb := Classify(mustParse(t, "6h", "6s", "6c"), o)
	tables := [][]string{
		{"2h"},
		{"Ah", "As"},
		{"Kh", "Ks", "Kc"},
		{"9h", "9s", "9c", "9d"},
		{"Th", "Js", "Qc", "Kd", "Ah"},
	}
	for _, strs := range tables {
		table := Classify(mustParse(t, strs...), o)
		result := Beats(bomb, table, o)
		if !result.Legal {
			t.Errorf("bomb rejected against %v: %s", strs, result.Reason)
		}
	}
}
