package gamescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"president.com/server/game"
)

func TestReadGameScript(t *testing.T) {
	script, err := ReadGameScript("test_scripts/bots-four-seats.yaml")
	if err != nil {
		t.Fatalf("ReadGameScript returned error [%s]", err)
	}
	if script == nil {
		t.Fatal("ReadGameScript returned nil data")
	}

	expectedScript := Script{
		Name: "bots-four-seats",
		Options: game.Options{
			Seats:              4,
			NumDecks:           1,
			MaxRunLength:       5,
			TwoIsHigh:          true,
			BombsEnabled:       true,
			WildsBeatMultiples: true,
		},
		Seats: []Seat{
			{Name: "bot-a"},
			{Name: "bot-b"},
			{Name: "bot-c"},
			{Name: "bot-d"},
		},
		AutoPlay: AutoPlay{
			Enabled: true,
			Rounds:  3,
		},
		Verify: Verify{
			State: "playing",
			Round: 4,
		},
	}
	if diff := cmp.Diff(expectedScript, *script); diff != "" {
		t.Errorf("Script mismatch (-want +got):\n%s", diff)
	}
}

func TestReadGameScriptMoves(t *testing.T) {
	script, err := ReadGameScript("test_scripts/scripted-two-seats.yaml")
	if err != nil {
		t.Fatalf("ReadGameScript returned error [%s]", err)
	}
	if len(script.Deck) != 52 {
		t.Errorf("Expected a 52 card scripted deck, got %d", len(script.Deck))
	}
	// 26 plays, 25 passes and 2 exchange submissions.
	if len(script.Moves) != 53 {
		t.Errorf("Expected 53 moves, got %d", len(script.Moves))
	}
	expectedFirst := Move{Seat: 0, Action: "play", Cards: []string{"3s"}}
	if diff := cmp.Diff(expectedFirst, script.Moves[0]); diff != "" {
		t.Errorf("First move mismatch (-want +got):\n%s", diff)
	}
}

func TestRunScripts(t *testing.T) {
	err := RunScripts("test_scripts", "")
	if err != nil {
		t.Fatalf("RunScripts returned error [%s]", err)
	}
}

func TestRunScriptedTwoSeats(t *testing.T) {
	script, err := ReadGameScript("test_scripts/scripted-two-seats.yaml")
	if err != nil {
		t.Fatalf("ReadGameScript returned error [%s]", err)
	}
	if err := RunScript(script); err != nil {
		t.Fatalf("RunScript returned error [%s]", err)
	}
}
