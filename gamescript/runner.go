package gamescript

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"president.com/server/cards"
	"president.com/server/game"
	"president.com/server/logging"
)

var runnerLogger = logging.GetZeroLogger("gamescript::runner", nil)

// RunScripts executes every script under fileOrDir. When testName is
// set only the script with that name runs.
func RunScripts(fileOrDir string, testName string) error {
	info, err := os.Stat(fileOrDir)
	if err != nil {
		return errors.Wrapf(err, "Cannot stat [%s]", fileOrDir)
	}

	var files []string
	if info.IsDir() {
		entries, err := ioutil.ReadDir(fileOrDir)
		if err != nil {
			return errors.Wrapf(err, "Cannot read dir [%s]", fileOrDir)
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
				files = append(files, filepath.Join(fileOrDir, e.Name()))
			}
		}
	} else {
		files = append(files, fileOrDir)
	}

	for _, file := range files {
		script, err := ReadGameScript(file)
		if err != nil {
			return err
		}
		if testName != "" && script.Name != testName {
			continue
		}
		runnerLogger.Info().Msgf("Running script [%s]", script.Name)
		if err := RunScript(script); err != nil {
			return errors.Wrapf(err, "Script [%s] failed", script.Name)
		}
		runnerLogger.Info().Msgf("Script [%s] passed", script.Name)
	}
	return nil
}

// RunScript drives one script against a fresh session and checks its
// verify block.
func RunScript(script *Script) error {
	receiver := NewCollectingReceiver()
	session, err := game.NewSession(script.Name, script.Name, script.Options, receiver,
		game.NewMemorySessionTracker(), nil)
	if err != nil {
		return err
	}

	if len(script.Deck) > 0 {
		deck, err := cards.Parse(script.Deck)
		if err != nil {
			return errors.Wrap(err, "Bad scripted deck")
		}
		session.SetScriptedDeck(deck)
	}

	seatIDs := make([]string, len(script.Seats))
	for i, seat := range script.Seats {
		seatIDs[i], err = session.JoinSeat(seat.Name, seat.Attended)
		if err != nil {
			return errors.Wrapf(err, "Seat %d could not join", i)
		}
	}
	if err := session.StartDealing(); err != nil {
		return err
	}

	for i, move := range script.Moves {
		if err := applyMove(session, seatIDs[move.Seat], &move); err != nil {
			return errors.Wrapf(err, "Move %d (%s by seat %d) rejected", i, move.Action, move.Seat)
		}
	}
	if script.AutoPlay.Enabled {
		// The first round already ran inside StartDealing when no seat
		// is attended.
		for round := 1; round < script.AutoPlay.Rounds; round++ {
			session.Drive()
		}
	}

	return verify(script, session, receiver, seatIDs)
}

func applyMove(session *game.Session, seatID string, move *Move) error {
	switch move.Action {
	case "play":
		cs, err := cards.Parse(move.Cards)
		if err != nil {
			return err
		}
		return session.PlayMeld(seatID, cs)
	case "pass":
		return session.Pass(seatID)
	case "exchange":
		cs, err := cards.Parse(move.Cards)
		if err != nil {
			return err
		}
		return session.SubmitExchange(seatID, cs)
	}
	return errors.Errorf("unknown action [%s]", move.Action)
}

func verify(script *Script, session *game.Session, receiver *CollectingReceiver, seatIDs []string) error {
	v := script.Verify
	if v.State != "" && string(session.State()) != v.State {
		return errors.Errorf("expected state [%s], got [%s]", v.State, session.State())
	}
	if v.Round != 0 && session.Round() != v.Round {
		return errors.Errorf("expected round %d, got %d", v.Round, session.Round())
	}
	if session.Halted() != v.Halted {
		return errors.Errorf("expected halted=%v, got %v", v.Halted, session.Halted())
	}

	if len(v.FinishOrder) == 0 && len(v.Roles) == 0 {
		return nil
	}
	roundEnd := receiver.LastBroadcast(game.MessageRoundEnded)
	if roundEnd == nil {
		return errors.New("no round ended event observed")
	}

	indexOf := make(map[string]int)
	for i, id := range seatIDs {
		indexOf[id] = i
	}
	if len(v.FinishOrder) > 0 {
		gotOrder := make([]int, len(roundEnd.Elimination))
		for i, id := range roundEnd.Elimination {
			gotOrder[i] = indexOf[id]
		}
		if diff := cmp.Diff(v.FinishOrder, gotOrder); diff != "" {
			return errors.Errorf("finish order mismatch (-want +got):\n%s", diff)
		}
	}
	if len(v.Roles) > 0 {
		gotRoles := make(map[int]string)
		for id, role := range roundEnd.Roles {
			gotRoles[indexOf[id]] = role
		}
		if diff := cmp.Diff(v.Roles, gotRoles); diff != "" {
			return errors.Errorf("role mismatch (-want +got):\n%s", diff)
		}
	}
	return nil
}
