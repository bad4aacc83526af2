package gamescript

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"president.com/server/game"
)

// Script contains game script YAML content.
type Script struct {
	Name     string       `yaml:"name"`
	Options  game.Options `yaml:"options"`
	Seats    []Seat       `yaml:"seats"`
	Deck     []string     `yaml:"deck"`
	AutoPlay AutoPlay     `yaml:"auto-play"`
	Moves    []Move       `yaml:"moves"`
	Verify   Verify       `yaml:"verify"`
}

// Seat describes one starting occupant. Unattended seats run under
// automation.
type Seat struct {
	Name     string `yaml:"name"`
	Attended bool   `yaml:"attended"`
}

// AutoPlay lets a script run whole rounds under automation instead of
// scripting every move.
type AutoPlay struct {
	Enabled bool `yaml:"enabled"`
	Rounds  int  `yaml:"rounds"`
}

// Move is one scripted intent, addressed by seat index.
type Move struct {
	Seat   int      `yaml:"seat"`
	Action string   `yaml:"action"` // play, pass, exchange
	Cards  []string `yaml:"cards"`
}

// Verify holds the assertions checked after the script runs.
type Verify struct {
	State       string         `yaml:"state"`
	Round       int            `yaml:"round"`
	FinishOrder []int          `yaml:"finish-order"`
	Roles       map[int]string `yaml:"roles"`
	Halted      bool           `yaml:"halted"`
}

func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading game script file [%s]", fileName)
	}

	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}

	err = script.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Error validating script [%s]", fileName)
	}

	return &script, nil
}

func (s *Script) Validate() error {
	if s.Name == "" {
		return errors.New("script has no name")
	}
	if len(s.Seats) < 2 {
		return errors.Errorf("script needs at least 2 seats, has %d", len(s.Seats))
	}
	if len(s.Seats) > s.Options.Seats {
		return errors.Errorf("script seats %d more than configured seats %d", len(s.Seats), s.Options.Seats)
	}
	for i, move := range s.Moves {
		switch move.Action {
		case "play", "exchange":
			if len(move.Cards) == 0 {
				return errors.Errorf("move %d (%s) has no cards", i, move.Action)
			}
		case "pass":
		default:
			return errors.Errorf("move %d has unknown action [%s]", i, move.Action)
		}
		if move.Seat < 0 || move.Seat >= len(s.Seats) {
			return errors.Errorf("move %d addresses unknown seat %d", i, move.Seat)
		}
	}
	if !s.AutoPlay.Enabled && len(s.Moves) == 0 {
		return errors.New("script has neither moves nor auto-play")
	}
	return nil
}
