package game

import (
	"fmt"

	"president.com/server/cards"
)

const (
	minSeats = 2
	maxSeats = 8
	maxDecks = 2

	// Melds are at most 5 cards, so runs cap there too.
	maxMeldSize = 5
)

// Options is the immutable rule configuration for a session. It is read
// once at creation and threaded explicitly through every power, classify
// and compare call; nothing in the engine reads configuration from
// ambient state.
type Options struct {
	Seats        int `json:"seats" yaml:"seats"`
	NumDecks     int `json:"numDecks" yaml:"numDecks"`
	MaxRunLength int `json:"maxRunLength" yaml:"maxRunLength"` // 0 disables runs

	TwoIsHigh          bool `json:"twoIsHigh" yaml:"twoIsHigh"`
	TwoWildInRun       bool `json:"twoWildInRun" yaml:"twoWildInRun"`
	BlackThreesHigh    bool `json:"blackThreesHigh" yaml:"blackThreesHigh"`
	JackOfDiamondsHigh bool `json:"jackOfDiamondsHigh" yaml:"jackOfDiamondsHigh"`
	BombsEnabled       bool `json:"bombsEnabled" yaml:"bombsEnabled"`
	WildsBeatMultiples bool `json:"wildsBeatMultiples" yaml:"wildsBeatMultiples"`
	ClearOnTwo         bool `json:"clearOnTwo" yaml:"clearOnTwo"`
}

func DefaultOptions() Options {
	return Options{
		Seats:        4,
		NumDecks:     1,
		MaxRunLength: maxMeldSize,
		TwoIsHigh:    true,
	}
}

// Validate rejects configurations that can never be reached mid-game.
func (o Options) Validate() error {
	if o.Seats < minSeats || o.Seats > maxSeats {
		return &ConfigurationError{Msg: fmt.Sprintf("seat count %d not in [%d..%d]", o.Seats, minSeats, maxSeats)}
	}
	if o.NumDecks < 1 || o.NumDecks > maxDecks {
		return &ConfigurationError{Msg: fmt.Sprintf("deck count %d not in [1..%d]", o.NumDecks, maxDecks)}
	}
	if o.MaxRunLength != 0 && (o.MaxRunLength < 3 || o.MaxRunLength > maxMeldSize) {
		return &ConfigurationError{Msg: fmt.Sprintf("run length %d must be 0 or in [3..%d]", o.MaxRunLength, maxMeldSize)}
	}
	if o.TwoWildInRun && o.MaxRunLength == 0 {
		return &ConfigurationError{Msg: "twoWildInRun requires runs to be enabled"}
	}
	return nil
}

// Power ladder. Base ranks occupy 1..13; overrides sit outside that band.
const (
	powerRedThree   = 0  // fixed sentinel below every base value
	powerBlackThree = 14 // blackThreesHigh
	powerTwoHigh    = 15 // twoIsHigh
	powerJackHigh   = 16 // jackOfDiamondsHigh
)

// cardPower computes the option-adjusted power of a card. Exactly one
// override applies per card; precedence when several options are on:
// red three, black three, jack of diamonds, two.
func cardPower(c cards.Card, o Options) int {
	if c.IsThree() && c.IsRed() {
		return powerRedThree
	}
	if o.BlackThreesHigh && c.IsThree() {
		return powerBlackThree
	}
	if o.JackOfDiamondsHigh && c.RankChar() == "J" && c.Suit() == cards.Diamond {
		return powerJackHigh
	}
	if o.TwoIsHigh && c.IsTwo() {
		return powerTwoHigh
	}
	return c.BaseValue()
}

// maxPower returns the highest option-adjusted power among the cards.
func maxPower(cs []cards.Card, o Options) int {
	max := -1
	for _, c := range cs {
		if p := cardPower(c, o); p > max {
			max = p
		}
	}
	return max
}
