package cards

import (
	"fmt"
	"strings"
)

// Card packs a playing card into a byte: rank index in the high nibble,
// suit bit in the low nibble. The rank index follows President order,
// 3 lowest through 2 highest.
type Card uint8

const strRanks = "3456789TJQKA2"

const (
	Spade   int = 1
	Heart   int = 2
	Diamond int = 4
	Club    int = 8
)

var (
	charRankToIntRank = map[uint8]int{}
	charSuitToIntSuit = map[uint8]int{
		's': Spade,
		'h': Heart,
		'd': Diamond,
		'c': Club,
	}
	intSuitToCharSuit = "xshxdxxxc"
	prettySuits       = map[int]string{
		Spade:   "♠",
		Heart:   "❤",
		Diamond: "♦",
		Club:    "♣",
	}
)

func init() {
	for i := range strRanks {
		charRankToIntRank[strRanks[i]] = i
	}
}

// New builds a card from its two character ascii form, e.g. "3s", "Th", "2c".
func New(s string) Card {
	if len(s) != 2 {
		panic(fmt.Sprintf("invalid card string [%s]", s))
	}
	rankInt, ok := charRankToIntRank[s[0]]
	if !ok {
		panic(fmt.Sprintf("invalid card rank [%s]", s))
	}
	suitInt, ok := charSuitToIntSuit[s[1]]
	if !ok {
		panic(fmt.Sprintf("invalid card suit [%s]", s))
	}
	return Card(rankInt<<4 | suitInt)
}

// Parse converts a slice of ascii cards ("3s", "Kh", ...) into Cards.
// Unlike New, it reports bad input instead of panicking.
func Parse(strs []string) ([]Card, error) {
	parsed := make([]Card, len(strs))
	for i, s := range strs {
		if len(s) != 2 {
			return nil, fmt.Errorf("invalid card string [%s]", s)
		}
		rankInt, ok := charRankToIntRank[s[0]]
		if !ok {
			return nil, fmt.Errorf("invalid card rank [%s]", s)
		}
		suitInt, ok := charSuitToIntSuit[s[1]]
		if !ok {
			return nil, fmt.Errorf("invalid card suit [%s]", s)
		}
		parsed[i] = Card(rankInt<<4 | suitInt)
	}
	return parsed, nil
}

// Rank returns the President rank index, 0 (three) through 12 (two).
func (c Card) Rank() int {
	return int(c>>4) & 0xF
}

func (c Card) Suit() int {
	return int(c) & 0xF
}

// BaseValue is the option-independent rank order 1..13 (3 lowest, 2 highest).
func (c Card) BaseValue() int {
	return c.Rank() + 1
}

func (c Card) IsRed() bool {
	return c.Suit() == Heart || c.Suit() == Diamond
}

func (c Card) IsThree() bool {
	return c.Rank() == 0
}

func (c Card) IsTwo() bool {
	return c.Rank() == 12
}

func (c Card) RankChar() string {
	return string(strRanks[c.Rank()])
}

func (c Card) String() string {
	return string(strRanks[c.Rank()]) + string(intSuitToCharSuit[c.Suit()])
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) != 4 {
		return fmt.Errorf("invalid card json %s", string(b))
	}
	parsed, err := Parse([]string{string(b[1:3])})
	if err != nil {
		return err
	}
	*c = parsed[0]
	return nil
}

func CardToString(card Card) string {
	return fmt.Sprintf("%s%s", card.RankChar(), prettySuits[card.Suit()])
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", CardToString(c))
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

// ToStrings converts cards to their ascii forms for wire messages.
func ToStrings(cards []Card) []string {
	strs := make([]string, len(cards))
	for i, c := range cards {
		strs[i] = c.String()
	}
	return strs
}
