package cards

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// DeckSize is the number of cards in one full set.
const DeckSize = 52

type Deck struct {
	cards   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewDeck builds numDecks full 52-card sets and shuffles them.
// A nil source is seeded from crypto/rand; tests inject a fixed source
// for deterministic ordering.
func NewDeck(numDecks int, source rand.Source) *Deck {
	if numDecks < 1 {
		numDecks = 1
	}
	if source == nil {
		source = newSeed()
	}
	deck := &Deck{randGen: rand.New(source)}
	deck.cards = fullSets(numDecks)
	deck.shuffle()
	return deck
}

// NewDeckNoShuffle returns numDecks full sets in canonical order.
func NewDeckNoShuffle(numDecks int) *Deck {
	if numDecks < 1 {
		numDecks = 1
	}
	return &Deck{cards: fullSets(numDecks)}
}

// NewDeckFromCards builds a deck that deals the given cards in order.
// Used by scripted games to pin every hand.
func NewDeckFromCards(cards []Card) *Deck {
	copied := make([]Card, len(cards))
	copy(copied, cards)
	return &Deck{cards: copied}
}

func fullSets(numDecks int) []Card {
	cards := make([]Card, 0, numDecks*DeckSize)
	for d := 0; d < numDecks; d++ {
		for rank := range strRanks {
			for _, suit := range []int{Spade, Heart, Diamond, Club} {
				cards = append(cards, Card(rank<<4|suit))
			}
		}
	}
	return cards
}

// shuffle runs Fisher-Yates over the whole deck.
func (deck *Deck) shuffle() {
	for i := len(deck.cards) - 1; i > 0; i-- {
		loc := deck.randGen.Intn(i + 1)
		deck.cards[i], deck.cards[loc] = deck.cards[loc], deck.cards[i]
	}
}

func (deck *Deck) Draw(n int) []Card {
	if n > len(deck.cards) {
		n = len(deck.cards)
	}
	cards := make([]Card, n)
	copy(cards, deck.cards[:n])
	deck.cards = deck.cards[n:]
	return cards
}

func (deck *Deck) Size() int {
	return len(deck.cards)
}

func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}
