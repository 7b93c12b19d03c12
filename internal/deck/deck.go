package deck

import rand "math/rand/v2"

// Deck is an ordered sequence of cards, front of the slice being the top
// of the deck. Deck is a value type: each game state owns its own copy,
// and shuffling never mutates its input.
type Deck struct {
	cards []Card
}

// New creates the standard ordered 52-card deck: thirteen ranks per suit,
// suits in Clubs, Diamonds, Hearts, Spades order.
func New() Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return Deck{cards: cards}
}

// NewFromCards creates a deck with an explicit card order, used for
// deterministic play and test fixtures. The cards are copied.
func NewFromCards(cards []Card) Deck {
	copied := make([]Card, len(cards))
	copy(copied, cards)
	return Deck{cards: copied}
}

// Shuffle returns a new deck holding a Fisher-Yates permutation of d's
// cards. The source deck is left untouched.
func Shuffle(d Deck, rng *rand.Rand) Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return Deck{cards: cards}
}

// Deal removes and returns the first n cards. If n exceeds the deck size
// the deck is unchanged and the result is empty; this is a defined no-op
// rather than an error. Deal(0) likewise returns empty.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 || n > len(d.cards) {
		return nil
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// Cards returns the remaining cards in order, front first
func (d Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Size returns the number of cards left in the deck
func (d Deck) Size() int {
	return len(d.cards)
}

// Empty returns true if the deck has no cards left
func (d Deck) Empty() bool {
	return len(d.cards) == 0
}

// Clone returns an independent copy of the deck
func (d Deck) Clone() Deck {
	return NewFromCards(d.cards)
}

// Equal reports structural equality: same cards in the same order
func (d Deck) Equal(other Deck) bool {
	if len(d.cards) != len(other.cards) {
		return false
	}
	for i, c := range d.cards {
		if c != other.cards[i] {
			return false
		}
	}
	return true
}
