package blackjack

import "github.com/lox/blackjack/internal/deck"

// HandValue is the blackjack value of a set of cards after soft-ace
// adjustment. It is computed on demand, never stored.
type HandValue struct {
	Total    int
	IsSoft   bool // at least one Ace is still counted as 11
	SoftAces int  // how many Aces are counted as 11
}

// Score computes the blackjack value of a hand. Aces count as 11 until
// the total would bust, then they are demoted to 1 one at a time. Face
// cards count 10, numerals their face value. The function is pure and
// order-independent; an empty hand scores {0, false, 0}.
func Score(cards []deck.Card) HandValue {
	total := 0
	aces := 0

	for _, c := range cards {
		switch {
		case c.IsAce():
			total += 11
			aces++
		case c.IsFaceCard():
			total += 10
		default:
			total += int(c.Rank)
		}
	}

	softAces := aces
	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}

	return HandValue{Total: total, IsSoft: softAces > 0, SoftAces: softAces}
}

// Total is a shorthand for Score(cards).Total
func Total(cards []deck.Card) int {
	return Score(cards).Total
}
