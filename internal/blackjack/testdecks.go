package blackjack

import (
	"sort"

	"github.com/lox/blackjack/internal/deck"
)

// Named deck fixtures for deterministic rounds. Card order is the deal
// order: player, dealer, player, dealer, then hit cards.
var testDecks = map[string][]deck.Card{
	// Player gets a pair of 8s (16), dealer gets 10+6 (16)
	"split_pair": deck.MustParseCards("8cTh8h6d 5s3c2h4d7s 6c9h2d"),

	// Player gets 10+8 (18), dealer gets 10+6 then draws 10 and busts
	"dealer_bust": deck.MustParseCards("TcTh8d6s Td"),

	// Player gets A+K for a natural 21
	"player_blackjack": deck.MustParseCards("AsThKd7c"),

	// Player gets 10+6 (16), the hit card is a 6 and busts
	"player_bust": deck.MustParseCards("TcTh6d7s 6c"),

	// Player gets a pair of Aces, the split hands draw 10 (21) and 9 (20),
	// dealer gets 10+6 then draws 10 and busts
	"split_aces": deck.MustParseCards("AcThAh6d Ts9c Td"),
}

// TestDeck returns a named fixture deck for deterministic play. The
// boolean is false when no deck of that name exists.
func TestDeck(name string) (deck.Deck, bool) {
	cards, ok := testDecks[name]
	if !ok {
		return deck.Deck{}, false
	}
	return deck.NewFromCards(cards), true
}

// TestDeckNames returns the available fixture deck names, sorted
func TestDeckNames() []string {
	names := make([]string, 0, len(testDecks))
	for name := range testDecks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
