package blackjack

import "github.com/lox/blackjack/internal/deck"

// State is an immutable snapshot of one point in a round: the node, the
// player's hands, the dealer's hand, and the remaining deck. States are
// produced by Game.Next and may be shared freely between observers.
type State struct {
	node    Node
	players PlayersHand
	dealer  DealersHand
	deck    deck.Deck
}

// NewState builds a snapshot from its parts. The hands and deck are
// copied so later play cannot reach back into an earlier snapshot.
func NewState(node Node, players PlayersHand, dealer DealersHand, d deck.Deck) State {
	return State{
		node:    node,
		players: players.Clone(),
		dealer:  dealer.Clone(),
		deck:    d.Clone(),
	}
}

// Node returns the snapshot's game node
func (s State) Node() Node {
	return s.node
}

// Players returns a copy of the player's hand collection
func (s State) Players() PlayersHand {
	return s.players.Clone()
}

// PlayerHands returns the player's hands in split order
func (s State) PlayerHands() []SingleHand {
	return s.players.Hands()
}

// HandCount returns how many concurrent player hands exist
func (s State) HandCount() int {
	return s.players.Count()
}

// ActiveIndex returns which player hand is currently being played
func (s State) ActiveIndex() int {
	return s.players.ActiveIndex()
}

// ActiveHand returns the player hand currently being played
func (s State) ActiveHand() SingleHand {
	return s.players.Active()
}

// Dealer returns a copy of the dealer's hand
func (s State) Dealer() DealersHand {
	return s.dealer.Clone()
}

// DealerCards returns the dealer's cards in deal order
func (s State) DealerCards() []deck.Card {
	return s.dealer.Cards()
}

// Deck returns a copy of the remaining deck
func (s State) Deck() deck.Deck {
	return s.deck.Clone()
}

// DeckRemaining returns how many cards are left to deal
func (s State) DeckRemaining() int {
	return s.deck.Size()
}

// CanSplit reports whether splitting the active hand is currently legal
// under the given resplit-aces rule. Splitting is only ever legal during
// the player's turn.
func (s State) CanSplit(allowResplitAces bool) bool {
	if s.node != PlayersRound && s.node != PlayersSplitRound {
		return false
	}
	return s.players.CanSplit(allowResplitAces)
}

// Over returns true once a terminal node is reached
func (s State) Over() bool {
	return s.node.Terminal()
}

// Outcome returns the human-readable result label, empty until the game ends
func (s State) Outcome() string {
	return s.node.Outcome()
}

// Equal reports whether two snapshots are identical in node, hands,
// active index, and remaining deck.
func (s State) Equal(other State) bool {
	if s.node != other.node || s.players.active != other.players.active {
		return false
	}
	if len(s.players.hands) != len(other.players.hands) {
		return false
	}
	for i, h := range s.players.hands {
		if !handsEqual(h, other.players.hands[i]) {
			return false
		}
	}
	if !cardsEqual(s.dealer.cards, other.dealer.cards) {
		return false
	}
	return s.deck.Equal(other.deck)
}

func handsEqual(a, b SingleHand) bool {
	return cardsEqual(a.Cards, b.Cards) &&
		a.FromSplit == b.FromSplit &&
		a.FromSplitAces == b.FromSplitAces &&
		a.Complete == b.Complete &&
		a.SplitCount == b.SplitCount
}

func cardsEqual(a, b []deck.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
