package blackjack

import "github.com/lox/blackjack/internal/deck"

// maxSplits caps how many times a single origin hand may be split,
// giving at most four concurrent hands.
const maxSplits = 3

// SingleHand is one of the player's concurrent hands, with the metadata
// needed to track split lineage and completion.
type SingleHand struct {
	Cards         []deck.Card
	FromSplit     bool
	FromSplitAces bool
	Complete      bool
	SplitCount    int
}

// Value returns the hand's blackjack value with soft-ace adjustment
func (h SingleHand) Value() HandValue {
	return Score(h.Cards)
}

// Total returns the hand's final total
func (h SingleHand) Total() int {
	return Score(h.Cards).Total
}

// Busted returns true if the hand total exceeds 21
func (h SingleHand) Busted() bool {
	return h.Total() > 21
}

func (h SingleHand) clone() SingleHand {
	cards := make([]deck.Card, len(h.Cards))
	copy(cards, h.Cards)
	h.Cards = cards
	return h
}

// canSplit reports whether this hand may be split: exactly two cards of
// matching rank, split budget remaining, and not a split-ace product
// unless resplitting aces is allowed.
func (h SingleHand) canSplit(allowResplitAces bool) bool {
	if len(h.Cards) != 2 || h.Cards[0].Rank != h.Cards[1].Rank {
		return false
	}
	if h.SplitCount >= maxSplits {
		return false
	}
	if h.FromSplitAces && !allowResplitAces {
		return false
	}
	return true
}

// PlayersHand tracks the player's one-to-four concurrent hands and the
// single active hand played at a time. Hands are ordered in split order
// and the active index only ever moves forward.
type PlayersHand struct {
	hands  []SingleHand
	active int
}

// NewPlayersHand creates a players hand holding one hand of the given cards
func NewPlayersHand(cards []deck.Card) PlayersHand {
	copied := make([]deck.Card, len(cards))
	copy(copied, cards)
	return PlayersHand{hands: []SingleHand{{Cards: copied}}}
}

// Hands returns the hands in split order
func (p PlayersHand) Hands() []SingleHand {
	hands := make([]SingleHand, len(p.hands))
	for i, h := range p.hands {
		hands[i] = h.clone()
	}
	return hands
}

// Count returns the number of concurrent hands
func (p PlayersHand) Count() int {
	return len(p.hands)
}

// ActiveIndex returns the index of the hand currently being played
func (p PlayersHand) ActiveIndex() int {
	return p.active
}

// Active returns the hand currently being played
func (p PlayersHand) Active() SingleHand {
	return p.hands[p.active].clone()
}

// ActiveCards returns the active hand's cards
func (p PlayersHand) ActiveCards() []deck.Card {
	return p.Active().Cards
}

// ActiveTotal returns the active hand's total
func (p PlayersHand) ActiveTotal() int {
	return p.hands[p.active].Total()
}

// ActiveBusted returns true if the active hand's total exceeds 21
func (p PlayersHand) ActiveBusted() bool {
	return p.hands[p.active].Busted()
}

// CanSplit reports whether the active hand may be split under the given
// resplit-aces rule
func (p PlayersHand) CanSplit(allowResplitAces bool) bool {
	return p.hands[p.active].canSplit(allowResplitAces)
}

// AddToActive appends a card to the active hand
func (p *PlayersHand) AddToActive(card deck.Card) {
	p.hands[p.active].Cards = append(p.hands[p.active].Cards, card)
}

// Split divides the active two-card hand into two hands. The original
// slot keeps the first dealt card plus cardForOriginal; the sibling takes
// the second card plus cardForNew and is inserted immediately after the
// active hand, so later hands shift right but keep their play order.
// Splitting Aces marks both hands complete: no further hits are allowed
// on split-ace hands.
func (p *PlayersHand) Split(cardForOriginal, cardForNew deck.Card) {
	active := p.hands[p.active]
	first, second := active.Cards[0], active.Cards[1]
	isAces := first.Rank == deck.Ace

	original := SingleHand{
		Cards:         []deck.Card{first, cardForOriginal},
		FromSplit:     true,
		FromSplitAces: isAces,
		Complete:      isAces,
		SplitCount:    active.SplitCount + 1,
	}
	sibling := SingleHand{
		Cards:         []deck.Card{second, cardForNew},
		FromSplit:     true,
		FromSplitAces: isAces,
		Complete:      isAces,
		SplitCount:    active.SplitCount + 1,
	}

	hands := make([]SingleHand, 0, len(p.hands)+1)
	hands = append(hands, p.hands[:p.active]...)
	hands = append(hands, original, sibling)
	hands = append(hands, p.hands[p.active+1:]...)
	p.hands = hands
}

// MarkActiveComplete marks the active hand as finished
func (p *PlayersHand) MarkActiveComplete() {
	p.hands[p.active].Complete = true
}

// AdvanceToNextIncomplete moves the active index forward to the next
// incomplete hand. It never revisits earlier hands. Returns false and
// leaves the index unchanged when no incomplete hand remains; callers
// should then check AllComplete or AllBusted.
func (p *PlayersHand) AdvanceToNextIncomplete() bool {
	for i := p.active + 1; i < len(p.hands); i++ {
		if !p.hands[i].Complete {
			p.active = i
			return true
		}
	}
	return false
}

// AllComplete returns true when every hand is finished
func (p PlayersHand) AllComplete() bool {
	for _, h := range p.hands {
		if !h.Complete {
			return false
		}
	}
	return true
}

// AllBusted returns true when every hand is finished and over 21
func (p PlayersHand) AllBusted() bool {
	for _, h := range p.hands {
		if !h.Complete || !h.Busted() {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy
func (p PlayersHand) Clone() PlayersHand {
	return PlayersHand{hands: p.Hands(), active: p.active}
}

// DealersHand is the dealer's single hand. The dealer never splits; play
// is driven entirely by the house hit/stand policy.
type DealersHand struct {
	cards []deck.Card
}

// NewDealersHand creates a dealer hand with the given cards
func NewDealersHand(cards []deck.Card) DealersHand {
	copied := make([]deck.Card, len(cards))
	copy(copied, cards)
	return DealersHand{cards: copied}
}

// Cards returns the dealer's cards in deal order
func (d DealersHand) Cards() []deck.Card {
	cards := make([]deck.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Add appends a drawn card
func (d *DealersHand) Add(card deck.Card) {
	d.cards = append(d.cards, card)
}

// Value returns the hand's blackjack value
func (d DealersHand) Value() HandValue {
	return Score(d.cards)
}

// Total returns the hand's final total
func (d DealersHand) Total() int {
	return Score(d.cards).Total
}

// Clone returns an independent copy
func (d DealersHand) Clone() DealersHand {
	return NewDealersHand(d.cards)
}
