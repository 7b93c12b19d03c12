package blackjack

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestCanSplit(t *testing.T) {
	tests := []struct {
		name             string
		hand             SingleHand
		allowResplitAces bool
		want             bool
	}{
		{
			name: "pair of eights",
			hand: SingleHand{Cards: deck.MustParseCards("8c8h")},
			want: true,
		},
		{
			name: "mismatched ranks",
			hand: SingleHand{Cards: deck.MustParseCards("8cTh")},
			want: false,
		},
		{
			name: "three cards",
			hand: SingleHand{Cards: deck.MustParseCards("8c8h8d")},
			want: false,
		},
		{
			name: "split budget exhausted",
			hand: SingleHand{Cards: deck.MustParseCards("8c8h"), SplitCount: 3},
			want: false,
		},
		{
			name: "split budget remaining",
			hand: SingleHand{Cards: deck.MustParseCards("8c8h"), SplitCount: 2, FromSplit: true},
			want: true,
		},
		{
			name: "split aces cannot resplit by default",
			hand: SingleHand{Cards: deck.MustParseCards("AcAd"), FromSplit: true, FromSplitAces: true},
			want: false,
		},
		{
			name:             "split aces resplit when allowed",
			hand:             SingleHand{Cards: deck.MustParseCards("AcAd"), FromSplit: true, FromSplitAces: true},
			allowResplitAces: true,
			want:             true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.canSplit(tt.allowResplitAces); got != tt.want {
				t.Errorf("canSplit(%v) = %v, want %v", tt.allowResplitAces, got, tt.want)
			}
		})
	}
}

func TestSplitKeepsDealOrder(t *testing.T) {
	p := NewPlayersHand(deck.MustParseCards("8c8h"))
	p.Split(deck.NewCard(deck.Five, deck.Spades), deck.NewCard(deck.Three, deck.Clubs))

	hands := p.Hands()
	if len(hands) != 2 {
		t.Fatalf("expected 2 hands, got %d", len(hands))
	}

	// Original slot keeps the first dealt card, sibling takes the second
	if hands[0].Cards[0] != deck.NewCard(deck.Eight, deck.Clubs) {
		t.Errorf("original hand first card = %v, want 8♣", hands[0].Cards[0])
	}
	if hands[0].Cards[1] != deck.NewCard(deck.Five, deck.Spades) {
		t.Errorf("original hand second card = %v, want 5♠", hands[0].Cards[1])
	}
	if hands[1].Cards[0] != deck.NewCard(deck.Eight, deck.Hearts) {
		t.Errorf("sibling hand first card = %v, want 8♥", hands[1].Cards[0])
	}
	if hands[1].Cards[1] != deck.NewCard(deck.Three, deck.Clubs) {
		t.Errorf("sibling hand second card = %v, want 3♣", hands[1].Cards[1])
	}

	for i, h := range hands {
		if !h.FromSplit {
			t.Errorf("hand %d should be marked from split", i)
		}
		if h.FromSplitAces || h.Complete {
			t.Errorf("hand %d should be open after a non-ace split", i)
		}
		if h.SplitCount != 1 {
			t.Errorf("hand %d split count = %d, want 1", i, h.SplitCount)
		}
	}
	if p.ActiveIndex() != 0 {
		t.Errorf("active index = %d, want 0", p.ActiveIndex())
	}
}

func TestSplitAcesAutoComplete(t *testing.T) {
	p := NewPlayersHand(deck.MustParseCards("AcAh"))
	p.Split(deck.NewCard(deck.Ten, deck.Spades), deck.NewCard(deck.Nine, deck.Clubs))

	for i, h := range p.Hands() {
		if !h.Complete {
			t.Errorf("split-ace hand %d should be complete immediately", i)
		}
		if !h.FromSplitAces {
			t.Errorf("split-ace hand %d should carry the ace lineage flag", i)
		}
	}
	if !p.AllComplete() {
		t.Error("splitting aces should complete the whole turn")
	}
}

func TestSplitInsertsSiblingAfterActive(t *testing.T) {
	// Build three hands by splitting twice, then resplit the middle hand
	p := NewPlayersHand(deck.MustParseCards("8c8h"))
	p.Split(deck.NewCard(deck.Eight, deck.Diamonds), deck.NewCard(deck.Two, deck.Clubs))
	// Hands: [8c 8d] [8h 2c], active 0; resplit the active pair
	p.Split(deck.NewCard(deck.Five, deck.Hearts), deck.NewCard(deck.Nine, deck.Spades))

	hands := p.Hands()
	if len(hands) != 3 {
		t.Fatalf("expected 3 hands, got %d", len(hands))
	}
	if hands[0].Cards[0] != deck.NewCard(deck.Eight, deck.Clubs) {
		t.Errorf("hand 0 leads with %v, want 8♣", hands[0].Cards[0])
	}
	if hands[1].Cards[0] != deck.NewCard(deck.Eight, deck.Diamonds) {
		t.Errorf("sibling not inserted after active: hand 1 leads with %v", hands[1].Cards[0])
	}
	if hands[2].Cards[0] != deck.NewCard(deck.Eight, deck.Hearts) {
		t.Errorf("later hand should shift right, hand 2 leads with %v", hands[2].Cards[0])
	}
	if hands[0].SplitCount != 2 || hands[1].SplitCount != 2 {
		t.Errorf("resplit hands should carry split count 2, got %d and %d",
			hands[0].SplitCount, hands[1].SplitCount)
	}
	if hands[2].SplitCount != 1 {
		t.Errorf("untouched hand split count = %d, want 1", hands[2].SplitCount)
	}
}

func TestAdvanceToNextIncomplete(t *testing.T) {
	p := NewPlayersHand(deck.MustParseCards("8c8h"))
	p.Split(deck.NewCard(deck.Five, deck.Spades), deck.NewCard(deck.Three, deck.Clubs))

	p.MarkActiveComplete()
	if !p.AdvanceToNextIncomplete() {
		t.Fatal("expected to advance to the second hand")
	}
	if p.ActiveIndex() != 1 {
		t.Errorf("active index = %d, want 1", p.ActiveIndex())
	}

	p.MarkActiveComplete()
	if p.AdvanceToNextIncomplete() {
		t.Error("no incomplete hand remains, advance should report false")
	}
	if p.ActiveIndex() != 1 {
		t.Errorf("failed advance must not move the index, got %d", p.ActiveIndex())
	}
	if !p.AllComplete() {
		t.Error("both hands are complete")
	}
}

func TestAllBustedRequiresCompletionAndBust(t *testing.T) {
	p := NewPlayersHand(deck.MustParseCards("8c8h"))
	p.Split(deck.NewCard(deck.King, deck.Spades), deck.NewCard(deck.Queen, deck.Clubs))

	// Bust the first hand
	p.AddToActive(deck.NewCard(deck.King, deck.Hearts))
	p.MarkActiveComplete()
	p.AdvanceToNextIncomplete()

	if p.AllBusted() {
		t.Error("second hand is still open")
	}

	// Bust the second hand too
	p.AddToActive(deck.NewCard(deck.Queen, deck.Diamonds))
	p.MarkActiveComplete()

	if !p.AllBusted() {
		t.Error("both hands are complete and over 21")
	}
	if !p.AllComplete() {
		t.Error("busted hands are complete")
	}
}

func TestAddToActiveOnlyTouchesActiveHand(t *testing.T) {
	p := NewPlayersHand(deck.MustParseCards("8c8h"))
	p.Split(deck.NewCard(deck.Five, deck.Spades), deck.NewCard(deck.Three, deck.Clubs))

	p.AddToActive(deck.NewCard(deck.Two, deck.Hearts))

	hands := p.Hands()
	if len(hands[0].Cards) != 3 {
		t.Errorf("active hand has %d cards, want 3", len(hands[0].Cards))
	}
	if len(hands[1].Cards) != 2 {
		t.Errorf("inactive hand has %d cards, want 2", len(hands[1].Cards))
	}
}

func TestPlayersHandCloneIsIndependent(t *testing.T) {
	p := NewPlayersHand(deck.MustParseCards("8c8h"))
	clone := p.Clone()

	p.AddToActive(deck.NewCard(deck.Two, deck.Hearts))
	if len(clone.ActiveCards()) != 2 {
		t.Error("clone grew with its source")
	}
}

func TestDealersHand(t *testing.T) {
	d := NewDealersHand(deck.MustParseCards("Th6d"))
	if d.Total() != 16 {
		t.Errorf("total = %d, want 16", d.Total())
	}

	d.Add(deck.NewCard(deck.Ace, deck.Spades))
	if d.Total() != 17 {
		t.Errorf("total after demoted ace = %d, want 17", d.Total())
	}
	if d.Value().IsSoft {
		t.Error("T+6+A is a hard 17, the ace counts as 1")
	}
}
