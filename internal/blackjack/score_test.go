package blackjack

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  HandValue
	}{
		{"empty hand", "", HandValue{Total: 0, IsSoft: false, SoftAces: 0}},
		{"single ace", "As", HandValue{Total: 11, IsSoft: true, SoftAces: 1}},
		{"two aces", "AsAh", HandValue{Total: 12, IsSoft: true, SoftAces: 1}},
		{"four aces", "AsAhAdAc", HandValue{Total: 14, IsSoft: true, SoftAces: 1}},
		{"ace five six is hard twelve", "As5h6d", HandValue{Total: 12, IsSoft: false, SoftAces: 0}},
		{"natural", "AsTh", HandValue{Total: 21, IsSoft: true, SoftAces: 1}},
		{"face cards count ten", "JdQhKs", HandValue{Total: 30, IsSoft: false, SoftAces: 0}},
		{"numerals count face value", "2c3d4h", HandValue{Total: 9, IsSoft: false, SoftAces: 0}},
		{"soft seventeen", "Ah6h", HandValue{Total: 17, IsSoft: true, SoftAces: 1}},
		{"hard seventeen", "Ah6h2c8d", HandValue{Total: 17, IsSoft: false, SoftAces: 0}},
		{"bust", "KcQd5s", HandValue{Total: 25, IsSoft: false, SoftAces: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(deck.MustParseCards(tt.cards))
			if got != tt.want {
				t.Errorf("Score(%s) = %+v, want %+v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	a := Score(deck.MustParseCards("As5h6d"))
	b := Score(deck.MustParseCards("6d5hAs"))
	if a != b {
		t.Errorf("score depends on card order: %+v vs %+v", a, b)
	}
}
