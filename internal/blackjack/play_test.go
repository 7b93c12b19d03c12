package blackjack

import "testing"

func TestParsePlay(t *testing.T) {
	tests := []struct {
		in      string
		want    Play
		wantErr bool
	}{
		{"deal", Deal, false},
		{"d", Deal, false},
		{"hit", Hit, false},
		{"h", Hit, false},
		{"stay", Stay, false},
		{"stand", Stay, false},
		{"s", Stay, false},
		{"split", Split, false},
		{"p", Split, false},
		{"HIT", Hit, false},
		{" stay ", Stay, false},
		{"double", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePlay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePlay(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePlay(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlayRoundTrips(t *testing.T) {
	for _, play := range []Play{Deal, Hit, Stay, Split} {
		got, err := ParsePlay(play.String())
		if err != nil {
			t.Errorf("ParsePlay(%v.String()) error: %v", play, err)
		}
		if got != play {
			t.Errorf("round trip of %v gave %v", play, got)
		}
	}
}

func TestNodeTerminal(t *testing.T) {
	terminal := []Node{GameOverPlayerBusts, GameOverPlayerWins,
		GameOverDealerBusts, GameOverDealerWins, GameOverDraw}
	running := []Node{Ready, PlayersRound, PlayersSplitRound, DealersRound}

	for _, n := range terminal {
		if !n.Terminal() {
			t.Errorf("%v should be terminal", n)
		}
		if n.Outcome() == "" {
			t.Errorf("%v should have an outcome label", n)
		}
	}
	for _, n := range running {
		if n.Terminal() {
			t.Errorf("%v should not be terminal", n)
		}
		if n.Outcome() != "" {
			t.Errorf("%v should have no outcome label", n)
		}
	}
}
