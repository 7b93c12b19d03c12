// Package display renders blackjack hands for plain (non-TUI) terminal
// sessions, colouring suits when the terminal supports it.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// Plain is a line-oriented renderer and input loop: prompt, read a key,
// apply the play, print the new state. It is the fallback for terminals
// where the full-screen TUI is unwanted.
type Plain struct {
	out     io.Writer
	in      *bufio.Scanner
	profile termenv.Profile
}

// NewPlain creates a renderer writing to out and reading commands from in
func NewPlain(out io.Writer, in io.Reader) *Plain {
	return &Plain{
		out:     out,
		in:      bufio.NewScanner(in),
		profile: termenv.ColorProfile(),
	}
}

// Run plays rounds until the input ends or the player quits
func (p *Plain) Run(newGame func() *blackjack.Game) error {
	for {
		game := newGame()
		fmt.Fprintln(p.out, "Let's play some blackjack!")

		st := game.Next(blackjack.Deal)
		p.printState(game, st)

		for st.Node() == blackjack.PlayersRound || st.Node() == blackjack.PlayersSplitRound {
			play, ok := p.readPlay(game.CanSplit())
			if !ok {
				return nil
			}
			st = game.Next(play)
			p.printState(game, st)
		}

		fmt.Fprint(p.out, "Play again? (y/n) ")
		if !p.in.Scan() || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(p.in.Text())), "y") {
			return p.in.Err()
		}
	}
}

func (p *Plain) readPlay(canSplit bool) (blackjack.Play, bool) {
	for {
		if canSplit {
			fmt.Fprintln(p.out, "Press 'h' to hit, 's' to stay, or 'p' to split.")
		} else {
			fmt.Fprintln(p.out, "Press 'h' to hit or 's' to stay.")
		}
		if !p.in.Scan() {
			return 0, false
		}
		input := strings.TrimSpace(p.in.Text())
		if input == "q" || input == "quit" {
			return 0, false
		}
		play, err := blackjack.ParsePlay(input)
		if err != nil || (play == blackjack.Split && !canSplit) || play == blackjack.Deal {
			fmt.Fprintf(p.out, "Invalid move: %s\n", input)
			continue
		}
		return play, true
	}
}

func (p *Plain) printState(game *blackjack.Game, st blackjack.State) {
	fmt.Fprintln(p.out)

	switch st.Node() {
	case blackjack.PlayersRound:
		fmt.Fprintf(p.out, "Dealer: %s\n", p.FormatHandHidden(st.DealerCards(), 1))
		active := st.ActiveHand()
		fmt.Fprintf(p.out, "Player: %s (%d)\n", p.FormatHand(active.Cards), active.Total())

	case blackjack.PlayersSplitRound:
		fmt.Fprintf(p.out, "Dealer: %s\n", p.FormatHandHidden(st.DealerCards(), 1))
		fmt.Fprintln(p.out, "Split hands:")
		for i, hand := range st.PlayerHands() {
			marker := ""
			if i == st.ActiveIndex() {
				marker = " (active)"
			}
			if hand.Complete {
				marker += " [done]"
			}
			fmt.Fprintf(p.out, "  Hand %d%s: %s (%d)\n", i+1, marker, p.FormatHand(hand.Cards), hand.Total())
		}

	default:
		fmt.Fprintf(p.out, "Dealer: %s (%d)\n", p.FormatHand(st.DealerCards()), blackjack.Total(st.DealerCards()))
		for i, hand := range st.PlayerHands() {
			label := "Player"
			if st.HandCount() > 1 {
				label = fmt.Sprintf("Hand %d", i+1)
			}
			fmt.Fprintf(p.out, "%s: %s (%d)\n", label, p.FormatHand(hand.Cards), hand.Total())
		}
		if st.Over() {
			fmt.Fprintln(p.out, st.Outcome())
		}
	}
}

// FormatHand renders cards space-separated, red suits coloured
func (p *Plain) FormatHand(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.FormatCard(c)
	}
	return strings.Join(parts, " ")
}

// FormatHandHidden renders a hand with the first n cards masked, as the
// dealer's hole card is until the player's turn ends
func (p *Plain) FormatHandHidden(cards []deck.Card, hide int) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if i < hide {
			parts[i] = "??"
			continue
		}
		parts[i] = p.FormatCard(c)
	}
	return strings.Join(parts, " ")
}

// FormatCard renders one card, coloured by suit when supported
func (p *Plain) FormatCard(c deck.Card) string {
	s := termenv.String(c.String())
	if c.IsRed() {
		return s.Foreground(p.profile.Color("1")).String()
	}
	return s.String()
}
