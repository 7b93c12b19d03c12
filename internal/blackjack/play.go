package blackjack

import (
	"fmt"
	"strings"
)

// Play is a player command issued against the current game state.
type Play int

const (
	Deal Play = iota
	Hit
	Stay
	Split
)

// String returns the play name
func (p Play) String() string {
	switch p {
	case Deal:
		return "deal"
	case Hit:
		return "hit"
	case Stay:
		return "stay"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// ParsePlay converts a command name to a Play. Accepts the full names
// plus the single-letter forms used by the terminal front end ("stand"
// is a synonym for "stay").
func ParsePlay(s string) (Play, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deal", "d":
		return Deal, nil
	case "hit", "h":
		return Hit, nil
	case "stay", "stand", "s":
		return Stay, nil
	case "split", "p":
		return Split, nil
	default:
		return 0, fmt.Errorf("unknown play %q", s)
	}
}
