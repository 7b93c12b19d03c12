package server

import (
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// Client to server message types
const (
	TypePlay     = "play"
	TypeNewRound = "new_round"
)

// Server to client message types
const (
	TypeWelcome = "welcome"
	TypeState   = "state"
	TypeError   = "error"
)

// ClientMessage is a command from the client
type ClientMessage struct {
	Type string `json:"type"`
	Play string `json:"play,omitempty"`
}

// ServerMessage is an envelope sent to the client
type ServerMessage struct {
	Type    string         `json:"type"`
	Error   string         `json:"error,omitempty"`
	Welcome *Welcome       `json:"welcome,omitempty"`
	State   *StateSnapshot `json:"state,omitempty"`
}

// Welcome describes the session's rules to a newly connected client
type Welcome struct {
	HitSoft17        bool     `json:"hit_soft_17"`
	AllowResplitAces bool     `json:"allow_resplit_aces"`
	TestDecks        []string `json:"test_decks"`
}

// HandSnapshot is one player hand in wire form
type HandSnapshot struct {
	Cards         []string `json:"cards"`
	Total         int      `json:"total"`
	Complete      bool     `json:"complete"`
	FromSplit     bool     `json:"from_split,omitempty"`
	FromSplitAces bool     `json:"from_split_aces,omitempty"`
}

// StateSnapshot is the full game state in wire form. The dealer's hole
// card is masked while the player's turn is in progress, so a client can
// never peek ahead of the table.
type StateSnapshot struct {
	Node          string         `json:"node"`
	PlayerHands   []HandSnapshot `json:"player_hands"`
	ActiveIndex   int            `json:"active_index"`
	DealerCards   []string       `json:"dealer_cards"`
	DealerTotal   int            `json:"dealer_total,omitempty"`
	DeckRemaining int            `json:"deck_remaining"`
	CanSplit      bool           `json:"can_split"`
	Over          bool           `json:"over"`
	Outcome       string         `json:"outcome,omitempty"`
}

// NewStateSnapshot converts an engine snapshot to wire form under the
// given resplit rule
func NewStateSnapshot(st blackjack.State, allowResplitAces bool) *StateSnapshot {
	hands := st.PlayerHands()
	snap := &StateSnapshot{
		Node:          st.Node().String(),
		PlayerHands:   make([]HandSnapshot, len(hands)),
		ActiveIndex:   st.ActiveIndex(),
		DeckRemaining: st.DeckRemaining(),
		CanSplit:      st.CanSplit(allowResplitAces),
		Over:          st.Over(),
		Outcome:       st.Outcome(),
	}

	for i, hand := range hands {
		snap.PlayerHands[i] = HandSnapshot{
			Cards:         cardStrings(hand.Cards),
			Total:         hand.Total(),
			Complete:      hand.Complete,
			FromSplit:     hand.FromSplit,
			FromSplitAces: hand.FromSplitAces,
		}
	}

	holeHidden := st.Node() == blackjack.PlayersRound || st.Node() == blackjack.PlayersSplitRound
	snap.DealerCards = cardStrings(st.DealerCards())
	if holeHidden && len(snap.DealerCards) > 0 {
		snap.DealerCards[0] = "??"
	} else {
		snap.DealerTotal = blackjack.Total(st.DealerCards())
	}

	return snap
}

func cardStrings(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
