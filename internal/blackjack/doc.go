// Package blackjack implements the rules engine for single-player casino
// blackjack: soft-ace hand scoring, split-hand bookkeeping, and the
// turn-based state machine with automatic dealer play.
//
// The main type is Game, which accepts Play commands and appends an
// immutable State snapshot per transition:
//
//	g := blackjack.New(blackjack.DefaultConfig())
//	st := g.Next(blackjack.Deal)
//	for st.Node() == blackjack.PlayersRound {
//	    st = g.Next(blackjack.Hit)
//	}
//
// Commands that are not valid in the current node are no-ops returning
// the unchanged state; the engine has no error paths.
//
// # Deterministic Play
//
// For reproducible rounds, fix the shuffle seed or inject a deck:
//
//	g := blackjack.New(blackjack.Config{HitSoft17: true, Seed: 42})
//
//	d, _ := blackjack.TestDeck("split_aces")
//	g = blackjack.New(blackjack.Config{HitSoft17: true, InitialDeck: &d})
//
// The named fixture decks cover the interesting branches: splits, split
// aces, naturals, and busts on either side.
package blackjack
