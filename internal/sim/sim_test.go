package sim

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/blackjack"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRunCountsEveryRound(t *testing.T) {
	res, err := Run(context.Background(), Config{
		Rounds:  500,
		Workers: 4,
		Seed:    1,
		Rules:   blackjack.DefaultConfig(),
	}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 500, res.Rounds)
	outcomes := res.PlayerWins + res.DealerWins + res.Draws +
		res.PlayerBusts + res.DealerBusts
	assert.Equal(t, 500, outcomes, "every round should settle in exactly one outcome")
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	cfg := Config{Rounds: 200, Seed: 42, Rules: blackjack.DefaultConfig()}

	cfg.Workers = 1
	a, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	cfg.Workers = 8
	b, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunWithFixtureDeck(t *testing.T) {
	d, ok := blackjack.TestDeck("player_blackjack")
	require.True(t, ok)

	rules := blackjack.DefaultConfig()
	rules.InitialDeck = &d

	res, err := Run(context.Background(), Config{
		Rounds: 10,
		Rules:  rules,
	}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 10, res.PlayerWins, "natural 21 every round")
	assert.Zero(t, res.DealerWins)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Rounds: 1_000_000, Workers: 2, Rules: blackjack.DefaultConfig()}, discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayerWinRate(t *testing.T) {
	assert.Zero(t, Result{}.PlayerWinRate())

	r := Result{Rounds: 10, PlayerWins: 3, DealerBusts: 2}
	assert.InDelta(t, 0.5, r.PlayerWinRate(), 1e-9)
}

func TestChoosePlaySplitsAcesAndEights(t *testing.T) {
	d, ok := blackjack.TestDeck("split_pair")
	require.True(t, ok)

	g := blackjack.New(blackjack.Config{HitSoft17: true, InitialDeck: &d})
	st := g.Next(blackjack.Deal)

	assert.Equal(t, blackjack.Split, choosePlay(g, st, 17))
}

func TestChoosePlayHitsBelowThreshold(t *testing.T) {
	d, ok := blackjack.TestDeck("dealer_bust")
	require.True(t, ok)

	g := blackjack.New(blackjack.Config{HitSoft17: true, InitialDeck: &d})
	st := g.Next(blackjack.Deal) // player holds 18

	assert.Equal(t, blackjack.Stay, choosePlay(g, st, 17))
	assert.Equal(t, blackjack.Hit, choosePlay(g, st, 19))
}
