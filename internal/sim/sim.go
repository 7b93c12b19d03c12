// Package sim plays blackjack rounds against the engine in bulk, spread
// across a worker pool, and aggregates outcome counts. It doubles as a
// soak test for the state machine and as the backing for the `sim` CLI
// command.
package sim

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// Config controls a simulation run
type Config struct {
	Rounds  int
	Workers int
	Seed    int64 // base seed; round i plays with Seed+i
	Rules   blackjack.Config

	// HitBelow is the player strategy threshold: hit while the active
	// hand totals less than this (the original front end's naive
	// strategy used 18)
	HitBelow int
}

// Result aggregates outcomes across all simulated rounds
type Result struct {
	Rounds      int
	PlayerWins  int
	DealerWins  int
	Draws       int
	PlayerBusts int
	DealerBusts int
	Splits      int
}

// PlayerWinRate returns the fraction of rounds ending in the player's
// favour (dealer busts included)
func (r Result) PlayerWinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.PlayerWins+r.DealerBusts) / float64(r.Rounds)
}

// Run simulates cfg.Rounds rounds across cfg.Workers goroutines. Each
// round plays a fresh game with a derived seed, so runs are reproducible
// for a fixed base seed regardless of worker count.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Result, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.HitBelow <= 0 {
		cfg.HitBelow = 17
	}

	var (
		mu    sync.Mutex
		total Result
	)

	rounds := make(chan int)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(rounds)
		for i := 0; i < cfg.Rounds; i++ {
			select {
			case rounds <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < cfg.Workers; w++ {
		group.Go(func() error {
			local := Result{}
			for i := range rounds {
				playRound(cfg, int64(i), &local)
			}
			mu.Lock()
			total.add(local)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return total, err
	}

	logger.Info("simulation complete",
		"rounds", total.Rounds,
		"player_wins", total.PlayerWins,
		"dealer_wins", total.DealerWins,
		"draws", total.Draws,
		"player_busts", total.PlayerBusts,
		"dealer_busts", total.DealerBusts,
		"splits", total.Splits)

	return total, nil
}

func playRound(cfg Config, round int64, res *Result) {
	rules := cfg.Rules
	if rules.InitialDeck == nil {
		rules.Seed = cfg.Seed + round
	}

	g := blackjack.New(rules)
	st := g.Next(blackjack.Deal)

	// A round is bounded by deck depth; the guard only protects against a
	// regression that stops the node advancing.
	for i := 0; i < 64 && !st.Over(); i++ {
		switch st.Node() {
		case blackjack.PlayersRound, blackjack.PlayersSplitRound:
			before := st.HandCount()
			st = g.Next(choosePlay(g, st, cfg.HitBelow))
			if st.HandCount() > before {
				res.Splits++
			}
		default:
			return
		}
	}

	res.Rounds++
	switch st.Node() {
	case blackjack.GameOverPlayerWins:
		res.PlayerWins++
	case blackjack.GameOverDealerWins:
		res.DealerWins++
	case blackjack.GameOverDraw:
		res.Draws++
	case blackjack.GameOverPlayerBusts:
		res.PlayerBusts++
	case blackjack.GameOverDealerBusts:
		res.DealerBusts++
	}
}

// choosePlay is a fixed strategy: always split aces and eights, otherwise
// hit below the threshold.
func choosePlay(g *blackjack.Game, st blackjack.State, hitBelow int) blackjack.Play {
	if g.CanSplit() {
		rank := st.ActiveHand().Cards[0].Rank
		if rank == deck.Ace || rank == deck.Eight {
			return blackjack.Split
		}
	}
	if st.ActiveHand().Total() < hitBelow {
		return blackjack.Hit
	}
	return blackjack.Stay
}

func (r *Result) add(other Result) {
	r.Rounds += other.Rounds
	r.PlayerWins += other.PlayerWins
	r.DealerWins += other.DealerWins
	r.Draws += other.Draws
	r.PlayerBusts += other.PlayerBusts
	r.DealerBusts += other.DealerBusts
	r.Splits += other.Splits
}
