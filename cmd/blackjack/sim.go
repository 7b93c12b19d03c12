package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/sim"
)

// SimCmd plays rounds in bulk with a fixed strategy and reports outcomes
type SimCmd struct {
	RulesFlags
	Rounds   int  `default:"10000" help:"Number of rounds to simulate"`
	Workers  int  `default:"0" help:"Worker goroutines (0 = GOMAXPROCS)"`
	HitBelow int  `default:"17" help:"Player hits while the active hand totals less than this"`
	Verbose  bool `short:"V" help:"Verbose logging"`
}

func (c *SimCmd) Run() error {
	cfg, _, err := c.RulesFlags.load()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	seed := c.Seed
	if seed == 0 {
		seed = 1
	}

	result, err := sim.Run(context.Background(), sim.Config{
		Rounds:   c.Rounds,
		Workers:  workers,
		Seed:     seed,
		Rules:    cfg,
		HitBelow: c.HitBelow,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Rounds:        %d (%s)\n", result.Rounds, describeRules(cfg))
	fmt.Printf("Player wins:   %d\n", result.PlayerWins)
	fmt.Printf("Dealer busts:  %d\n", result.DealerBusts)
	fmt.Printf("Dealer wins:   %d\n", result.DealerWins)
	fmt.Printf("Player busts:  %d\n", result.PlayerBusts)
	fmt.Printf("Pushes:        %d\n", result.Draws)
	fmt.Printf("Splits played: %d\n", result.Splits)
	fmt.Printf("Win rate:      %.1f%%\n", result.PlayerWinRate()*100)
	return nil
}
