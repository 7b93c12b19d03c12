package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/server"
)

// ServeCmd runs the websocket service
type ServeCmd struct {
	RulesFlags
	Addr  string `help:"Listen address (overrides config file)"`
	Debug bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run() error {
	cfg, file, err := c.RulesFlags.load()
	if err != nil {
		return err
	}

	addr := file.Server.Addr()
	if c.Addr != "" {
		addr = c.Addr
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if c.Debug || file.Server.LogLevel == "debug" {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Info("rules", "description", describeRules(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(addr, newGameFunc(cfg), logger)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run(ctx)
	})
	return group.Wait()
}
