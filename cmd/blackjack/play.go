package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs an interactive session: the full-screen TUI by default,
// or the line-mode interface with --plain.
type PlayCmd struct {
	RulesFlags
	Plain   bool   `help:"Use the plain line-mode interface instead of the TUI"`
	LogFile string `default:"blackjack.log" help:"Debug log file for the TUI session"`
}

func (c *PlayCmd) Run() error {
	cfg, _, err := c.RulesFlags.load()
	if err != nil {
		return err
	}
	newGame := newGameFunc(cfg)

	if c.Plain {
		return display.NewPlain(os.Stdout, os.Stdin).Run(newGame)
	}

	// The TUI owns the terminal, so debug logging goes to a file
	debugFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.Info("starting session", "rules", describeRules(cfg))

	model := tui.New(newGame, logger, quartz.NewReal())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
