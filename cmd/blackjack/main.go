package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Play blackjack in the terminal"`
	Serve   ServeCmd         `cmd:"" help:"Run the websocket blackjack service"`
	Sim     SimCmd           `cmd:"" help:"Simulate rounds and report outcome rates"`
	Decks   DecksCmd         `cmd:"" help:"List the named test decks"`
}

// RulesFlags are the house-rule flags shared by every subcommand. Values
// from the HCL config file apply first; flags that were given on the
// command line override them.
type RulesFlags struct {
	Config      string `help:"Path to HCL config file" type:"path"`
	Deck        string `help:"Named test deck for deterministic play"`
	Seed        int64  `help:"Shuffle seed (0 seeds from the clock)"`
	HitSoft17   *bool  `negatable:"" help:"Dealer hits soft 17 (default true)"`
	ResplitAces *bool  `negatable:"" help:"Allow resplitting aces (default false)"`
}

// load resolves the config file plus flag overrides into the engine
// configuration and the (possibly defaulted) file for server settings
func (r RulesFlags) load() (blackjack.Config, *config.File, error) {
	file, err := config.Load(r.Config)
	if err != nil {
		return blackjack.Config{}, nil, err
	}

	if r.Deck != "" {
		file.Rules.Deck = r.Deck
	}
	if r.Seed != 0 {
		file.Rules.Seed = r.Seed
	}
	if r.HitSoft17 != nil {
		file.Rules.HitSoft17 = r.HitSoft17
	}
	if r.ResplitAces != nil {
		file.Rules.AllowResplitAces = r.ResplitAces
	}

	cfg, err := file.GameConfig()
	if err != nil {
		return blackjack.Config{}, nil, err
	}
	return cfg, file, nil
}

// newGameFunc returns a constructor that replays the same fixture deck
// or seed on every round
func newGameFunc(cfg blackjack.Config) func() *blackjack.Game {
	return func() *blackjack.Game {
		return blackjack.New(cfg)
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player casino blackjack: terminal table, simulator, and websocket service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func describeRules(cfg blackjack.Config) string {
	soft17 := "stands on"
	if cfg.HitSoft17 {
		soft17 = "hits"
	}
	return fmt.Sprintf("dealer %s soft 17, resplit aces %v", soft17, cfg.AllowResplitAces)
}
