// Package config loads the optional HCL configuration file shared by the
// blackjack CLI and the websocket service. A missing file yields the
// default configuration; CLI flags override file values at the call site.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/blackjack"
)

// File is the complete configuration file
type File struct {
	Rules  *RulesConfig  `hcl:"rules,block"`
	Server *ServerConfig `hcl:"server,block"`
}

// RulesConfig configures the house rules. Pointer fields distinguish
// "absent" from "explicitly false" so the hit-soft-17 default stays true.
type RulesConfig struct {
	HitSoft17        *bool  `hcl:"hit_soft_17,optional"`
	AllowResplitAces *bool  `hcl:"allow_resplit_aces,optional"`
	Deck             string `hcl:"deck,optional"` // named fixture deck
	Seed             int64  `hcl:"seed,optional"`
}

// ServerConfig configures the websocket service
type ServerConfig struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the configuration used when no file is present
func Default() *File {
	return &File{
		Rules: &RulesConfig{},
		Server: &ServerConfig{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
	}
}

// Load reads an HCL configuration file. A missing file is not an error:
// the defaults are returned.
func Load(filename string) (*File, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Rules == nil {
		cfg.Rules = &RulesConfig{}
	}
	if cfg.Server == nil {
		cfg.Server = Default().Server
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}

	return &cfg, nil
}

// GameConfig maps the rules block onto the engine configuration. The
// named deck, when set, must exist among the fixture decks.
func (f *File) GameConfig() (blackjack.Config, error) {
	cfg := blackjack.DefaultConfig()

	if f.Rules.HitSoft17 != nil {
		cfg.HitSoft17 = *f.Rules.HitSoft17
	}
	if f.Rules.AllowResplitAces != nil {
		cfg.AllowResplitAces = *f.Rules.AllowResplitAces
	}
	cfg.Seed = f.Rules.Seed

	if f.Rules.Deck != "" {
		d, ok := blackjack.TestDeck(f.Rules.Deck)
		if !ok {
			return cfg, fmt.Errorf("unknown test deck %q (available: %v)",
				f.Rules.Deck, blackjack.TestDeckNames())
		}
		cfg.InitialDeck = &d
	}

	return cfg, nil
}

// Addr returns the server's listen address in host:port form
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}
