package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Nil(t, cfg.Rules.HitSoft17)
}

func TestLoadEmptyFilenameReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
rules {
  hit_soft_17        = false
  allow_resplit_aces = true
  deck               = "dealer_bust"
  seed               = 99
}

server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Rules.HitSoft17)
	assert.False(t, *cfg.Rules.HitSoft17)
	require.NotNil(t, cfg.Rules.AllowResplitAces)
	assert.True(t, *cfg.Rules.AllowResplitAces)
	assert.Equal(t, "dealer_bust", cfg.Rules.Deck)
	assert.Equal(t, int64(99), cfg.Rules.Seed)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server {
  port = 9999
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.NotNil(t, cfg.Rules)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `rules { hit_soft_17 = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGameConfigDefaults(t *testing.T) {
	cfg, err := Default().GameConfig()
	require.NoError(t, err)

	assert.True(t, cfg.HitSoft17)
	assert.False(t, cfg.AllowResplitAces)
	assert.Nil(t, cfg.InitialDeck)
}

func TestGameConfigOverrides(t *testing.T) {
	hit := false
	resplit := true
	f := &File{Rules: &RulesConfig{
		HitSoft17:        &hit,
		AllowResplitAces: &resplit,
		Deck:             "split_pair",
		Seed:             7,
	}}

	cfg, err := f.GameConfig()
	require.NoError(t, err)

	assert.False(t, cfg.HitSoft17)
	assert.True(t, cfg.AllowResplitAces)
	assert.Equal(t, int64(7), cfg.Seed)
	require.NotNil(t, cfg.InitialDeck)
	assert.Equal(t, 12, cfg.InitialDeck.Size())
}

func TestGameConfigUnknownDeck(t *testing.T) {
	f := &File{Rules: &RulesConfig{Deck: "bogus"}}

	_, err := f.GameConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
