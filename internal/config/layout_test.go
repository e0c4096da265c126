package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLayout(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadLayout_YAML(t *testing.T) {
	path := writeLayout(t, "layout.yaml", `
root: public/assets
tiers:
  - prefix: bronze
    folder: tier1
  - prefix: silver
`)
	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "public/assets", l.Root)
	assert.Equal(t, []Tier{{Prefix: "bronze", Folder: "tier1"}, {Prefix: "silver"}}, l.Tiers)
}

func TestLoadLayout_TOML(t *testing.T) {
	path := writeLayout(t, "layout.toml", `
root = "assets"

[[tiers]]
prefix = "tier1"
folder = "tier1"

[[tiers]]
prefix = "gold"
folder = "premium/gold"
`)
	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "assets", l.Root)
	assert.Equal(t, []Tier{{Prefix: "tier1", Folder: "tier1"}, {Prefix: "gold", Folder: "premium/gold"}}, l.Tiers)
}

func TestLoadLayout_RejectsUnknownKeys(t *testing.T) {
	yml := writeLayout(t, "layout.yml", "root: assets\nteirs: []\n")
	_, err := LoadLayout(yml)
	assert.Error(t, err)

	tml := writeLayout(t, "layout.toml", "root = \"assets\"\nteirs = []\n")
	_, err = LoadLayout(tml)
	assert.ErrorContains(t, err, "teirs")
}

func TestLoadLayout_UnsupportedExtension(t *testing.T) {
	path := writeLayout(t, "layout.json", `{"root": "assets"}`)
	_, err := LoadLayout(path)
	assert.ErrorIs(t, err, ErrLayoutFormat)
}

func TestLoadLayout_MissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyLayout(Layout{})
	assert.Equal(t, DefaultConfig().Tiers, cfg.Tiers, "empty layout keeps defaults")
	assert.Equal(t, DefaultRoot, cfg.Root)

	cfg.ApplyLayout(Layout{
		Root:  "static/",
		Tiers: []Tier{{Prefix: "gold"}, {Prefix: "silver", Folder: "s/"}},
	})
	assert.Equal(t, "static", cfg.Root)
	assert.Equal(t, []Tier{{Prefix: "gold", Folder: "gold"}, {Prefix: "silver", Folder: "s"}}, cfg.Tiers)
	assert.NoError(t, cfg.Validate())
}
