package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrLayoutFormat is returned for layout files that are neither YAML nor TOML.
var ErrLayoutFormat = errors.New("unsupported layout file (use .yaml, .yml or .toml)")

// Layout is the on-disk description of the assets root and its tiers.
//
//	root: assets
//	tiers:
//	  - prefix: tier1
//	    folder: tier1
type Layout struct {
	Root  string `yaml:"root" toml:"root"`
	Tiers []Tier `yaml:"tiers" toml:"tiers"`
}

// LoadLayout reads a layout file, picking the decoder from its extension.
// Unknown keys are rejected so that typos don't silently fall back to
// defaults.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}

	var l Layout
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&l); err != nil {
			return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &l)
		if err != nil {
			return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Layout{}, fmt.Errorf("parse layout %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return Layout{}, fmt.Errorf("%w: %s", ErrLayoutFormat, path)
	}
	return l, nil
}

// ApplyLayout copies the non-empty parts of l into c. A layout without tiers
// keeps the current tier list.
func (c *Config) ApplyLayout(l Layout) {
	if l.Root != "" {
		c.Root = NormalizeDirArg(l.Root)
	}
	if len(l.Tiers) > 0 {
		c.Tiers = make([]Tier, len(l.Tiers))
		for i, t := range l.Tiers {
			if t.Folder == "" {
				t.Folder = t.Prefix
			}
			t.Folder = NormalizeDirArg(t.Folder)
			c.Tiers[i] = t
		}
	}
}
