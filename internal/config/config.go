// Package config holds runtime configuration: defaults, layout files, CLI
// flag binding, and validation. Defaults reproduce the fixed assets/tier1..4
// layout so that running with no flags renames exactly those folders.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

const (
	// DefaultRoot is the assets directory, relative to the working directory.
	DefaultRoot = "assets"
	// DefaultTierCount is the number of tierN folders in the default layout.
	DefaultTierCount = 4
)

// Sentinel errors returned by Validate.
var (
	ErrNoRoot        = errors.New("assets root must not be empty")
	ErrNoTiers       = errors.New("at least one tier is required")
	ErrInvalidPrefix = errors.New("invalid tier prefix")
	ErrInvalidFolder = errors.New("invalid tier folder")
	ErrDuplicateTier = errors.New("duplicate tier folder")
	ErrInvalidColor  = errors.New("invalid color mode (use 'auto', 'always' or 'never')")
)

// Tier maps one folder under the assets root to the prefix its files get.
type Tier struct {
	Prefix string `yaml:"prefix" toml:"prefix"`
	Folder string `yaml:"folder" toml:"folder"`
}

// String renders the tier the way --tier accepts it.
func (t Tier) String() string {
	if t.Prefix == t.Folder {
		return t.Prefix
	}
	return t.Prefix + "=" + t.Folder
}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by flags and an optional layout file before being passed (by
// pointer) to the packages that need it.
type Config struct {
	// Layout.
	Root  string // Default: "assets".
	Tiers []Tier // Default: tier1..tier4, processed in order.

	// Behavior.
	DryRun bool

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	LayoutFile string    // Optional YAML/TOML layout file.
}

// DefaultTiers returns the tier1..tier4 layout where each folder name doubles
// as its prefix.
func DefaultTiers() []Tier {
	tiers := make([]Tier, 0, DefaultTierCount)
	for n := 1; n <= DefaultTierCount; n++ {
		name := fmt.Sprintf("tier%d", n)
		tiers = append(tiers, Tier{Prefix: name, Folder: name})
	}
	return tiers
}

// DefaultConfig returns a Config for assets/tier1..tier4, the layout used when
// no flags or layout file are given.
func DefaultConfig() Config {
	return Config{
		Root:      DefaultRoot,
		Tiers:     DefaultTiers(),
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ParseTier parses a --tier value. "prefix=folder" maps folder to prefix;
// a bare "name" uses name for both.
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	prefix, folder, found := strings.Cut(s, "=")
	if !found {
		folder = prefix
	}
	t := Tier{Prefix: strings.TrimSpace(prefix), Folder: NormalizeDirArg(strings.TrimSpace(folder))}
	if err := t.validate(); err != nil {
		return Tier{}, err
	}
	return t, nil
}

// Validate checks the color mode and the tier layout. Folders must be
// relative paths that stay inside the root and must not repeat; prefixes
// must be usable as a filename component.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.ColorMode)
	}

	if strings.TrimSpace(c.Root) == "" {
		return ErrNoRoot
	}
	if len(c.Tiers) == 0 {
		return ErrNoTiers
	}

	seen := make(map[string]bool, len(c.Tiers))
	for _, t := range c.Tiers {
		if err := t.validate(); err != nil {
			return err
		}
		key := filepath.Clean(t.Folder)
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateTier, t.Folder)
		}
		seen[key] = true
	}
	return nil
}

func (t Tier) validate() error {
	if t.Prefix == "" || strings.ContainsAny(t.Prefix, `/\`) || t.Prefix == "." || t.Prefix == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, t.Prefix)
	}
	if t.Folder == "" || filepath.IsAbs(t.Folder) {
		return fmt.Errorf("%w: %q (must be relative to the assets root)", ErrInvalidFolder, t.Folder)
	}
	clean := filepath.Clean(t.Folder)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q (must stay inside the assets root)", ErrInvalidFolder, t.Folder)
	}
	return nil
}
