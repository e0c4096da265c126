package config

// This file binds CLI flags onto a Config. Flags that depend on other input
// (layout file, tier list, color pair) are captured first and folded into the
// Config by Apply, so defaults hold unless the user passes the flag.

import (
	"github.com/spf13/pflag"
)

// Flags holds flag values that are applied to a Config after parsing.
type Flags struct {
	fs         *pflag.FlagSet
	root       string
	tiers      []string
	forceColor bool
	noColor    bool
}

// BindFlags registers all tierrename flags on fs. Simple settings are bound
// directly to cfg; the rest are resolved by [Flags.Apply].
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.root, "root", cfg.Root, "Assets root directory")
	fs.StringVar(&cfg.LayoutFile, "layout", "", "YAML or TOML layout file (root and tiers)")
	fs.StringArrayVar(&f.tiers, "tier", nil, "Tier as prefix=folder or name; repeatable, replaces the default tier1..tier4")

	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print planned renames without touching files")

	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	return f
}

// Apply folds the captured flags into cfg. Precedence for the layout is
// --tier / --root > --layout file > defaults.
func (f *Flags) Apply(cfg *Config) error {
	if cfg.LayoutFile != "" {
		l, err := LoadLayout(cfg.LayoutFile)
		if err != nil {
			return err
		}
		cfg.ApplyLayout(l)
	}

	if f.fs.Changed("root") {
		cfg.Root = NormalizeDirArg(f.root)
	}

	if len(f.tiers) > 0 {
		tiers := make([]Tier, 0, len(f.tiers))
		for _, raw := range f.tiers {
			t, err := ParseTier(raw)
			if err != nil {
				return err
			}
			tiers = append(tiers, t)
		}
		cfg.Tiers = tiers
	}

	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
	return nil
}
