// Package check provides pre-flight validation of the assets layout: the
// root directory and each configured tier folder.
package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/tierrename/internal/config"
)

// Sentinel errors for paths that exist but cannot be processed.
var (
	ErrRootNotDir = errors.New("assets root is not a directory")
	ErrTierNotDir = errors.New("tier path is not a directory")
)

// Logger is the minimal logging interface needed by Layout.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Debug(bool, string, ...interface{})
}

// Root reports whether the assets root exists. A missing root is not an
// error: every tier under it is simply absent. A root that exists but is not
// a directory returns ErrRootNotDir.
func Root(path string) (bool, error) {
	fi, err := os.Stat(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat root %q: %w", path, err)
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrRootNotDir, path)
	}
	return true, nil
}

// TierFolder reports whether folder exists in fs. Absent folders return
// (false, nil) so the caller can skip them; anything other than a directory
// returns ErrTierNotDir.
func TierFolder(fs billy.Basic, folder string) (bool, error) {
	fi, err := fs.Stat(folder)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %q: %w", folder, err)
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrTierNotDir, folder)
	}
	return true, nil
}

// Layout checks the assets root of cfg and returns ErrRootNotDir when it
// cannot hold tiers. Tier folders are only reported through log in verbose
// mode; a bad tier path is left for the run to hit in order, after the
// tiers before it have been renamed.
func Layout(cfg *config.Config, fs billy.Basic, log Logger) error {
	ok, err := Root(cfg.Root)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug(cfg.Verbose, "Assets root %s does not exist; nothing to rename", cfg.Root)
		return nil
	}
	for _, t := range cfg.Tiers {
		if present, err := TierFolder(fs, t.Folder); err == nil && present {
			log.Debug(cfg.Verbose, "Tier %s: %s", t.Prefix, t.Folder)
		}
	}
	return nil
}
