package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/tierrename/internal/logging"
)

// ErrTargetExists is returned when a rename would overwrite an entry that is
// not the file being renamed.
var ErrTargetExists = errors.New("rename target already exists")

// stagingPrefix marks the temporary names used while resolving chain
// conflicts. It starts with a dot so the staged files sort apart.
const stagingPrefix = ".tierrename-"

// ApplyOptions controls how a plan is applied.
type ApplyOptions struct {
	DryRun  bool
	Verbose bool
}

// Apply performs the renames of plan in fs and prints one progress line per
// file. Without chain conflicts the renames run directly in listing order.
// With conflicts every moving file is first renamed to a staging name and
// then to its target, so no pending source is ever overwritten. The first
// failure stops the run; renames already done are not rolled back.
func Apply(ctx context.Context, fs billy.Filesystem, plan Plan, opts ApplyOptions, log *logging.Logger, stats *RunStats) error {
	if opts.DryRun {
		for _, r := range plan.Renames {
			log.Progress("[DRY] Renaming: %s -> %s", plan.DisplayPath(r.From), plan.DisplayPath(r.To))
			if r.From == r.To {
				stats.InPlace++
			} else {
				stats.Renamed++
			}
		}
		return nil
	}

	if conflicts := plan.Conflicts(); len(conflicts) > 0 {
		log.Debug(opts.Verbose, "Tier %s: %d chain conflict(s), renaming through staging names", plan.Tier.Prefix, len(conflicts))
		return applyStaged(ctx, fs, plan, log, stats)
	}
	return applyDirect(ctx, fs, plan, log, stats)
}

func applyDirect(ctx context.Context, fs billy.Filesystem, plan Plan, log *logging.Logger, stats *RunStats) error {
	for _, r := range plan.Renames {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Progress("Renaming: %s -> %s", plan.DisplayPath(r.From), plan.DisplayPath(r.To))
		if r.From == r.To {
			stats.InPlace++
			continue
		}
		if err := renameNoClobber(fs, fs.Join(plan.Dir, r.From), fs.Join(plan.Dir, r.To)); err != nil {
			return err
		}
		stats.Renamed++
	}
	return nil
}

// applyStaged moves every changing file to a staging name first, printing a
// "Staging:" line per move, then renames each staged file to its target with
// the usual "Renaming:" line. A failure in either phase leaves the files
// printed so far where those lines say.
func applyStaged(ctx context.Context, fs billy.Filesystem, plan Plan, log *logging.Logger, stats *RunStats) error {
	staged := make([]string, len(plan.Renames))
	for i, r := range plan.Renames {
		if r.From == r.To {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		tmp := stagingName(r)
		log.Progress("Staging: %s -> %s", plan.DisplayPath(r.From), plan.DisplayPath(tmp))
		if err := renameNoClobber(fs, fs.Join(plan.Dir, r.From), fs.Join(plan.Dir, tmp)); err != nil {
			return err
		}
		staged[i] = tmp
	}

	for i, r := range plan.Renames {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Progress("Renaming: %s -> %s", plan.DisplayPath(r.From), plan.DisplayPath(r.To))
		if r.From == r.To {
			stats.InPlace++
			continue
		}
		if err := renameNoClobber(fs, fs.Join(plan.Dir, staged[i]), fs.Join(plan.Dir, r.To)); err != nil {
			return err
		}
		stats.Renamed++
	}
	return nil
}

func stagingName(r Rename) string {
	return fmt.Sprintf("%s%d-%s", stagingPrefix, r.Index, r.From)
}

// renameNoClobber renames from to to, refusing to replace an existing entry
// unless it is the source itself (a case-only rename on a case-insensitive
// filesystem).
func renameNoClobber(fs billy.Filesystem, from, to string) error {
	dst, err := fs.Lstat(to)
	switch {
	case err == nil:
		src, serr := fs.Lstat(from)
		if serr != nil {
			return fmt.Errorf("stat %q: %w", from, serr)
		}
		if !os.SameFile(src, dst) {
			return fmt.Errorf("rename %q -> %q: %w", from, to, ErrTargetExists)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat %q: %w", to, err)
	}

	if err := fs.Rename(from, to); err != nil {
		return fmt.Errorf("rename %q -> %q: %w", from, to, err)
	}
	return nil
}
