package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/tierrename/internal/check"
	"github.com/backmassage/tierrename/internal/config"
	"github.com/backmassage/tierrename/internal/logging"
)

// Run is the top-level entry point. fs must be rooted at cfg.Root. Each tier
// is processed in order; tiers whose folder does not exist are skipped
// without output. The first error aborts the run and is returned together
// with the stats gathered so far.
func Run(ctx context.Context, cfg *config.Config, fs billy.Filesystem, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	opts := ApplyOptions{DryRun: cfg.DryRun, Verbose: cfg.Verbose}

	for _, tier := range cfg.Tiers {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		present, err := check.TierFolder(fs, tier.Folder)
		if err != nil {
			return stats, fmt.Errorf("tier %s: %w", tier.Prefix, err)
		}
		if !present {
			stats.TiersSkipped++
			continue
		}

		displayDir := filepath.Join(cfg.Root, tier.Folder)
		if _, err := RenameFolder(ctx, fs, tier, displayDir, opts, log, &stats); err != nil {
			return stats, fmt.Errorf("tier %s: %w", tier.Prefix, err)
		}
		stats.TiersProcessed++
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// RenameFolder renames every PNG in tier.Folder to "<prefix>_NN<ext>" in
// sorted order and returns the plan it applied.
func RenameFolder(
	ctx context.Context,
	fs billy.Filesystem,
	tier config.Tier,
	displayDir string,
	opts ApplyOptions,
	log *logging.Logger,
	stats *RunStats,
) (Plan, error) {
	names, err := Discover(fs, tier.Folder)
	if err != nil {
		return Plan{}, err
	}
	plan, err := BuildPlan(tier, displayDir, names)
	if err != nil {
		return Plan{}, err
	}
	log.Debug(opts.Verbose, "%s: %d PNG file(s), %d to rename", displayDir, len(plan.Renames), plan.Changes())
	if err := Apply(ctx, fs, plan, opts, log, stats); err != nil {
		return plan, err
	}
	return plan, nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	verb := "renamed"
	if cfg.DryRun {
		verb = "would rename"
	}
	log.Debug(cfg.Verbose, "Done: %d tier(s) processed, %d skipped", stats.TiersProcessed, stats.TiersSkipped)
	log.Debug(cfg.Verbose, "  %d PNG file(s): %d %s, %d already in place", stats.Files(), stats.Renamed, verb, stats.InPlace)
}
