// Command tierrename renames the PNG files in each tier folder of an assets
// tree to "<tier>_NN.png", numbered in sorted order.
//
// With no flags it processes assets/tier1 through assets/tier4 relative to
// the working directory, skipping tiers whose folder is absent.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/backmassage/tierrename/internal/check"
	"github.com/backmassage/tierrename/internal/config"
	"github.com/backmassage/tierrename/internal/logging"
	"github.com/backmassage/tierrename/internal/pipeline"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

// errReported marks a failure that has already been written through the
// logger, so run only needs to set the exit status.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.DefaultConfig()
	cmd := newRootCmd(&cfg)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "tierrename: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tierrename",
		Short:         "Rename tier PNGs to <tier>_NN.png in sorted order",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := config.BindFlags(cmd.Flags(), cfg)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		// Bootstrap: errors until the logger exists are returned to run,
		// which prints them to stderr.
		if err := flags.Apply(cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		// Logger available: failures go through log so they also reach --log.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := execute(ctx, cfg, log); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("Interrupted")
			} else {
				log.Error("%v", err)
			}
			return errReported
		}
		return nil
	}
	return cmd
}

func execute(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	fs := osfs.New(cfg.Root)
	if err := check.Layout(cfg, fs, log); err != nil {
		return err
	}
	if cfg.DryRun {
		log.Debug(cfg.Verbose, "Dry run: no files will be renamed")
	}
	_, err := pipeline.Run(ctx, cfg, fs, log)
	return err
}
