package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/supervillain/checkpoint"
	"github.com/katalvlaran/supervillain/ensemble"
)

func newExtendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extend <run-id>",
		Short: "Continue a stored chain",
		Long: `Extend restores a stored run, generator state and random streams
included, and appends more configurations to it. The result is the chain
an uninterrupted run would have produced.

Example:
  supervillain extend 0190b5c2-7d1e-7c3a-9f51-6b0e2d4c8a17 --steps 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtend(cmd, a, args[0])
		},
	}
	f := cmd.Flags()
	f.Int("steps", defaultSteps, "configurations to add")
	f.Int("parallelism", 0, "goroutines per checkerboard class (default: as recorded)")
	f.Bool("metrics", false, "log chain metrics when done")
	return cmd
}

func runExtend(cmd *cobra.Command, a *app, id string) error {
	store, err := checkpoint.Open(a.cfg.GetString(cfgKeyStore))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	snap, manifest, err := store.Load(cmd.Context(), id)
	if err != nil {
		return err
	}
	e, err := snap.Ensemble()
	if err != nil {
		return err
	}
	r := recipeFromManifest(manifest)
	// Only an explicit flag overrides the recorded parallelism; a config
	// file or environment value meant for generate does not.
	if cmd.Flags().Changed("parallelism") {
		p, err := cmd.Flags().GetInt("parallelism")
		if err != nil {
			return err
		}
		if p < 1 {
			return fmt.Errorf("%w: parallelism must be at least 1, got %d", errUsage, p)
		}
		r.Parallelism = p
	}
	gen, err := buildGenerator(e.Action, r, a.logger)
	if err != nil {
		return err
	}
	if err := snap.Restore(gen); err != nil {
		return err
	}

	logger := a.logger.With("run", id)
	reg := prometheus.NewRegistry()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	before := e.Len()
	runErr := e.Extend(ctx, a.cfg.GetInt(cfgKeySteps), gen,
		ensemble.WithLogger(logger),
		ensemble.WithMetrics(ensemble.NewMetrics(reg)),
		ensemble.WithProgress(progressLogger(logger)),
	)
	if e.Len() == before {
		return runErr
	}

	run, err := store.Save(context.WithoutCancel(ctx), id, e, gen, r.meta())
	if err != nil {
		return err
	}
	if a.cfg.GetBool(cfgKeyMetrics) {
		if err := logMetrics(logger, reg); err != nil {
			return err
		}
	}
	fmt.Fprintf(output(cmd), "%s\t%d configurations\n", run.ID, run.Configurations)
	return runErr
}
