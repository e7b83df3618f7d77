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

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Start a new chain and store it",
		Long: `Generate samples a new chain from a cold start with the hammer of the
chosen formulation and stores it under a fresh run id.

An interrupted run keeps the configurations produced so far.

Example:
  supervillain generate --formulation villain --n 8 --kappa 0.5 --w 2 --steps 500
  supervillain generate --formulation worldline --w inf --every 10 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a)
		},
	}
	f := cmd.Flags()
	f.String("formulation", defaultFormulation, "villain or worldline")
	f.Int("n", defaultN, "lattice side length")
	f.Float64("kappa", defaultKappa, "coupling κ")
	f.String("w", defaultW, "constraint integer W: positive integer or inf")
	f.Int("steps", defaultSteps, "configurations to keep")
	f.Int("every", 1, "hammer steps per kept configuration")
	f.Uint64("seed", 0, "random seed; 0 draws one")
	f.Int("parallelism", 1, "goroutines per checkerboard class")
	f.String("run-id", "", "run id (default: a new UUIDv7)")
	f.Bool("metrics", false, "log chain metrics when done")
	return cmd
}

func runGenerate(cmd *cobra.Command, a *app) error {
	act, err := actionOf(a.cfg)
	if err != nil {
		return err
	}
	r, err := recipeOf(a.cfg)
	if err != nil {
		return err
	}
	gen, err := buildGenerator(act, r, a.logger)
	if err != nil {
		return err
	}

	store, err := checkpoint.Open(a.cfg.GetString(cfgKeyStore))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	id := a.cfg.GetString(cfgKeyRunID)
	if id == "" {
		id = checkpoint.NewRunID()
	}
	logger := a.logger.With("run", id)

	reg := prometheus.NewRegistry()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	e, runErr := ensemble.Generate(ctx, act, a.cfg.GetInt(cfgKeySteps), gen,
		ensemble.WithLogger(logger),
		ensemble.WithMetrics(ensemble.NewMetrics(reg)),
		ensemble.WithProgress(progressLogger(logger)),
	)
	if e.Len() == 0 {
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
