// Root command for the supervillain CLI.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/supervillain"
	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/checkpoint"
	"github.com/katalvlaran/supervillain/ensemble"
	"github.com/katalvlaran/supervillain/generator"
	"github.com/katalvlaran/supervillain/lattice"
	"github.com/katalvlaran/supervillain/observable"
)

// Exit codes.
const (
	exitSuccess     = 0
	exitUserError   = 1
	exitSysError    = 2
	exitInterrupted = 130
)

// app is the state shared by the commands of one invocation.
// PersistentPreRunE fills it before any RunE runs.
type app struct {
	cfg    *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "supervillain",
		Short: "Monte Carlo for the 2D compact boson",
		Long: `supervillain generates, extends and measures Markov chains of the
two-dimensional compact boson in its Villain and Worldline formulations.

Chains are stored as compressed snapshots in a store directory together
with a YAML manifest and a sqlite index of runs.`,
		Version:       supervillain.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: ./supervillain.yaml when present)")
	pf.String("store", defaultStore, "directory holding snapshots, manifests and the run index")
	pf.String("log-level", defaultLogLevel, "debug, info, warn or error")
	pf.String("log-format", defaultLogFormat, "text or json")

	root.AddCommand(
		newInitCmd(),
		newGenerateCmd(a),
		newExtendCmd(a),
		newReportCmd(a),
		newRunsCmd(a),
		newVersionCmd(),
	)
	return root
}

// exitCode maps an error returned by a command onto the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case isUserError(err):
		return exitUserError
	default:
		return exitSysError
	}
}

// userErrors are the sentinels caused by bad input rather than by the
// system or a broken chain.
var userErrors = []error{
	lattice.ErrBadSize,
	action.ErrBadKappa,
	action.ErrBadModulus,
	action.ErrBadKind,
	generator.ErrBadStride,
	ensemble.ErrBadSteps,
	ensemble.ErrBadStride,
	ensemble.ErrBadCut,
	observable.ErrUnknown,
	observable.ErrUnsupported,
	checkpoint.ErrNotFound,
	errUsage,
}

var errUsage = errors.New("usage")

func isUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// output is where commands print results.
func output(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
