package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/checkpoint"
	"github.com/katalvlaran/supervillain/ensemble"
	"github.com/katalvlaran/supervillain/observable"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <run-id>",
		Short: "Summarize a stored chain",
		Long: `Report prints the generator's acceptance summary and the ensemble
average of each observable, plus the susceptibilities derived from the
correlators. Averages of inline worm estimators are listed separately.

Observables not defined for the run's formulation are skipped unless
requested explicitly.

Example:
  supervillain report <run-id>
  supervillain report <run-id> --cut 100 --thin 5 --observable Spin_Spin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, a, args[0])
		},
	}
	f := cmd.Flags()
	f.StringSlice("observable", nil, "observables to measure (default: all)")
	f.Int("cut", 0, "thermalization: configurations to drop from the front")
	f.Int("thin", 1, "keep every thin-th configuration after the cut")
	f.Bool("json", false, "output as JSON")
	return cmd
}

// summary is the result of report.
type summary struct {
	RunID          string                `json:"run_id"`
	Action         checkpoint.ActionSpec `json:"action"`
	Generator      string                `json:"generator"`
	Configurations int                   `json:"configurations"`
	Observables    map[string][]float64  `json:"observables"`
	Derived        map[string]float64    `json:"derived,omitempty"`
	Inline         map[string][]float64  `json:"inline,omitempty"`
	Report         string                `json:"report,omitempty"`
}

func runReport(cmd *cobra.Command, a *app, id string) error {
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
	if cut := a.cfg.GetInt(cfgKeyCut); cut > 0 {
		if e, err = e.Cut(cut); err != nil {
			return err
		}
	}
	if thin := a.cfg.GetInt(cfgKeyThin); thin != 1 {
		if e, err = e.Every(thin); err != nil {
			return err
		}
	}

	names := a.cfg.GetStringSlice(cfgKeyObservables)
	s, err := summarize(e, names)
	if err != nil {
		return err
	}
	s.RunID = id
	s.Action = snap.Header.Action
	s.Generator = snap.Header.Generator
	s.Report = manifest.Report

	if a.cfg.GetBool(cfgKeyJSON) {
		raw, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Fprintln(output(cmd), string(raw))
		return nil
	}
	return s.write(output(cmd))
}

// summarize measures the named observables, or all of them, on e.
func summarize(e *ensemble.Ensemble, names []string) (summary, error) {
	explicit := len(names) > 0
	wanted := observable.All()
	if explicit {
		wanted = nil
		for _, name := range names {
			o, err := observable.Parse(name)
			if err != nil {
				return summary{}, err
			}
			wanted = append(wanted, o)
		}
	}

	s := summary{
		Configurations: e.Len(),
		Observables:    make(map[string][]float64),
		Derived:        make(map[string]float64),
		Inline:         make(map[string][]float64),
	}
	for _, o := range wanted {
		mean, err := e.Mean(o)
		if errors.Is(err, observable.ErrUnsupported) && !explicit {
			continue
		}
		if err != nil {
			return summary{}, err
		}
		s.Observables[o.String()] = mean
		if err := derive(s.Derived, e.Action, o, mean, ""); err != nil {
			return summary{}, err
		}
	}

	for name := range e.Inline {
		mean, ok := e.InlineMean(name)
		if !ok {
			// Recorded by name but empty: nothing to average.
			continue
		}
		s.Inline[name] = mean
		if o, err := observable.Parse(name); err == nil {
			if err := derive(s.Derived, e.Action, o, mean, " (inline)"); err != nil {
				return summary{}, err
			}
		}
	}
	return s, nil
}

// derive adds the quantities derived from a correlator. An empty vortex
// correlator has no normalization and is left out.
func derive(into map[string]float64, a action.Action, o observable.Observable, mean []float64, suffix string) error {
	switch o {
	case observable.SpinSpin:
		chi := observable.SpinSusceptibility(mean)
		into["SpinSusceptibility"+suffix] = chi
		into["SpinSusceptibilityScaled"+suffix] = observable.SpinSusceptibilityScaled(a.Lattice(), chi)
	case observable.VortexVortex:
		chi, err := observable.VortexSusceptibility(mean)
		if errors.Is(err, observable.ErrNormalization) {
			return nil
		}
		if err != nil {
			return err
		}
		moment, err := observable.VortexCriticalMoment(a, mean)
		if err != nil {
			return err
		}
		into["VortexSusceptibility"+suffix] = chi
		into["VortexSusceptibilityScaled"+suffix] = observable.VortexSusceptibilityScaled(a, chi)
		into["VortexCriticalMoment"+suffix] = moment
	}
	return nil
}

// write prints s as aligned text. Correlators and link fields are shown by
// their value at the origin and their length.
func (s summary) write(w io.Writer) error {
	fmt.Fprintf(w, "run %s\n", s.RunID)
	fmt.Fprintf(w, "%v N=%d κ=%g W=%v, %d configurations\n",
		s.Action.Kind, s.Action.N, s.Action.Kappa, s.Action.W, s.Configurations)
	fmt.Fprintf(w, "generator %s\n\n", s.Generator)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OBSERVABLE\tMEAN")
	for _, name := range sortedKeys(s.Observables) {
		fmt.Fprintf(tw, "%s\t%s\n", name, formatValues(s.Observables[name]))
	}
	for _, name := range sortedKeys(s.Inline) {
		fmt.Fprintf(tw, "%s (inline)\t%s\n", name, formatValues(s.Inline[name]))
	}
	for _, name := range sortedKeys(s.Derived) {
		fmt.Fprintf(tw, "%s\t%.6g\n", name, s.Derived[name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if s.Report != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(s.Report, "\n"))
	}
	return nil
}

func formatValues(v []float64) string {
	switch len(v) {
	case 0:
		return "-"
	case 1:
		return fmt.Sprintf("%.6g", v[0])
	case 2:
		return fmt.Sprintf("%.6g %.6g", v[0], v[1])
	default:
		return fmt.Sprintf("%.6g at origin, %d values", v[0], len(v))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
