package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supervillain/checkpoint"
)

func newRunsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the runs in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := checkpoint.Open(a.cfg.GetString(cfgKeyStore))
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			runs, err := store.Index().Runs(cmd.Context())
			if err != nil {
				return err
			}
			if a.cfg.GetBool(cfgKeyJSON) {
				raw, err := json.MarshalIndent(runs, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal runs: %w", err)
				}
				fmt.Fprintln(output(cmd), string(raw))
				return nil
			}

			tw := tabwriter.NewWriter(output(cmd), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUPDATED\tFORMULATION\tN\tKAPPA\tW\tCONFIGURATIONS")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%v\t%d\t%g\t%v\t%d\n",
					r.ID, r.Updated.Local().Format(time.DateTime),
					r.Action.Kind, r.Action.N, r.Action.Kappa, r.Action.W, r.Configurations)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}
