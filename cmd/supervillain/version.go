package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supervillain"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the supervillain version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(output(cmd), "supervillain", supervillain.Version)
		},
	}
}
