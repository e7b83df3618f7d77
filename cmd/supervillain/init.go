package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long: `Init writes a commented configuration file with every default
(./supervillain.yaml unless a path is given). An existing file is left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFileName + "." + configFileType
			if len(args) == 1 {
				path = args[0]
			}
			_, err := os.Stat(path)
			switch {
			case err == nil:
				fmt.Fprintln(output(cmd), path, "already exists")
				return nil
			case !errors.Is(err, fs.ErrNotExist):
				return fmt.Errorf("stat config file: %w", err)
			}
			if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(output(cmd), "wrote", path)
			return nil
		},
	}
}
