package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mycdev",
		Short:         "Commands for developing Mycelia",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return fmt.Errorf("a subcommand is required")
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Log commands without executing them")

	cmd.AddCommand(newInstallCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newTestCmd())
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
