package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mycelia-project/mycdev/internal/installer"
	"github.com/mycelia-project/mycdev/internal/logger"
	"github.com/mycelia-project/mycdev/internal/paths"
)

type installOptions struct {
	Root    string
	DryRun  bool
	Verbose bool
}

var (
	installCmdRunner = runInstall
	installerRun     = installer.Run
)

func newInstallCmd(root *rootFlags) *cobra.Command {
	opts := installOptions{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install system dependencies for working on Mycelia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = root.dryRun
			opts.Verbose = root.verbose

			return installCmdRunner(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "Repository root for package manager commands (default: detected from the working directory)")

	return cmd
}

func runInstall(opts installOptions) error {
	log, err := logger.NewForCLI(opts.Verbose)
	if err != nil {
		return err
	}

	root, err := paths.Resolve(opts.Root)
	if err != nil {
		return err
	}

	return installerRun(context.Background(), installer.Options{
		Root:   root,
		DryRun: opts.DryRun,
		Logger: log,
	})
}
