package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mycelia-project/mycdev/internal/logger"
)

type buildOptions struct {
	Component string
	Release   bool
	Verbose   bool
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <component>",
		Short: "Build a Mycelia component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Component = args[0]
			opts.Verbose = root.verbose

			if err := validateBuildComponent(opts.Component); err != nil {
				return err
			}

			return buildCmdRunner(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Release, "release", false, "Build with release configuration")

	return cmd
}

func validateBuildComponent(component string) error {
	switch component {
	case "rust", "swift":
		return nil
	default:
		return fmt.Errorf("unknown component %q (expected rust or swift)", component)
	}
}

func runBuild(opts buildOptions) error {
	log, err := logger.NewForCLI(opts.Verbose)
	if err != nil {
		return err
	}

	configuration := "debug"
	if opts.Release {
		configuration = "release"
	}

	// The build pipeline still lives in per-component scripts; the command
	// only acknowledges the request for now.
	log.WithFields(map[string]any{
		"component":     opts.Component,
		"configuration": configuration,
	}).Warn("build command not implemented")

	return nil
}
