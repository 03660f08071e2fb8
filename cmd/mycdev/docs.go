package main

import (
	"github.com/spf13/cobra"

	mycerrors "github.com/mycelia-project/mycdev/pkg/errors"
)

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Generate Mycelia documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mycerrors.NewUnimplementedError("docs")
		},
	}
}
