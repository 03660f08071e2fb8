package main

import (
	"github.com/spf13/cobra"

	mycerrors "github.com/mycelia-project/mycdev/pkg/errors"
)

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run Mycelia tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mycerrors.NewUnimplementedError("test")
		},
	}
}
