package main

import (
	"fmt"

	"github.com/opsfolio/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write posts as front-matter markdown files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.loadRepository(cmd.Context())
			if err != nil {
				return err
			}
			paths, err := service.WritePostFiles(args[0], repo.All())
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
