package main

import (
	"fmt"
	"log"

	"github.com/opsfolio/internal/content"
	"github.com/opsfolio/internal/db"
	"github.com/opsfolio/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *options) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert posts and pages into the sqlite database",
		Long: `Seed copies the posts and pages of another source into the sqlite
database given by --db. Existing rows are matched by slug and updated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg := opts.sourceConfig()
			cfg.Kind = from
			if cfg.Kind == service.SourceSQLite {
				return fmt.Errorf("cannot seed sqlite from itself")
			}
			src, err := service.OpenSource(ctx, cfg)
			if err != nil {
				return err
			}

			posts, err := src.LoadPosts(ctx)
			if err != nil {
				return err
			}
			// Validates slugs before anything is written.
			if _, err := service.NewPostRepository(posts); err != nil {
				return err
			}
			pages, err := src.LoadPages(ctx)
			if err != nil {
				return err
			}
			if len(pages) == 0 {
				pages = content.DefaultPages()
			}

			gdb, err := db.Open(opts.dbPath)
			if err != nil {
				return err
			}
			if err := db.SeedPosts(ctx, gdb, posts); err != nil {
				return err
			}
			if err := db.SeedPages(ctx, gdb, pages); err != nil {
				return err
			}

			log.Printf("[content] seeded %d posts and %d pages from %s", len(posts), len(pages), src.Name())
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts and %d pages\n", len(posts), len(pages))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", service.SourceBuiltin, "source to copy from: builtin or dir")
	return cmd
}
