package main

import (
	"context"

	"github.com/opsfolio/internal/config"
	"github.com/opsfolio/internal/service"
	"github.com/spf13/cobra"
)

// options holds the content source selection shared by every subcommand.
type options struct {
	source     string
	dbPath     string
	contentDir string
	seed       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "folioctl",
		Short:         "Inspect and manage opsfolio blog content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg := config.Load()
			flags := cmd.Flags()
			if !flags.Changed("source") {
				opts.source = cfg.PostSource
			}
			if !flags.Changed("db") {
				opts.dbPath = cfg.DatabasePath
			}
			if !flags.Changed("content-dir") {
				opts.contentDir = cfg.ContentDir
			}
			opts.seed = cfg.SeedDatabase
		},
	}

	root.PersistentFlags().StringVar(&opts.source, "source", service.SourceBuiltin, "content source: builtin, sqlite or dir")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "sqlite database path")
	root.PersistentFlags().StringVar(&opts.contentDir, "content-dir", "", "markdown content directory")

	root.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newCategoriesCmd(opts),
		newSeedCmd(opts),
		newExportCmd(opts),
	)
	return root
}

func (o *options) sourceConfig() service.SourceConfig {
	return service.SourceConfig{
		Kind:         o.source,
		DatabasePath: o.dbPath,
		ContentDir:   o.contentDir,
		Seed:         o.seed,
	}
}

func (o *options) openSource(ctx context.Context) (service.ContentSource, error) {
	return service.OpenSource(ctx, o.sourceConfig())
}

func (o *options) loadRepository(ctx context.Context) (*service.PostRepository, error) {
	src, err := o.openSource(ctx)
	if err != nil {
		return nil, err
	}
	repo, _, err := service.Load(ctx, src)
	return repo, err
}
