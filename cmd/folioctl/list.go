package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/opsfolio/internal/service"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	state := service.DefaultFilterState()
	var sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts with optional search, category and sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := opts.loadRepository(cmd.Context())
			if err != nil {
				return err
			}

			state.Sort = service.SortKey(sortKey)
			posts := state.Apply(repo.All())
			if len(posts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noDataStyle.Render("No posts found"))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tCATEGORY\tDATE\tVIEWS\tTITLE")
			for _, post := range posts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					post.Slug, post.Category, post.Date, service.ParseViewCount(post.Views), post.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&state.Query, "query", "q", "", "case-insensitive search over title, excerpt and category")
	cmd.Flags().StringVarP(&state.Category, "category", "c", service.AllCategories, "only show posts in this category")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", string(service.SortDate), "order by date, title, views or none")
	return cmd
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the selectable categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := opts.loadRepository(cmd.Context())
			if err != nil {
				return err
			}
			for _, category := range service.Categories(repo.All()) {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
			return nil
		},
	}
}
