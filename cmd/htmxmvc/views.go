package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-htmx-mvc/internal/server"
	"github.com/goliatone/go-htmx-mvc/pkg/view"
)

func newViewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "Inspect view resolution",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the view search locations in lookup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := server.BuildViews(a.cfg.Views, nil)
			if err != nil {
				return err
			}
			for _, location := range views.Locations.Candidates("{view}") {
				fmt.Fprintln(cmd.OutOrStdout(), location)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve a view name to its template location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := server.BuildViews(a.cfg.Views, nil)
			if err != nil {
				return err
			}
			location, err := views.Resolver.Resolve(args[0])
			if err != nil {
				var notFound *view.ViewNotFoundError
				if errors.As(err, &notFound) {
					for _, searched := range notFound.Searched {
						fmt.Fprintf(cmd.ErrOrStderr(), "searched %s\n", searched)
					}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), location)
			return nil
		},
	})
	return cmd
}
