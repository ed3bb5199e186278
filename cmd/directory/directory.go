package directory

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/feederwatch/dashboard/internal/conf"
	"github.com/feederwatch/dashboard/internal/directory"
	"github.com/feederwatch/dashboard/internal/loader"
	"github.com/feederwatch/dashboard/internal/taxonomy"
)

type options struct {
	search    string
	expandAll bool
	asJSON    bool
}

// Command creates a new cobra.Command that prints the species directory tree.
func Command(ctx *conf.Context) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "directory [species.json|species.yaml]",
		Short: "Print the species directory tree",
		Long: "Build the species tree from a flat species list, filter it by regional status and search text, " +
			"and print it with cumulative observation counts.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, ctx, opts, args[0])
		},
	}

	setupFlags(cmd, ctx, opts)

	return cmd
}

// setupFlags defines flags specific to the directory command.
func setupFlags(cmd *cobra.Command, ctx *conf.Context, opts *options) {
	cmd.Flags().String("status", "", "Status filter: all, regional, observed")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Keep species whose name contains this text, with their ancestors")
	cmd.Flags().BoolVarP(&opts.expandAll, "expand-all", "a", false, "Expand every group instead of only search matches")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the view as JSON")

	// Bind flags to configuration
	_ = ctx.BindFlag("directory.statusfilter", cmd.Flags().Lookup("status"))
}

func run(cmd *cobra.Command, ctx *conf.Context, opts *options, path string) error {
	species, err := loader.LoadSpecies(path)
	if err != nil {
		return err
	}

	svc := directory.NewService(
		directory.Config{CacheTTL: ctx.Settings.Directory.CacheTTL},
		directory.WithMetrics(ctx.Metrics.Dashboard),
	)
	view, err := svc.Query(cmd.Context(), species, directory.Options{
		Status: taxonomy.StatusFilter(ctx.Settings.Directory.StatusFilter),
		Search: opts.search,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	expanded := taxonomy.NewExpansion().Merge(view.Info.AutoExpandIDs)
	if opts.expandAll {
		expanded = expanded.ExpandAll(view.Info)
	}
	return printView(out, view, expanded)
}

func printView(w io.Writer, view *directory.View, expanded taxonomy.Expansion) error {
	if len(view.Roots) == 0 {
		_, err := fmt.Fprintln(w, "No species match the current filters.")
		return err
	}
	if _, err := fmt.Fprintln(w, renderTree(view.Roots, expanded)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d of %d entries shown\n", view.VisibleNodes, view.TotalNodes)
	return err
}
