package cmd

import (
	"fmt"
	"strings"

	"kctx/internal/cli"
	"kctx/internal/config"
	"kctx/internal/search"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		filters     search.Filters
		noHighlight bool
		showFilters bool
	)

	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find"},
		Short:   "Search contexts",
		Long: `Rank contexts by how well their name, cluster, user and namespace match
the query. Exact matches score higher than prefix matches, which score
higher than substring matches; the name counts most, then cluster, user
and namespace. Matching is case-insensitive.

Filters narrow the candidates before ranking. Without a query every
context passing the filters is listed in file order.

Examples:
  kctx search prod
  kctx search east --cluster us-east-1
  kctx search --namespace default
  kctx search --current
  kctx search --show-filters`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(cmd)
			if err != nil {
				return err
			}

			contexts := a.repo.GetContexts()

			if showFilters {
				return printFilterOptions(p, search.Options(contexts))
			}

			filters.Query = strings.Join(args, " ")
			results := search.Search(contexts, filters)

			hl := search.Highlighter{Prefix: a.config.Highlight.Prefix, Suffix: a.config.Highlight.Suffix}
			mark := func(s string) string {
				if noHighlight || p.Format != config.OutputTable && p.Format != config.OutputWide {
					return s
				}
				return hl.Highlight(s, filters.Query)
			}

			listing := cli.Listing{
				Headers:     []string{"CURRENT", "NAME", "CLUSTER", "USER", "NAMESPACE", "SCORE"},
				WideHeaders: []string{"MATCHED"},
				Data:        results,
				Empty:       "No contexts match.",
			}
			for _, r := range results {
				c := r.Context
				listing.Names = append(listing.Names, c.Name)
				listing.Rows = append(listing.Rows, []string{
					cli.CurrentMarker(c.Current),
					mark(c.Name),
					mark(c.Cluster),
					mark(c.User),
					mark(c.DisplayNamespace()),
					fmt.Sprintf("%.0f", r.Score),
				})
				listing.WideRows = append(listing.WideRows, []string{matchedFields(r.MatchedFields)})
			}

			return p.Print(listing)
		},
	}

	cmd.Flags().StringVar(&filters.Cluster, "cluster", "", "Only contexts using exactly this cluster")
	cmd.Flags().StringVarP(&filters.Namespace, "namespace", "n", "", "Only contexts whose namespace is exactly this value (unset counts as \"default\")")
	cmd.Flags().BoolVar(&filters.ShowOnlyCurrent, "current", false, "Only the current context")
	cmd.Flags().BoolVar(&filters.ShowOnlyWithNamespace, "with-namespace", false, "Only contexts that set a namespace")
	cmd.Flags().BoolVar(&noHighlight, "no-highlight", false, "Do not mark matches in table output")
	cmd.Flags().BoolVar(&showFilters, "show-filters", false, "List the values available for --cluster and --namespace")

	_ = cmd.RegisterFlagCompletionFunc("cluster", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return search.Options(a.repo.GetContexts()).Clusters, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("namespace", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return search.Options(a.repo.GetContexts()).Namespaces, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func matchedFields(fields []search.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

func printFilterOptions(p *cli.Printer, opts search.FilterOptions) error {
	listing := cli.Listing{
		Headers: []string{"FILTER", "VALUE"},
		Data:    opts,
	}
	for _, c := range opts.Clusters {
		listing.Rows = append(listing.Rows, []string{"cluster", c})
		listing.Names = append(listing.Names, c)
	}
	for _, ns := range opts.Namespaces {
		listing.Rows = append(listing.Rows, []string{"namespace", ns})
		listing.Names = append(listing.Names, ns)
	}
	return p.Print(listing)
}
