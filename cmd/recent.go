package cmd

import (
	"strconv"

	"kctx/internal/cli"
	kcontext "kctx/internal/context"

	"github.com/spf13/cobra"
)

func newRecentCmd(a *app) *cobra.Command {
	var clearRecent bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used contexts",
		Long: `List the contexts most recently switched to with 'kctx use', newest first.

Contexts that no longer exist in the kubeconfig file are not shown. The
list is stored in the kctx state directory, not in the kubeconfig.

Examples:
  kctx recent
  kctx recent -o name | head -1
  kctx recent --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearRecent {
				if err := a.tracker.Clear(); err != nil {
					return err
				}
				a.notify(cmd, "Recent contexts cleared.")
				return nil
			}

			p, err := a.printer(cmd)
			if err != nil {
				return err
			}

			contexts := a.repo.GetContexts()
			byName := make(map[string]kcontext.Context, len(contexts))
			for _, c := range contexts {
				// last entry wins for duplicate names
				byName[c.Name] = c
			}

			names := a.tracker.Recent(kcontext.Names(contexts))
			ordered := make([]kcontext.Context, 0, len(names))
			listing := cli.Listing{
				Headers: []string{"#", "CURRENT", "NAME", "CLUSTER", "NAMESPACE"},
				Names:   names,
				Empty:   "No recent contexts.",
			}
			for i, name := range names {
				c := byName[name]
				ordered = append(ordered, c)
				listing.Rows = append(listing.Rows, []string{
					strconv.Itoa(i + 1), cli.CurrentMarker(c.Current), c.Name, c.Cluster, c.DisplayNamespace(),
				})
			}
			listing.Data = ordered

			return p.Print(listing)
		},
	}

	cmd.Flags().BoolVar(&clearRecent, "clear", false, "Forget all recent contexts")

	return cmd
}
