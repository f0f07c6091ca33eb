package cmd

import (
	"strings"

	"kctx/internal/cli"
	kcontext "kctx/internal/context"
	"kctx/internal/namespace"

	"github.com/spf13/cobra"
)

// namespaceView is one row of `kctx namespace list`.
type namespaceView struct {
	Name     string   `json:"name"`
	Common   bool     `json:"common"`
	Contexts []string `json:"contexts,omitempty"`
}

func newNamespaceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespace",
		Aliases: []string{"ns"},
		Short:   "Manage the namespace of contexts",
		Long: `List known namespaces and set or clear the namespace of a context.

Examples:
  kctx namespace list
  kctx ns set production payments
  kctx ns clear production`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNamespaceList(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available namespaces",
		Long: `List the namespaces offered for selection: the namespaces every cluster
has (default, kube-node-lease, kube-public, kube-system) plus every
namespace set on a context. No cluster is contacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNamespaceList(cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "set <context> <namespace>",
		Short:             "Set the namespace of a context",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: a.completeContextThenNamespace,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ns := args[0], strings.TrimSpace(args[1])
			if err := namespace.Validate(ns); err != nil {
				return err
			}
			if err := a.repo.SetNamespace(name, ns); err != nil {
				return notFoundHint(err)
			}
			if ns == "" {
				a.notify(cmd, "Cleared namespace of context %q.", name)
				return nil
			}
			a.notify(cmd, "Namespace of context %q set to %q.", name, ns)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "clear <context>",
		Aliases:           []string{"unset"},
		Short:             "Remove the namespace of a context",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeContextNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.repo.SetNamespace(args[0], ""); err != nil {
				return notFoundHint(err)
			}
			a.notify(cmd, "Cleared namespace of context %q.", args[0])
			return nil
		},
	})

	return cmd
}

func (a *app) runNamespaceList(cmd *cobra.Command) error {
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}

	doc := a.repo.Document()
	common := make(map[string]bool)
	for _, ns := range namespace.CommonNamespaces() {
		common[ns] = true
	}

	usedBy := make(map[string][]string)
	for _, c := range kcontext.FromDocument(doc) {
		ns := c.DisplayNamespace()
		usedBy[ns] = append(usedBy[ns], c.Name)
	}

	names := namespace.AllAvailable(doc)
	views := make([]namespaceView, 0, len(names))
	listing := cli.Listing{
		Headers: []string{"NAMESPACE", "CONTEXTS"},
		Names:   names,
	}
	for _, ns := range names {
		views = append(views, namespaceView{Name: ns, Common: common[ns], Contexts: usedBy[ns]})
		listing.Rows = append(listing.Rows, []string{ns, strings.Join(usedBy[ns], ",")})
	}
	listing.Data = views

	return p.Print(listing)
}

func (a *app) completeNamespaces(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, ns := range namespace.AllAvailable(a.repo.Document()) {
		if strings.HasPrefix(ns, toComplete) {
			out = append(out, ns)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func (a *app) completeContextThenNamespace(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return a.completeContextNames(cmd, args, toComplete)
	case 1:
		return a.completeNamespaces(cmd, args, toComplete)
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
