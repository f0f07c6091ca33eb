package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kctx/internal/cli"
	"kctx/internal/config"
	kcontext "kctx/internal/context"
	"kctx/internal/namespace"
	"kctx/pkg/logging"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all contexts",
		Long: `List all contexts of the kubeconfig file in file order.

The current context is marked with an asterisk (*). Contexts without a
namespace show "default". Wide output adds the position of each context in
the recent-contexts list.

Examples:
  kctx list
  kctx ls -o wide
  kctx list -o name
  kctx list -o go-template='{{range .}}{{.name}}:{{.cluster}}{{"\n"}}{{end}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *app) runList(cmd *cobra.Command) error {
	p, err := a.printer(cmd)
	if err != nil {
		return err
	}

	contexts := a.repo.GetContexts()

	position := make(map[string]int)
	if p.Format == config.OutputWide {
		for i, name := range a.tracker.Recent(kcontext.Names(contexts)) {
			position[name] = i + 1
		}
	}

	listing := cli.Listing{
		Headers:     []string{"CURRENT", "NAME", "CLUSTER", "USER", "NAMESPACE"},
		WideHeaders: []string{"RECENT"},
		Names:       kcontext.Names(contexts),
		Data:        contexts,
		Empty:       fmt.Sprintf("No contexts found in %s.", a.store.Path()),
	}
	for _, c := range contexts {
		listing.Rows = append(listing.Rows, contextRow(c))
		pos := ""
		if n, ok := position[c.Name]; ok {
			pos = strconv.Itoa(n)
		}
		listing.WideRows = append(listing.WideRows, []string{pos})
	}

	return p.Print(listing)
}

func contextRow(c kcontext.Context) []string {
	return []string{cli.CurrentMarker(c.Current), c.Name, c.Cluster, c.User, c.DisplayNamespace()}
}

func newCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show current context name",
		Long: `Display the name of the currently active context.

Prints nothing if no context is set, which keeps the command usable in
shell prompts and scripts.

Examples:
  kctx current`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.repo.GetCurrentContextName()
			if name == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newUseCmd(a *app) *cobra.Command {
	var (
		useNamespace string
		noHistory    bool
	)

	cmd := &cobra.Command{
		Use:     "use [name]",
		Aliases: []string{"switch"},
		Short:   "Switch to a different context",
		Long: `Make the named context the current context of the kubeconfig file.

With --namespace the namespace of that context is set in the same write.
Without a name an interactive picker lists the contexts, recently used
ones first; type a number or a name (TAB completes names).

Successful switches are remembered in the recent-contexts list.

Examples:
  kctx use production
  kctx switch staging --namespace monitoring
  kctx use`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: a.completeContextNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				picked, err := a.pickContext(cmd)
				if errors.Is(err, cli.ErrPickAborted) {
					a.notify(cmd, "Aborted.")
					return nil
				}
				if err != nil {
					return err
				}
				name = picked
			}

			ns := strings.TrimSpace(useNamespace)
			if err := namespace.Validate(ns); err != nil {
				return err
			}

			if err := a.repo.SwitchContextWithNamespace(name, ns); err != nil {
				return notFoundHint(err)
			}

			if !noHistory {
				if err := a.tracker.Add(name); err != nil {
					logging.Debug("CLI", "Recording %s as recent failed: %v", name, err)
					if !a.flags.Quiet {
						fmt.Fprintf(cmd.ErrOrStderr(), "Warning: switched context but could not record it as recent: %v\n", err)
					}
				}
			}

			if ns != "" {
				a.notify(cmd, "Switched to context %q (namespace %q).", name, ns)
			} else {
				a.notify(cmd, "Switched to context %q.", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&useNamespace, "namespace", "n", "", "Also set the namespace of the context")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the switch in the recent-contexts list")
	_ = cmd.RegisterFlagCompletionFunc("namespace", a.completeNamespaces)

	return cmd
}

// pickContext runs the interactive picker. It refuses to run when stdin is
// not a terminal.
func (a *app) pickContext(cmd *cobra.Command) (string, error) {
	if in, ok := cmd.InOrStdin().(*os.File); !ok || !cli.IsTerminal(in) {
		return "", fmt.Errorf("context name required (interactive selection needs a terminal)")
	}

	names := a.repo.GetContextNames()
	if len(names) == 0 {
		return "", fmt.Errorf("no contexts found in %s", a.store.Path())
	}

	return cli.NewPicker(cmd.OutOrStdout()).Pick(names, a.repo.GetCurrentContextName(), a.tracker.Recent(names))
}
