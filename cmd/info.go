package cmd

import (
	"fmt"
	"strings"

	"kctx/internal/config"
	"kctx/internal/formatting"

	"github.com/spf13/cobra"
)

// infoView is the machine-readable output of `kctx info`.
type infoView struct {
	Kubeconfig interface{} `json:"kubeconfig"`
	ConfigPath string      `json:"configPath"`
	StateDir   string      `json:"stateDir"`
	Recent     []string    `json:"recent"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show kubeconfig diagnostics",
		Long: `Show which kubeconfig file kctx uses, whether it could be read and
parsed, how many contexts, clusters and users it defines, and whether
kubectl's own loader accepts it.

Examples:
  kctx info
  kctx info -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.flags.ResolveOutputFormat(a.config.Output.Format)
			if err != nil {
				return err
			}

			info := a.store.Info()
			stateDir := config.StateDir(a.config, a.configPath)
			recentNames := a.tracker.Recent(a.repo.GetContextNames())

			out := cmd.OutOrStdout()
			switch {
			case format == config.OutputJSON:
				return formatting.WriteJSON(out, infoView{info, a.configPath, stateDir, recentNames})
			case format == config.OutputYAML:
				return formatting.WriteYAML(out, infoView{info, a.configPath, stateDir, recentNames})
			case strings.HasPrefix(format, config.OutputGoTemplatePrefix):
				return formatting.WriteTemplate(out, strings.TrimPrefix(format, config.OutputGoTemplatePrefix),
					infoView{info, a.configPath, stateDir, recentNames})
			case format == config.OutputName:
				fmt.Fprintln(out, info.Path)
				return nil
			}

			status := formatting.Status(info.Available, "readable", "unavailable")
			if !info.Available && info.Reason != "" {
				status = formatting.Status(false, "", "unavailable ("+info.Reason+")")
			}
			current := info.CurrentContext
			if current == "" {
				current = "<none>"
			}
			compat := formatting.Status(info.ClientGoCompatible, "yes", "no")
			if info.ClientGoError != "" {
				compat += " (" + info.ClientGoError + ")"
			}

			formatting.WriteDetails(out, []formatting.Detail{
				{Key: "Kubeconfig", Value: info.Path},
				{Key: "Status", Value: status},
				{Key: "Current context", Value: current},
				{Key: "Contexts", Value: fmt.Sprint(info.ContextCount)},
				{Key: "Clusters", Value: fmt.Sprint(info.ClusterCount)},
				{Key: "Users", Value: fmt.Sprint(info.UserCount)},
				{Key: "kubectl compatible", Value: compat},
				{Key: "Config directory", Value: a.configPath},
				{Key: "State directory", Value: stateDir},
				{Key: "Recent", Value: strings.Join(recentNames, ", ")},
			})
			return nil
		},
	}
}
