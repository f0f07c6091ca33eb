package cli

import (
	"fmt"

	"kctx/internal/config"

	"github.com/spf13/cobra"
)

// CommandFlags holds the flag values shared by all kctx commands.
type CommandFlags struct {
	// Kubeconfig overrides the kubeconfig file location
	Kubeconfig string
	// ConfigPath specifies a custom kctx configuration directory
	ConfigPath string
	// OutputFormat specifies the desired output format; empty means the
	// configured default
	OutputFormat string
	// NoHeaders suppresses the header row in table output
	NoHeaders bool
	// Quiet suppresses confirmations and other non-essential output
	Quiet bool
	// Debug enables debug logging on stderr
	Debug bool
}

// RegisterCommonFlags registers the global flags as persistent flags on cmd.
//
// The registered flags are:
//   - --kubeconfig: Path to the kubeconfig file (env: KUBECONFIG)
//   - --config-path: Configuration directory (env: KCTX_CONFIG_PATH)
//   - --output/-o: Output format
//   - --no-headers: Suppress header row in table output
//   - --quiet/-q: Suppress non-essential output
//   - --debug: Enable debug logging
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.PersistentFlags().StringVar(&flags.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file (env: KUBECONFIG)")
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", "", "Configuration directory (env: KCTX_CONFIG_PATH, default: ~/.config/kctx)")
	cmd.PersistentFlags().StringVarP(&flags.OutputFormat, "output", "o", "", "Output format (table, wide, json, yaml, name, go-template=...)")
	cmd.PersistentFlags().BoolVar(&flags.NoHeaders, "no-headers", false, "Suppress header row in table output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
}

// ResolveOutputFormat returns the flag value, or fallback when the flag is
// unset, and rejects unknown formats.
func (f *CommandFlags) ResolveOutputFormat(fallback string) (string, error) {
	format := f.OutputFormat
	if format == "" {
		format = fallback
	}
	if format == "" {
		format = config.OutputTable
	}
	if !config.IsValidOutputFormat(format) {
		return "", fmt.Errorf("unsupported output format %q (use table, wide, json, yaml, name or go-template=...)", format)
	}
	return format, nil
}
