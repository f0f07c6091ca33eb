package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kctx",
		Long:  `All software has versions. This is kctx's.`,
		Args:  cobra.NoArgs,
		// Skip the root's config and kubeconfig setup.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kctx version %s\n", cmd.Root().Version)
		},
	}
}
