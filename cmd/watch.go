package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kctx/internal/kubeconfig"
	"kctx/pkg/logging"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the current context whenever it changes",
		Long: `Watch the kubeconfig file and print the current context each time it
changes, for example after 'kubectl config use-context' in another shell.

The current context is printed once at start. Stop with Ctrl+C.

Examples:
  kctx watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			last := a.repo.GetCurrentContextName()
			fmt.Fprintln(out, displayCurrent(last))

			changes := make(chan struct{}, 1)
			watcher := kubeconfig.NewWatcher(kubeconfig.WatcherConfig{
				Path:     a.store.Path(),
				Debounce: debounce,
				OnChange: func() {
					select {
					case changes <- struct{}{}:
					default:
					}
				},
			})
			if err := watcher.Start(); err != nil {
				return fmt.Errorf("failed to watch %s: %w", a.store.Path(), err)
			}
			defer func() {
				if err := watcher.Stop(); err != nil {
					logging.Warn("CLI", "Failed to stop watcher: %v", err)
				}
			}()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-changes:
					current := a.repo.GetCurrentContextName()
					if current == last {
						continue
					}
					last = current
					fmt.Fprintln(out, displayCurrent(current))
				}
			}
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", kubeconfig.DefaultDebounceInterval, "Wait this long for writes to settle before reading the file")

	return cmd
}

func displayCurrent(name string) string {
	if name == "" {
		return "<none>"
	}
	return name
}
