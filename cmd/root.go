package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"kctx/internal/cli"
	"kctx/internal/config"
	kcontext "kctx/internal/context"
	"kctx/internal/kubeconfig"
	"kctx/internal/recent"
	"kctx/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotFound indicates the named context does not exist.
	ExitCodeNotFound = 2
	// ExitCodeIOFailure indicates the kubeconfig or state could not be read or written.
	ExitCodeIOFailure = 3
)

// LogLevelEnvVar sets the log level when --debug is not given.
const LogLevelEnvVar = "KCTX_LOG_LEVEL"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	flags      cli.CommandFlags
	config     config.KctxConfig
	configPath string

	store   *kubeconfig.Store
	repo    *kcontext.Repository
	tracker *recent.Tracker
}

// rootCmd represents the base command for the kctx application.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "kctx",
		Short: "Switch Kubernetes contexts and namespaces",
		Long: `kctx lists, searches and switches the contexts of your kubeconfig file
and sets the default namespace of each context.

Running kctx without a subcommand lists all contexts.

The kubeconfig location follows kubectl: --kubeconfig, then the first
entry of $KUBECONFIG, then ~/.kube/config.`,
		Args: cobra.NoArgs,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}

	cli.RegisterCommonFlags(cmd, &a.flags)

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newCurrentCmd(a))
	cmd.AddCommand(newUseCmd(a))
	cmd.AddCommand(newNamespaceCmd(a))
	cmd.AddCommand(newSearchCmd(a))
	cmd.AddCommand(newRecentCmd(a))
	cmd.AddCommand(newInfoCmd(a))
	cmd.AddCommand(newWatchCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// init wires logging, configuration and storage from the global flags.
func (a *app) init(cmd *cobra.Command) error {
	level := logging.LevelWarn
	if env := os.Getenv(LogLevelEnvVar); env != "" {
		parsed, err := logging.ParseLevel(env)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", LogLevelEnvVar, err)
		}
		level = parsed
	}
	if a.flags.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	cli.ConfigureColors(cmd.OutOrStdout())

	configPath, err := config.ResolveConfigPath(a.flags.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.config = cfg
	a.configPath = configPath

	if a.flags.Kubeconfig != "" {
		a.store = kubeconfig.NewStoreWithPath(a.flags.Kubeconfig)
	} else {
		a.store = kubeconfig.NewStore()
	}
	a.repo = kcontext.NewRepository(a.store)
	a.tracker = recent.NewTracker(recent.NewFileStore(config.StateDir(cfg, configPath)), cfg.Recent.MaxEntries)

	logging.Debug("CLI", "Using kubeconfig %s and config directory %s", a.store.Path(), configPath)
	return nil
}

// printer returns a printer for the resolved --output format.
func (a *app) printer(cmd *cobra.Command) (*cli.Printer, error) {
	format, err := a.flags.ResolveOutputFormat(a.config.Output.Format)
	if err != nil {
		return nil, err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), format, a.flags.NoHeaders, a.flags.Quiet), nil
}

// notify prints a confirmation unless --quiet is set.
func (a *app) notify(cmd *cobra.Command, format string, args ...interface{}) {
	if a.flags.Quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// notFoundHint adds a pointer to `kctx list` to context-not-found errors.
func notFoundHint(err error) error {
	if kcontext.IsNotFound(err) {
		return fmt.Errorf("%w. Use 'kctx list' to see available contexts", err)
	}
	return err
}

// completeContextNames provides shell completion for context names
func (a *app) completeContextNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, name := range a.repo.GetContextNames() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kctx version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var notFound *kcontext.ContextNotFoundError
	if errors.As(err, &notFound) {
		return ExitCodeNotFound
	}

	var writeErr *kubeconfig.WriteError
	if errors.As(err, &writeErr) {
		return ExitCodeIOFailure
	}

	var unavailable *kubeconfig.ConfigUnavailableError
	if errors.As(err, &unavailable) {
		return ExitCodeIOFailure
	}

	var recentErr *recent.WriteError
	if errors.As(err, &recentErr) {
		return ExitCodeIOFailure
	}

	return ExitCodeError
}
