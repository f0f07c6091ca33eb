// Package logging provides the subsystem-scoped logger used throughout kctx.
//
// The logger is a thin layer over log/slog. Every entry carries a subsystem
// attribute so that output from the kubeconfig store, the context repository
// and the recency tracker can be told apart when running with --debug.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelDebug, os.Stderr)
//
//	logging.Debug("Kubeconfig", "Loaded %d contexts from %s", n, path)
//	logging.Warn("Recent", "Ignoring unreadable recency state: %v", err)
//	logging.Error("Repository", err, "Failed to switch to context %s", name)
//
// Until InitForCLI is called the package logs WARN and above to stderr, so
// library callers that never initialise logging still see degraded-read
// warnings but no debug chatter.
//
// Core packages only log diagnostics. User-facing messages (success and
// failure notices) are the responsibility of the command layer.
package logging
