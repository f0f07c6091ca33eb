// Package config loads the kctx settings file.
//
// Settings live in a single directory, ~/.config/kctx by default. The
// directory can be moved with the KCTX_CONFIG_PATH environment variable or
// the --config-path flag, the flag taking precedence. It contains:
//   - config.yaml, the optional settings file described below
//   - state/, where the recent-contexts list is persisted
//
// A missing config.yaml is not an error: LoadConfig then returns the
// defaults. Fields present in the file override the defaults one by one.
//
// # File Format
//
//	recent:
//	  maxEntries: 5
//	  stateDir: /custom/state/dir
//	highlight:
//	  prefix: "**"
//	  suffix: "**"
//	output:
//	  format: table
//
// The kubeconfig file itself is never configured here; it follows the
// KUBECONFIG / --kubeconfig conventions of kubectl.
package config
