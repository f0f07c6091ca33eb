// Package cli provides the presentation helpers shared by kctx commands.
//
// # Core Components
//
// CommandFlags and RegisterCommonFlags define the global flags every
// command understands (--kubeconfig, --config-path, --output, --no-headers,
// --quiet and --debug).
//
// Printer renders a Listing in the format chosen with --output:
//   - table: kubectl-style plain columns (PlainTableWriter)
//   - wide: the table plus extra columns
//   - json, yaml: the listing's data, field names following json tags
//   - name: one name per line, for shell pipelines
//   - go-template=<template>: a Go template with the sprig functions
//
// Picker is the interactive context chooser used by `kctx use` when no
// name is given. It is built on readline so context names can be tab
// completed.
package cli
