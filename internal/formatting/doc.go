// Package formatting renders values for the terminal.
//
// It holds the machine-readable encoders behind kctx's --output flag
// (JSON, YAML and Go templates with the sprig function library) and the
// rounded key/value tables used for detail views such as `kctx info`.
package formatting
