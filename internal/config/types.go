package config

// KctxConfig is the top-level configuration structure for kctx.
type KctxConfig struct {
	Recent    RecentConfig    `yaml:"recent"`
	Highlight HighlightConfig `yaml:"highlight"`
	Output    OutputConfig    `yaml:"output"`
}

// RecentConfig controls the recent-contexts list.
type RecentConfig struct {
	MaxEntries int    `yaml:"maxEntries,omitempty"` // Number of names remembered (default: 5)
	StateDir   string `yaml:"stateDir,omitempty"`   // Where the list is stored (default: <config dir>/state)
}

// HighlightConfig holds the markers wrapped around search matches.
type HighlightConfig struct {
	Prefix string `yaml:"prefix,omitempty"`
	Suffix string `yaml:"suffix,omitempty"`
}

// OutputConfig sets the default output format of listing commands.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputWide  = "wide"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputName  = "name"

	// OutputGoTemplatePrefix starts a go-template=<template> format.
	OutputGoTemplatePrefix = "go-template="
)
