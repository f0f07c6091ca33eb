package config

const (
	// DefaultMaxRecentEntries is the default recent-contexts capacity.
	DefaultMaxRecentEntries = 5

	// DefaultHighlightMarker surrounds search matches by default.
	DefaultHighlightMarker = "**"
)

// GetDefaultConfig returns the configuration used when no file is present.
func GetDefaultConfig() KctxConfig {
	return KctxConfig{
		Recent: RecentConfig{
			MaxEntries: DefaultMaxRecentEntries,
		},
		Highlight: HighlightConfig{
			Prefix: DefaultHighlightMarker,
			Suffix: DefaultHighlightMarker,
		},
		Output: OutputConfig{
			Format: OutputTable,
		},
	}
}
