package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFlags_ResolveOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		fallback string
		want     string
		wantErr  bool
	}{
		{name: "flag wins", flag: "json", fallback: "wide", want: "json"},
		{name: "fallback used", fallback: "wide", want: "wide"},
		{name: "table when nothing set", want: "table"},
		{name: "go-template", flag: "go-template={{.}}", want: "go-template={{.}}"},
		{name: "invalid flag", flag: "xml", wantErr: true},
		{name: "invalid fallback", fallback: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := &CommandFlags{OutputFormat: tt.flag}
			got, err := flags.ResolveOutputFormat(tt.fallback)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterCommonFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	flags := &CommandFlags{}
	RegisterCommonFlags(cmd, flags)

	require.NoError(t, cmd.PersistentFlags().Parse([]string{
		"--kubeconfig", "/tmp/kc", "-o", "yaml", "--no-headers", "-q", "--debug", "--config-path", "/tmp/cfg",
	}))

	assert.Equal(t, "/tmp/kc", flags.Kubeconfig)
	assert.Equal(t, "/tmp/cfg", flags.ConfigPath)
	assert.Equal(t, "yaml", flags.OutputFormat)
	assert.True(t, flags.NoHeaders)
	assert.True(t, flags.Quiet)
	assert.True(t, flags.Debug)
}
