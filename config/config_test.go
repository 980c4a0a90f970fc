package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "DEBUG"
form = "xko"

[batch]
workers = 8
continue_on_error = false
`)
	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", config.LogLevel)
	require.Equal(t, FormXko, config.Form)
	require.Equal(t, 8, config.Batch.Workers)
	require.False(t, config.Batch.ContinueOnError)
	require.Same(t, config, Get())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	config, err := Load(writeConfig(t, `log_level = "warn"`))
	require.NoError(t, err)
	require.Equal(t, "warn", config.LogLevel)
	require.Equal(t, FormEvm, config.Form)
	require.Equal(t, 4, config.Batch.Workers)
	require.True(t, config.Batch.ContinueOnError)
}

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), config)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"bad form", `form = "tron"`, "unknown form"},
		{"bad level", `log_level = "trace"`, "unknown log_level"},
		{"bad workers", "[batch]\nworkers = 0", "batch.workers must be positive"},
		{"bad toml", `form = `, "decode config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorContains(t, err, tt.msg)
		})
	}
}
