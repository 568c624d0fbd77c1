package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "xsdanno.toml", `
backend = "openapi"
format = "yaml"
log_level = "debug"
concurrency = 3
output = "out.yaml"
`)

	cfg := DefaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))
	assert.Equal(t, Config{
		Backend:     "openapi",
		Format:      "yaml",
		LogLevel:    zerolog.DebugLevel,
		Concurrency: 3,
		Output:      "out.yaml",
	}, cfg)
}

func TestLoadConfigFile_KeepsUndefinedKeys(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "xsdanno.toml", `format = "yaml"`)

	cfg := DefaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))

	want := DefaultConfig()
	want.Format = "yaml"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigFile_Sad(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bad level":       `log_level = "loud"`,
		"bad concurrency": `concurrency = 0`,
		"not toml":        `backend = `,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			assert.Error(t, loadConfigFile(writeTemp(t, "xsdanno.toml", content), &cfg))
		})
	}

	cfg := DefaultConfig()
	assert.ErrorContains(t, loadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg), "load config")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvBackend, "openapi")
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultConfig()
	applyEnvOverrides(&cfg)
	assert.Equal(t, "openapi", cfg.Backend)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, ok := parseLevel(" Debug ")
	assert.True(t, ok)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	lvl, ok = parseLevel("off")
	assert.True(t, ok)
	assert.Equal(t, zerolog.Disabled, lvl)

	_, ok = parseLevel("")
	assert.False(t, ok)

	_, ok = parseLevel("verbose")
	assert.False(t, ok)
}
