package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/zostay/xsdgen-go"
)

const (
	EnvBackend  = "XSDANNO_BACKEND"
	EnvLogLevel = "XSDANNO_LOG_LEVEL"
)

// Config holds the resolved settings for one run.
type Config struct {
	Backend     string
	Format      string
	LogLevel    zerolog.Level
	Concurrency int
	Output      string
}

type fileConfig struct {
	Backend     string `toml:"backend"`
	Format      string `toml:"format"`
	LogLevel    string `toml:"log_level"`
	Concurrency int    `toml:"concurrency"`
	Output      string `toml:"output"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Backend:     xsdgen.DefaultBackend,
		Format:      xsdgen.FormatText,
		LogLevel:    zerolog.InfoLevel,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// loadConfigFile overlays the keys defined in the TOML file at path onto cfg.
func loadConfigFile(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("backend") {
		cfg.Backend = strings.TrimSpace(raw.Backend)
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}

	if meta.IsDefined("log_level") {
		lvl, ok := parseLevel(raw.LogLevel)
		if !ok {
			return fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("concurrency") {
		if raw.Concurrency < 1 {
			return fmt.Errorf("parse concurrency: must be at least 1, got %d", raw.Concurrency)
		}
		cfg.Concurrency = raw.Concurrency
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		cfg.Backend = v
	}
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.LogLevel = lvl
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
