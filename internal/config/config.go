// Package config loads enumgen settings from .enumgen.yaml and the
// environment. Environment variables override the file; command-line flags
// override both and are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfig    = "ENUMGEN_CONFIG"
	EnvLogLevel  = "ENUMGEN_LOG_LEVEL"
	EnvLogFormat = "ENUMGEN_LOG_FORMAT"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".enumgen.yaml"

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the enumgen configuration.
type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Output controls generated files.
type Output struct {
	// Header is prepended to generated files as a comment block.
	Header string `yaml:"header"`
	// Suffix names files generated without an explicit --out.
	Suffix string `yaml:"suffix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: FormatText},
		Output: Output{Suffix: "_enum.go"},
	}
}

// Load reads path, or $ENUMGEN_CONFIG, or DefaultFile when it exists, then
// applies environment overrides. An explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := true
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path == "" {
		path, explicit = DefaultFile, false
	}

	//nolint:gosec // config path is chosen by the operator.
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Log.Format = v
	}
}

// Validate rejects unknown log formats and levels.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.Output.Suffix == "" || !strings.HasSuffix(c.Output.Suffix, ".go") {
		return fmt.Errorf("config: output suffix %q must end in .go", c.Output.Suffix)
	}
	return nil
}
