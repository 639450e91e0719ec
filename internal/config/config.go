// Package config loads textscan configuration from TOML files with
// environment variable overrides.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textscan/internal/scan"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TEXTSCAN_"

// ScannerConfig holds scanner defaults.
type ScannerConfig struct {
	Separators      string `toml:"separators"`
	CaseInsensitive bool   `toml:"case_insensitive"`
	IgnoreQuoted    bool   `toml:"ignore_quoted"`
	IgnoreComments  bool   `toml:"ignore_comments"`
	MaxUndo         int    `toml:"max_undo"`
}

// ConsoleConfig holds console output settings.
type ConsoleConfig struct {
	// Level is one of quiet, error, warn, info, debug.
	Level string `toml:"level"`

	// Color is one of auto, always, never.
	Color string `toml:"color"`
}

// Config is the complete textscan configuration.
type Config struct {
	Scanner ScannerConfig `toml:"scanner"`
	Console ConsoleConfig `toml:"console"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scanner: ScannerConfig{
			Separators: scan.DefaultSeparators,
			MaxUndo:    scan.DefaultMaxUndoEntries,
		},
		Console: ConsoleConfig{
			Level: "info",
			Color: "auto",
		},
	}
}

// Load reads the configuration file at path, layering it over the
// defaults and applying environment overrides. A missing file is not
// an error; the defaults (plus environment) are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, cfg.validate()
}

// LoadFrom reads configuration from a reader, layering it over the
// defaults. Environment overrides are not applied.
func LoadFrom(r io.Reader) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, cfg.validate()
}

// validate rejects values the rest of the program would choke on.
func (c Config) validate() error {
	switch c.Console.Color {
	case "auto", "always", "never", "":
	default:
		return fmt.Errorf("invalid console color %q", c.Console.Color)
	}
	switch c.Console.Level {
	case "quiet", "error", "warn", "warning", "info", "debug", "":
	default:
		return fmt.Errorf("invalid console level %q", c.Console.Level)
	}
	if c.Scanner.MaxUndo < 0 {
		return fmt.Errorf("invalid max_undo %d", c.Scanner.MaxUndo)
	}
	return nil
}

// ScanOptions converts the scanner section into scanner constructor
// options.
func (c ScannerConfig) ScanOptions() []scan.Option {
	var opts []scan.Option
	if c.Separators != "" {
		opts = append(opts, scan.WithSeparators(c.Separators))
	}
	if c.CaseInsensitive {
		opts = append(opts, scan.WithCaseInsensitive())
	}
	if c.IgnoreQuoted {
		opts = append(opts, scan.WithIgnoreQuoted())
	}
	if c.IgnoreComments {
		opts = append(opts, scan.WithIgnoreComments())
	}
	if c.MaxUndo > 0 {
		opts = append(opts, scan.WithMaxUndoEntries(c.MaxUndo))
	}
	return opts
}

// applyEnv overlays TEXTSCAN_ environment variables onto the
// configuration.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "SEPARATORS"); ok {
		cfg.Scanner.Separators = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CASE_INSENSITIVE"); ok {
		cfg.Scanner.CaseInsensitive = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "IGNORE_QUOTED"); ok {
		cfg.Scanner.IgnoreQuoted = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "IGNORE_COMMENTS"); ok {
		cfg.Scanner.IgnoreComments = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_UNDO"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Scanner.MaxUndo = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LEVEL"); ok {
		cfg.Console.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "COLOR"); ok {
		cfg.Console.Color = v
	}
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
