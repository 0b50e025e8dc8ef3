package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "CMOON_CONFIG"

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the tool configuration. Every table is optional.
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	LSP    LSPConfig    `toml:"lsp"`
}

// OutputConfig controls how the CLI prints tokens, trees and errors
type OutputConfig struct {
	Format  string `toml:"format"`
	NoColor bool   `toml:"no_color"`
}

// LogConfig is handed to commonlog.Configure
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// LSPConfig holds language server settings
type LSPConfig struct {
	Name  string `toml:"name"`
	Debug bool   `toml:"debug"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML file. A missing file is not an error; the defaults are
// returned instead.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve picks the config file: an explicit path first, then CMOON_CONFIG,
// then ./.cmoon.toml, then ~/.config/cmoon/config.toml.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		if _, err := os.Stat(os.ExpandEnv(explicit)); err != nil {
			return nil, fmt.Errorf("config file not found: %s", explicit)
		}
		return Load(explicit)
	}

	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	candidates := []string{".cmoon.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "cmoon", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// Validate rejects values the tools cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of %s, %s, %s; got %q", FormatText, FormatJSON, FormatYAML, c.Output.Format)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative; got %d", c.Log.Verbosity)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.LSP.Name == "" {
		c.LSP.Name = "cmoon"
	}
}
