package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional settings read from config.toml.
// The file is only ever read; jvcheck keeps no state between runs.
type Config struct {
	Java         string `toml:"java"`          // Launcher queried with -version
	Quiet        bool   `toml:"quiet"`         // Always print instead of showing dialogs
	LogLevel     string `toml:"log_level"`     // logrus level name
	LogFormat    string `toml:"log_format"`    // "text" or "json"
	ProbeTimeout int    `toml:"probe_timeout"` // Seconds to wait for the launcher, 0 waits forever
	configPath   string
}

const (
	// EnvConfig overrides the config file location
	EnvConfig = "JVCHECK_CONFIG"
	// EnvLogLevel overrides log_level from the file
	EnvLogLevel = "JVCHECK_LOG_LEVEL"
)

// Default returns the settings used when no config file exists
func Default() *Config {
	return &Config{
		Java:      "java",
		LogFormat: "text",
	}
}

// Load reads the config file from its standard location
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path, returning defaults if it does not exist
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	// This handles files created by PowerShell with Set-Content -Encoding UTF8
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.Java = strings.TrimSpace(cfg.Java)
	if cfg.Java == "" {
		cfg.Java = "java"
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that toml decoding cannot
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	if c.ProbeTimeout < 0 {
		return fmt.Errorf("probe_timeout must not be negative, got %d", c.ProbeTimeout)
	}
	return nil
}

// Timeout returns the launcher deadline, zero meaning none
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.ProbeTimeout) * time.Second
}

// StructuredLogs reports whether logs should be JSON
func (c *Config) StructuredLogs() bool {
	return strings.EqualFold(c.LogFormat, "json")
}

// Path returns the file this config was loaded from
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyEnv() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
}

// Path returns the location of config.toml.
// JVCHECK_CONFIG wins; otherwise the XDG config home is used.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "jvcheck", "config.toml")
}
