package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Default source locations on sacred-texts.com
const (
	DefaultMajorsURL      = "http://www.sacred-texts.com/tarot/pkt/pkt0303.htm"
	DefaultMinorURLPrefix = "http://www.sacred-texts.com/tarot/pkt/pkt"
	DefaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config represents the application configuration
type Config struct {
	MajorsURL      string `toml:"majors_url"`
	MinorURLPrefix string `toml:"minor_url_prefix"`
	TimeoutSeconds int    `toml:"timeout_seconds"` // 0 disables the timeout
	UserAgent      string `toml:"user_agent"`
	Fetcher        string `toml:"fetcher"` // resty or colly
	OutputDir      string `toml:"output_dir"`
	CardDataFile   string `toml:"card_data_file"`
	MajorTextFile  string `toml:"major_text_file"`
	MinorTextFile  string `toml:"minor_text_file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		MajorsURL:      DefaultMajorsURL,
		MinorURLPrefix: DefaultMinorURLPrefix,
		TimeoutSeconds: 60,
		UserAgent:      DefaultUserAgent,
		Fetcher:        "resty",
		OutputDir:      ".",
		CardDataFile:   "card_data_tmp.json",
		MajorTextFile:  "maj_text.json",
		MinorTextFile:  "min_text.json",
	}
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MinorURL returns the page URL for a minor card from its suit and rank codes
func (c *Config) MinorURL(suitCode, rankCode string) string {
	return c.MinorURLPrefix + suitCode + rankCode + ".htm"
}

// CardDataPath returns the full path of the card data file
func (c *Config) CardDataPath() string {
	return filepath.Join(c.OutputDir, c.CardDataFile)
}

// MajorTextPath returns the full path of the major text dump
func (c *Config) MajorTextPath() string {
	return filepath.Join(c.OutputDir, c.MajorTextFile)
}

// MinorTextPath returns the full path of the minor text dump
func (c *Config) MinorTextPath() string {
	return filepath.Join(c.OutputDir, c.MinorTextFile)
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "pictorialkey", "config.toml")
}

// LoadConfig loads the config file at path, creating it with defaults if it
// doesn't exist. An empty path selects GetConfigFilePath.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}

	// Start from defaults so keys missing in the file keep their values
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig writes a default config file at path
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := SaveConfig(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig encodes config to path, creating the directory if needed
func SaveConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetOutputDir sets the output directory in the config file at path
func SetOutputDir(path, dir string) error {
	if path == "" {
		path = GetConfigFilePath()
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	config.OutputDir = dir
	return SaveConfig(path, config)
}
