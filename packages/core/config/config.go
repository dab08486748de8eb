package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the testy configuration
type Config struct {
	Suite       string   `json:"suite,omitempty" yaml:"suite,omitempty"`             // selfcheck suite to run
	Reporters   []string `json:"reporters,omitempty" yaml:"reporters,omitempty"`     // Output reporters
	OutputFile  string   `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`   // Write reports here instead of stdout
	Parallel    *bool    `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	Concurrency int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty"` // Number of tests run at once in parallel mode
	NameFilter  string   `json:"nameFilter,omitempty" yaml:"nameFilter,omitempty"`
	HistoryDB   string   `json:"historyDB,omitempty" yaml:"historyDB,omitempty"`     // SQLite file that records runs
	SnapshotDir string   `json:"snapshotDir,omitempty" yaml:"snapshotDir,omitempty"` // Where suite outcome snapshots live
	Rate        float64  `json:"rate,omitempty" yaml:"rate,omitempty"`               // Cases started per second, 0 for no limit
	Verbose     *bool    `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	NoColor     *bool    `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetParallel returns the parallel setting, defaulting to false
func (c *Config) GetParallel() bool {
	return getBool(c.Parallel, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// Reporter returns the first configured reporter, or "console".
func (c *Config) Reporter() string {
	if len(c.Reporters) == 0 {
		return "console"
	}
	return c.Reporters[0]
}

// ConfigFilenames contains the possible config file names, in search order
var ConfigFilenames = []string{
	".testy.yaml",
	".testy.yml",
	"testy.yaml",
	".testy.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	if path := FindConfig(dir); path != "" {
		return loadConfigFromFile(path)
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// FindConfig returns the first config file present in dir, or "".
func FindConfig(dir string) string {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}
	return ""
}

// loadConfigFromFile validates and decodes a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(data, isJSON(path)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	config := DefaultConfig()
	if isJSON(path) {
		err = json.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return config, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Suite != "" {
		result.Suite = other.Suite
	}
	if other.OutputFile != "" {
		result.OutputFile = other.OutputFile
	}
	if other.Concurrency > 0 {
		result.Concurrency = other.Concurrency
	}
	if other.NameFilter != "" {
		result.NameFilter = other.NameFilter
	}
	if other.HistoryDB != "" {
		result.HistoryDB = other.HistoryDB
	}
	if other.SnapshotDir != "" {
		result.SnapshotDir = other.SnapshotDir
	}
	if other.Rate > 0 {
		result.Rate = other.Rate
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Parallel != nil {
		result.Parallel = other.Parallel
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Reporters) > 0 {
		result.Reporters = other.Reporters
	}

	return &result
}

// SaveConfig saves the configuration to a file. Files ending in .json are
// written as JSON, everything else as YAML.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
