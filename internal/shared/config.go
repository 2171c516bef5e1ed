package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Backend selector values accepted by [StorageConfig.Backend].
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Storage  StorageConfig       `toml:"storage"`
	Export   ExportConfig        `toml:"export"`
	Logging  LoggingConfig       `toml:"logging"`
	Defaults map[string][]string `toml:"defaults"`
}

// StorageConfig selects and parameterizes the catalog backend.
type StorageConfig struct {
	Backend  string         `toml:"backend"`
	File     FileConfig     `toml:"file"`
	Database DatabaseConfig `toml:"database"`
}

// FileConfig contains settings for the JSON file backend.
type FileConfig struct {
	Path string `toml:"path"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ExportConfig contains settings for playlist exports.
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig contains logger settings. Path is the log file used while
// the interactive menu owns the terminal.
type LoggingConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Validate checks the parts of the configuration that have a closed set of
// legal values.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
