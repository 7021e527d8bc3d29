package config

import (
	"os"
	"path/filepath"

	"flagren/internal/errors"
	"flagren/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Collision policies
const (
	// CollisionFail refuses a rename whose target already exists on disk or
	// was produced earlier in the same batch.
	CollisionFail = "fail"
	// CollisionOverwrite leaves the decision to the platform rename call.
	CollisionOverwrite = "overwrite"
)

// Defaults are values used when the user leaves a choice blank.
type Defaults struct {
	Flag     string `yaml:"flag"`     // Used when the user enters an empty flag
	Position string `yaml:"position"` // prefix or suffix, for non-interactive commands
}

// Settings control engine and logging behavior.
type Settings struct {
	Collision string `yaml:"collision"` // Collision policy: fail or overwrite
	Debug     bool   `yaml:"debug"`     // Enable debug logging
	LogFile   string `yaml:"log_file"`  // Optional file mirroring the log
}

// Folder holds the name filters applied when enumerating a directory.
type Folder struct {
	Include []string `yaml:"include"` // Only enumerate names matching one of these globs
	Exclude []string `yaml:"exclude"` // Never enumerate names matching these globs
}

// Config represents the application configuration structure.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Settings Settings `yaml:"settings"`
	Folder   Folder   `yaml:"folder"`
}

// DefaultPath returns ~/.config/flagren/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flagren", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Defaults.Flag != "" {
		cfg.Defaults.Flag = tempCfg.Defaults.Flag
	}
	if tempCfg.Defaults.Position != "" {
		cfg.Defaults.Position = tempCfg.Defaults.Position
	}
	if tempCfg.Settings.Collision != "" {
		cfg.Settings.Collision = tempCfg.Settings.Collision
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	cfg.Settings.LogFile = tempCfg.Settings.LogFile
	if len(tempCfg.Folder.Include) > 0 {
		cfg.Folder.Include = tempCfg.Folder.Include
	}
	if len(tempCfg.Folder.Exclude) > 0 {
		cfg.Folder.Exclude = tempCfg.Folder.Exclude
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Defaults.Position = types.Prefix.String()
	cfg.Settings.Collision = CollisionFail
	cfg.Folder.Include = []string{}
	cfg.Folder.Exclude = []string{}
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	switch c.Settings.Collision {
	case CollisionFail, CollisionOverwrite:
	default:
		return errors.NewConfigError("invalid collision setting", c.Settings.Collision, errors.InvalidConfig, nil)
	}

	if _, err := c.DefaultPosition(); err != nil {
		return errors.NewConfigError("invalid default position", c.Defaults.Position, errors.InvalidConfig, err)
	}

	for _, patterns := range [][]string{c.Folder.Include, c.Folder.Exclude} {
		for _, p := range patterns {
			if _, err := glob.Compile(p); err != nil {
				return errors.NewConfigError("invalid folder pattern", p, errors.InvalidConfig, err)
			}
		}
	}

	return nil
}

// DefaultPosition parses Defaults.Position, treating empty as prefix.
func (c *Config) DefaultPosition() (types.Position, error) {
	if c.Defaults.Position == "" {
		return types.Prefix, nil
	}
	return types.ParsePosition(c.Defaults.Position)
}
