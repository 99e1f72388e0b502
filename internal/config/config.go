package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/hammer/internal/constants"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Path       string `yaml:"path" mapstructure:"path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// DefaultPath returns the config file location under the XDG config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName, constants.ConfigFilename)
}

// Load reads the config file at path from fs. A missing file is not an error;
// the defaults are returned instead.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file %s: %w", path, err)
	}
	if !exists {
		return DefaultConfig(), nil
	}

	viperInstance := newViper()
	viperInstance.SetFs(fs)
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.path", defaults.Logging.Path)
	v.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the log level name and rotation limits
func (c *Config) Validate() error {
	if _, err := c.Logging.ZerologLevel(); err != nil {
		return err
	}

	if c.Logging.MaxSize < 0 {
		return errors.New("logging.max_size cannot be negative")
	}
	if c.Logging.MaxBackups < 0 {
		return errors.New("logging.max_backups cannot be negative")
	}
	if c.Logging.MaxAge < 0 {
		return errors.New("logging.max_age cannot be negative")
	}

	return nil
}

// ZerologLevel parses the configured level name. An empty level means info.
func (l *LoggingConfig) ZerologLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid logging level '%s': %w", l.Level, err)
	}
	return level, nil
}
