// Package config resolves dropsel configuration from, in increasing
// precedence: built-in defaults, the global config file, the project config
// file, and DROPSEL_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dropsel/dropsel/internal/errors"
	"github.com/dropsel/dropsel/internal/widget"
)

// Config holds the resolved configuration for the demo widget.
type Config struct {
	Name        string `mapstructure:"name" yaml:"name"`
	ChoicesFile string `mapstructure:"choices_file" yaml:"choices_file"`
	Popup       string `mapstructure:"popup" yaml:"popup"`
	Trigger     bool   `mapstructure:"trigger" yaml:"trigger"`
	Multi       bool   `mapstructure:"multi" yaml:"multi"`
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "dropdown")
	v.SetDefault("choices_file", "choices.yml")
	v.SetDefault("popup", "auto")
	v.SetDefault("trigger", false)
	v.SetDefault("multi", true)
	v.SetDefault("data_dir", ".dropsel")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// GlobalPath returns the global config file location.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "dropsel", "dropsel.yml")
	}
	return filepath.Join(home, ".config", "dropsel", "dropsel.yml")
}

// ProjectPath returns the project-local config file location.
func ProjectPath() string {
	return "dropsel.yml"
}

// Exists reports whether any config file is present.
func Exists() bool {
	if _, err := os.Stat(GlobalPath()); err == nil {
		return true
	}
	if _, err := os.Stat(ProjectPath()); err == nil {
		return true
	}
	return false
}

// Load resolves the configuration. Missing config files are not errors;
// a malformed file or an invalid resolved value is.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DROPSEL")
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	if _, err := os.Stat(GlobalPath()); err == nil {
		v.SetConfigFile(GlobalPath())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read global config: %w", err)
		}
	}
	if _, err := os.Stat(ProjectPath()); err == nil {
		v.SetConfigFile(ProjectPath())
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved values, collecting every violation.
func (c *Config) Validate() error {
	me := &errors.MultiError{}

	if c.Name == "" {
		me.Append(errors.NewValidationError("name", "", "widget name is required"))
	}
	if !widget.ValidPopupMode(c.Popup) {
		me.Append(errors.NewValidationError("popup", c.Popup,
			"must be always, auto, or never"))
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		me.Append(errors.NewValidationError("log_level", c.LogLevel,
			"must be debug, info, warn, or error"))
	}

	return me.ErrorOrNil()
}

// WriteGlobal writes cfg to the global config path, creating the directory
// as needed.
func WriteGlobal(cfg *Config) error {
	dir := filepath.Dir(GlobalPath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(GlobalPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
