// Package config provides configuration management for the potomac CLI using
// Viper for flexible loading from files, environment variables, and flags.
//
// Configuration sources, highest priority first: command-line flags, POTOMAC_
// environment variables (POTOMAC_CONTENT_THEMES_DIR and friends), then a
// .potomac.yml file in the working directory.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/potomac-dev/potomac/internal/errors"
)

// Config is the CLI configuration.
type Config struct {
	Content ContentConfig `yaml:"content" mapstructure:"content"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ContentConfig locates the host's package install roots.
type ContentConfig struct {
	// ThemesDir is the directory themes are installed under.
	ThemesDir string `yaml:"themes_dir" mapstructure:"themes_dir"`
	// PluginsDir is the directory plugins are installed under.
	PluginsDir string `yaml:"plugins_dir" mapstructure:"plugins_dir"`
	// LanguagesDir is the host's shared languages directory, holding the
	// per-kind global base directories.
	LanguagesDir string `yaml:"languages_dir" mapstructure:"languages_dir"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from the given file (or the default .potomac.yml
// when empty), the environment, and built-in defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".potomac")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("POTOMAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("content.themes_dir", filepath.Join("content", "themes"))
	v.SetDefault("content.plugins_dir", filepath.Join("content", "plugins"))
	v.SetDefault("content.languages_dir", filepath.Join("content", "languages"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; anything else is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errors.NewConfigError(err.Error())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the discovery core cannot work with.
func (c *Config) Validate() error {
	if c.Content.ThemesDir == "" {
		return errors.NewConfigError("content.themes_dir must not be empty")
	}
	if c.Content.PluginsDir == "" {
		return errors.NewConfigError("content.plugins_dir must not be empty")
	}
	if c.Content.LanguagesDir == "" {
		return errors.NewConfigError("content.languages_dir must not be empty")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.NewConfigError("log.format must be text or json")
	}
	return nil
}
