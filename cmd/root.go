// Package cmd provides the potomac command-line interface.
//
// Configuration sources, highest priority first: command-line flags,
// POTOMAC_* environment variables, then a .potomac.yml file in the working
// directory (override the path with --config or POTOMAC_CONFIG_FILE).
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/potomac-dev/potomac/internal/classify"
	"github.com/potomac-dev/potomac/internal/config"
	"github.com/potomac-dev/potomac/internal/finder"
	"github.com/potomac-dev/potomac/internal/gettext"
	"github.com/potomac-dev/potomac/internal/hostfs"
	"github.com/potomac-dev/potomac/internal/logging"
	"github.com/potomac-dev/potomac/internal/registry"
	"github.com/potomac-dev/potomac/internal/types"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "potomac",
	Short: "Discover and inspect the localization files of themes and plugins",
	Long: `Potomac discovers the gettext localization assets (POT templates, PO
translations, compiled MO files) belonging to the themes and plugins of a
file-hierarchy-based host install, classifies them by text domain and locale,
and reports on their state.

Quick start:
  potomac inspect theme twentynine          Summarize a theme's translations
  potomac check plugin demo/demo.php        Check file and folder permissions
  potomac path theme twentynine fr_FR       Where a new fr_FR file would go
  potomac watch theme twentynine            Re-summarize on directory changes`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .potomac.yml, or POTOMAC_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("POTOMAC_CONFIG_FILE")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// newRegistry wires the standard collaborator implementations into a
// registry using the loaded configuration.
func newRegistry(cfg *config.Config, log *slog.Logger) *registry.Registry {
	classifier := classify.New(nil)
	return registry.New(registry.Options{
		Host:       hostfs.New(cfg.Content.ThemesDir, cfg.Content.PluginsDir),
		Finder:     finder.New(),
		Classifier: classifier,
		Parser:     gettext.New(),
		GlobalBase: cfg.Content.LanguagesDir,
		Logger:     log,
	})
}

// newLogger builds the logger for a command run.
func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(&logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

// parseKind validates the kind argument shared by package commands.
func parseKind(arg string) (types.PackageKind, bool) {
	kind := types.PackageKind(arg)
	return kind, kind.Valid()
}
