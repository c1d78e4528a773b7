package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <kind> <handle>",
	Short: "Summarize a package's localization files",
	Long: `Inspect discovers the POT, PO, and MO files belonging to a package and
prints the resulting summary: the canonical template per text domain and
every translation file with its locale, entry count, and translation stats.

Examples:
  potomac inspect theme twentynine
  potomac inspect plugin demo/demo.php --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "yaml", "output format (yaml, json)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	kind, ok := parseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown package kind %q (want theme, plugin, or core)", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := newRegistry(cfg, newLogger(cfg))

	b, ok := reg.Get(args[1], kind)
	if !ok {
		return fmt.Errorf("%s %q not found", kind, args[1])
	}

	meta := b.Summary()
	switch inspectFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(meta)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", inspectFormat)
	}
}
