package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potomac-dev/potomac/internal/classify"
)

var pathDomain string

var pathCmd = &cobra.Command{
	Use:   "path <kind> <handle> <locale>",
	Short: "Print where a new translation file would be created",
	Long: `Path resolves the directory and filename a new PO file for the given
locale would be created at, honoring the package's existing naming
conventions and preferring writable locations.

Examples:
  potomac path theme twentynine fr_FR
  potomac path plugin demo/demo.php pt_BR --domain demo`,
	Args: cobra.ExactArgs(3),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().StringVar(&pathDomain, "domain", "", "text domain (defaults to the package's own)")
}

func runPath(cmd *cobra.Command, args []string) error {
	kind, ok := parseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown package kind %q (want theme, plugin, or core)", args[0])
	}

	loc, ok := classify.NewLocaleResolver().Resolve(args[2])
	if !ok {
		return fmt.Errorf("unrecognized locale code %q", args[2])
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

	fmt.Fprintln(cmd.OutOrStdout(), b.BuildTranslationPath(loc, pathDomain))
	return nil
}
