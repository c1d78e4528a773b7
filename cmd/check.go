package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <kind> <handle>",
	Short: "Check permissions on a package's localization paths",
	Long: `Check reports the permission status of every file and directory involved
in managing a package's translations: the discovered POT and PO files, the
directories holding them, the resolved language directory, and the global
base directory. The exit status is non-zero when any path has a problem.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	problems := 0
	for _, entry := range b.PermissionReport() {
		if entry.Reason == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", entry.Path)
		} else {
			problems++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s (%s)\n", entry.Path, entry.Reason)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d paths have permission problems", problems)
	}
	return nil
}
