package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/potomac-dev/potomac/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <kind> <handle>",
	Short: "Watch a package's directories and re-summarize on change",
	Long: `Watch observes every directory the package's localization files were
discovered in and prints a fresh summary whenever something changes. Useful
while editing translations out-of-band. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before reacting to changes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	kind, ok := parseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown package kind %q (want theme, plugin, or core)", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	reg := newRegistry(cfg, log)

	b, ok := reg.Get(args[1], kind)
	if !ok {
		return fmt.Errorf("%s %q not found", kind, args[1])
	}

	w, err := watcher.New(watchDebounce, log)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s %s (%d directories)\n", kind, args[1], len(b.Watches()))

	err = w.Watch(ctx, b, func(changed []string) {
		reg.Uncache(b)
		fresh, ok := reg.Get(args[1], kind)
		if !ok {
			log.Warn("package disappeared", "kind", kind, "handle", args[1])
			return
		}
		b = fresh
		meta := fresh.Summary()
		fmt.Fprintf(cmd.OutOrStdout(), "%s changed: %d files, %d templates, %d translations\n",
			changed[0], fresh.FileCount(), len(meta.Templates), len(meta.Translations))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
