package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/update-env/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the environment variables whenever the file changes",
	Long: `Print the environment variables, then print them again every time the
file is written, replaced or removed. Runs until interrupted (Ctrl+C).`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := requireVariableService(); err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := targetFile(cmd)
	first := true
	err := variableService.Watch(ctx, path, func(entries []domain.Entry) {
		if !first {
			cmd.Println()
			cmd.Printf("[%s] %s changed\n", time.Now().Format("15:04:05"), path)
		}
		first = false
		printEntries(cmd, entries)
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return nil
}
