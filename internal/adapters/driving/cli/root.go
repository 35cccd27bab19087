// Package cli implements the update-env command line using cobra.
//
// Commands print user-facing results with cmd.Printf so tests can capture
// them with SetOut. Failures are returned from RunE; cobra prints them
// and Execute reports them to main for the exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/update-env/internal/core/domain"
	"github.com/custodia-labs/update-env/internal/core/ports/driving"
	"github.com/custodia-labs/update-env/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "1.0.0"

// SettingsOpener opens the settings stored in configDir.
// An empty configDir selects the default location.
type SettingsOpener func(configDir string) (driving.SettingsService, error)

// Dependencies holds the services the commands run against.
type Dependencies struct {
	VariableService driving.VariableService
	OpenSettings    SettingsOpener
}

var (
	variableService driving.VariableService
	openSettings    SettingsOpener

	// settingsService is opened once flags are parsed, in PersistentPreRunE.
	settingsService driving.SettingsService
)

// Global flags.
var (
	envFile   string
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:     "update-env",
	Short:   "CLI utility for managing environment variables",
	Version: version,
	Long: `update-env reads, modifies and writes KEY=VALUE environment files.

Each command loads the file, applies one change and writes the whole file
back. Comments and blank lines are not preserved when the file is rewritten.`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "file", "f", domain.DefaultEnvFile, "Environment file path")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.update-env)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug logs to stderr")
}

// SetDependencies sets the services used by the commands.
func SetDependencies(deps Dependencies) {
	variableService = deps.VariableService
	openSettings = deps.OpenSettings
	settingsService = nil
}

// Execute runs the root command with output on stdout.
func Execute(ctx context.Context, deps Dependencies) error {
	SetDependencies(deps)
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// setup opens settings and configures logging before any command runs.
// Only the config commands need settings; the others fall back to the
// built-in defaults when the config file cannot be read.
func setup(cmd *cobra.Command, _ []string) error {
	// Arguments are valid at this point; later errors are not usage errors.
	cmd.SilenceUsage = true

	logger.SetVerbose(verbose)
	settingsService = nil

	if openSettings == nil {
		return nil
	}
	svc, err := openSettings(configDir)
	if err != nil {
		if isConfigCommand(cmd) {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		logger.Warn("ignoring config: %v", err)
		return nil
	}

	settings, err := svc.Get()
	if err != nil {
		if isConfigCommand(cmd) {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		logger.Warn("ignoring config: %v", err)
		return nil
	}
	settingsService = svc

	if settings.Verbose {
		logger.SetVerbose(true)
	}
	logger.Debug("config file: %s", settingsService.Path())
	return nil
}

// isConfigCommand reports whether cmd is config or one of its subcommands.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// targetFile returns the env file for cmd: the --file flag when given,
// otherwise the configured default.
func targetFile(cmd *cobra.Command) string {
	if cmd.Flags().Changed("file") || settingsService == nil {
		return envFile
	}
	settings, err := settingsService.Get()
	if err != nil || settings.File == "" {
		return envFile
	}
	return settings.File
}

func requireVariableService() error {
	if variableService == nil {
		return errors.New("variable service not configured")
	}
	return nil
}

func printEntries(cmd *cobra.Command, entries []domain.Entry) {
	if len(entries) == 0 {
		cmd.Println("No environment variables found.")
		return
	}

	cmd.Println("Environment variables:")
	for _, e := range entries {
		cmd.Println(e.String())
	}
}
