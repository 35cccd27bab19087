package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/update-env/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the environment file in another format",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

// exportFormat is a flag for the export command.
var exportFormat string

func init() {
	names := make([]string, 0, len(domain.AllExportFormats()))
	var formats strings.Builder
	for _, f := range domain.AllExportFormats() {
		names = append(names, f.String())
		fmt.Fprintf(&formats, "  %-8s %s\n", f.String(), f.Description())
	}
	exportCmd.Long = "Print the environment file in another format.\n\n" +
		"Formats:\n" + formats.String() +
		"\nWithout --format the configured default (defaults.format) is used."
	exportCmd.Flags().StringVarP(&exportFormat, "format", "o", domain.ExportFormatDotenv.String(),
		"Output format ("+strings.Join(names, ", ")+")")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := requireVariableService(); err != nil {
		return err
	}

	out, err := variableService.Export(targetFile(cmd), resolveFormat(cmd))
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	cmd.Print(string(out))
	return nil
}

// resolveFormat returns the --format flag when given, otherwise the
// configured default.
func resolveFormat(cmd *cobra.Command) domain.ExportFormat {
	if cmd.Flags().Changed("format") || settingsService == nil {
		return domain.ExportFormat(exportFormat)
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.ExportFormat(exportFormat)
	}
	return settings.Format
}
