package domain

const unknownDescription = "Unknown"

// DefaultEnvFile is the env file used when none is given.
const DefaultEnvFile = ".env"

// ExportFormat identifies an output format for the export command.
type ExportFormat string

// Available export formats.
const (
	// ExportFormatDotenv writes KEY=VALUE lines, same as the env file itself.
	ExportFormatDotenv ExportFormat = "dotenv"

	// ExportFormatJSON writes a single JSON object.
	ExportFormatJSON ExportFormat = "json"

	// ExportFormatYAML writes a YAML mapping.
	ExportFormatYAML ExportFormat = "yaml"

	// ExportFormatTOML writes a TOML table.
	ExportFormatTOML ExportFormat = "toml"
)

// IsValid returns true if the export format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatDotenv, ExportFormatJSON, ExportFormatYAML, ExportFormatTOML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f ExportFormat) Description() string {
	switch f {
	case ExportFormatDotenv:
		return "dotenv (KEY=VALUE lines)"
	case ExportFormatJSON:
		return "JSON object"
	case ExportFormatYAML:
		return "YAML mapping"
	case ExportFormatTOML:
		return "TOML table"
	default:
		return unknownDescription
	}
}

// AllExportFormats returns all available export formats.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{
		ExportFormatDotenv,
		ExportFormatJSON,
		ExportFormatYAML,
		ExportFormatTOML,
	}
}

// Settings holds the tool defaults read from the config file.
type Settings struct {
	// File is the env file used when --file is not given.
	File string

	// Format is the export format used when --format is not given.
	Format ExportFormat

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		File:    DefaultEnvFile,
		Format:  ExportFormatDotenv,
		Verbose: false,
	}
}
