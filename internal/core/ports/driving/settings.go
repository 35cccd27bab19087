package driving

import "github.com/custodia-labs/update-env/internal/core/domain"

// SettingsService manages the tool defaults.
type SettingsService interface {
	// Get retrieves the current settings, filling in defaults.
	Get() (*domain.Settings, error)

	// Set validates and persists a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns the location of the config file.
	Path() string
}
