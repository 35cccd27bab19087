package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/update-env/internal/core/domain"
	"github.com/custodia-labs/update-env/internal/core/ports/driven"
	"github.com/custodia-labs/update-env/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDefaultFile   = "defaults.file"
	KeyDefaultFormat = "defaults.format"
	KeyLogVerbose    = "log.verbose"
)

// SettingsService manages the tool defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or invalid values fall back to
// the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		File:    defaults.File,
		Format:  defaults.Format,
		Verbose: s.configStore.GetBool(KeyLogVerbose),
	}

	if file := s.configStore.GetString(KeyDefaultFile); file != "" {
		settings.File = file
	}
	if format := domain.ExportFormat(s.configStore.GetString(KeyDefaultFormat)); format.IsValid() {
		settings.Format = format
	}

	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case KeyDefaultFile:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		stored = value
	case KeyDefaultFormat:
		if !domain.ExportFormat(value).IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, value)
		}
		stored = value
	case KeyLogVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = b
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyDefaultFile, KeyDefaultFormat, KeyLogVerbose}
}

// Path returns the config file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
