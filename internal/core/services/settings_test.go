package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/update-env/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/update-env/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("defaults.file", "deploy/.env")
	_ = store.Set("defaults.format", "yaml")
	_ = store.Set("log.verbose", true)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "deploy/.env", settings.File)
	assert.Equal(t, domain.ExportFormatYAML, settings.Format)
	assert.True(t, settings.Verbose)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("defaults.format", "xml")
	_ = store.Set("log.verbose", "yes")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatDotenv, settings.Format)
	assert.False(t, settings.Verbose)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		stored  any
		wantErr error
	}{
		{
			name:   "Default file",
			key:    KeyDefaultFile,
			value:  ".env.local",
			stored: ".env.local",
		},
		{
			name:    "Empty default file",
			key:     KeyDefaultFile,
			value:   "",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:   "Default format",
			key:    KeyDefaultFormat,
			value:  "toml",
			stored: "toml",
		},
		{
			name:    "Unknown format",
			key:     KeyDefaultFormat,
			value:   "xml",
			wantErr: domain.ErrUnsupportedFormat,
		},
		{
			name:   "Verbose true",
			key:    KeyLogVerbose,
			value:  "true",
			stored: true,
		},
		{
			name:   "Verbose zero",
			key:    KeyLogVerbose,
			value:  "0",
			stored: false,
		},
		{
			name:    "Verbose not a bool",
			key:     KeyLogVerbose,
			value:   "sometimes",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "Unknown key",
			key:     "search.mode",
			value:   "hybrid",
			wantErr: domain.ErrUnknownSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, ok := store.Get(tt.key)
				assert.False(t, ok, "invalid values must not be stored")
				return
			}
			require.NoError(t, err)
			val, ok := store.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.stored, val)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, []string{"defaults.file", "defaults.format", "log.verbose"}, service.Keys())
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, ":memory:", service.Path())
}
