// Command update-env manages KEY=VALUE environment files.
package main

import (
	"context"
	"os"

	"github.com/custodia-labs/update-env/internal/adapters/driven/config/file"
	"github.com/custodia-labs/update-env/internal/adapters/driven/envfile"
	"github.com/custodia-labs/update-env/internal/adapters/driven/export"
	"github.com/custodia-labs/update-env/internal/adapters/driven/watch"
	"github.com/custodia-labs/update-env/internal/adapters/driving/cli"
	"github.com/custodia-labs/update-env/internal/core/ports/driving"
	"github.com/custodia-labs/update-env/internal/core/services"
)

func main() {
	variableService := services.NewVariableService(
		envfile.NewStore(),
		export.NewExporter(),
		watch.NewWatcher(watch.DefaultDebounce),
	)

	deps := cli.Dependencies{
		VariableService: variableService,
		OpenSettings:    openSettings,
	}

	// cobra has already printed the error.
	if err := cli.Execute(context.Background(), deps); err != nil {
		os.Exit(1)
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}
