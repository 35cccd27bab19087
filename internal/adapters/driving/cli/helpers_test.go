package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/update-env/internal/adapters/driven/envfile"
	"github.com/custodia-labs/update-env/internal/adapters/driven/export"
	"github.com/custodia-labs/update-env/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/update-env/internal/core/ports/driven"
	"github.com/custodia-labs/update-env/internal/core/ports/driving"
	"github.com/custodia-labs/update-env/internal/core/services"
)

// stubWatcher fires onChange a fixed number of times and returns.
type stubWatcher struct {
	fires int
}

func (w *stubWatcher) Watch(_ context.Context, _ string, onChange func()) error {
	for i := 0; i < w.fires; i++ {
		onChange()
	}
	return nil
}

// testEnv is the state set up for a single CLI test.
type testEnv struct {
	// path is an env file inside a fresh temp dir; it does not exist yet.
	path        string
	configStore *memory.ConfigStore
}

// setupTestServices wires real file-backed services and an in-memory
// config store, and restores the package state when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	return setupTestServicesWithWatcher(t, nil)
}

func setupTestServicesWithWatcher(t *testing.T, watcher driven.FileWatcher) *testEnv {
	t.Helper()

	env := &testEnv{
		path:        filepath.Join(t.TempDir(), ".env"),
		configStore: memory.NewConfigStore(),
	}

	SetDependencies(Dependencies{
		VariableService: services.NewVariableService(envfile.NewStore(), export.NewExporter(), watcher),
		OpenSettings: func(string) (driving.SettingsService, error) {
			return services.NewSettingsService(env.configStore), nil
		},
	})
	t.Cleanup(func() { SetDependencies(Dependencies{}) })

	return env
}

// resetFlags restores every flag to its default so values do not leak
// between tests through the package-level command tree. SilenceUsage is
// cleared too since setup turns it on for the command that ran.
func resetFlags(cmd *cobra.Command) {
	cmd.SilenceUsage = false
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCommand executes rootCmd with args and returns everything written
// to stdout and stderr.
func runCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCommand(t, strings.NewReader(""), args...)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
