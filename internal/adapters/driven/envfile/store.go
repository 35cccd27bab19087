package envfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/custodia-labs/update-env/internal/core/domain"
	"github.com/custodia-labs/update-env/internal/core/ports/driven"
	"github.com/custodia-labs/update-env/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.EnvStore = (*Store)(nil)

// filePerm is used only when Save creates a new file.
const filePerm = 0o644

// Store is a file-based implementation of driven.EnvStore.
// It holds no state; every call reads or writes the file in full.
type Store struct{}

// NewStore creates a new env file store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the env file at path.
func (s *Store) Load(path string) (*domain.Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("env file %s does not exist, starting empty", path)
			return domain.NewEnv(), nil
		}
		return nil, err
	}

	env := Unmarshal(data)
	logger.Debug("loaded %d entries from %s", env.Len(), path)
	return env, nil
}

// Save overwrites the file at path with env.
func (s *Store) Save(path string, env *domain.Env) error {
	if err := os.WriteFile(path, Marshal(env), filePerm); err != nil {
		return err
	}
	logger.Debug("wrote %d entries to %s", env.Len(), path)
	return nil
}

// Unmarshal parses env file content. It never fails: lines it cannot
// understand are skipped.
func Unmarshal(data []byte) *domain.Env {
	env := domain.NewEnv()

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			logger.Debug("skipping malformed line %d", i+1)
			continue
		}

		env.Set(key, strings.TrimSpace(value))
	}

	return env
}

// Marshal renders env as KEY=VALUE lines in order, followed by a single
// trailing newline. An empty env renders as "\n".
func Marshal(env *domain.Env) []byte {
	entries := env.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
