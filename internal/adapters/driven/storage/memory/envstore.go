// Package memory provides in-memory implementations of driven ports,
// used by service and CLI tests in place of the filesystem.
package memory

import (
	"sync"

	"github.com/custodia-labs/update-env/internal/core/domain"
	"github.com/custodia-labs/update-env/internal/core/ports/driven"
)

// Ensure EnvStore implements the interface.
var _ driven.EnvStore = (*EnvStore)(nil)

// EnvStore is an in-memory implementation of driven.EnvStore.
// Each path maps to an independent copy of an Env, so callers cannot
// mutate stored state without calling Save.
type EnvStore struct {
	mu    sync.RWMutex
	files map[string][]domain.Entry
	saves map[string]int

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error
}

// NewEnvStore creates a new in-memory env store.
func NewEnvStore() *EnvStore {
	return &EnvStore{
		files: make(map[string][]domain.Entry),
		saves: make(map[string]int),
	}
}

// Load returns a copy of the env stored at path, or an empty env.
func (s *EnvStore) Load(path string) (*domain.Env, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}

	env := domain.NewEnv()
	for _, e := range s.files[path] {
		env.Set(e.Key, e.Value)
	}
	return env, nil
}

// Save stores a snapshot of env at path.
func (s *EnvStore) Save(path string, env *domain.Env) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}

	s.files[path] = env.Entries()
	s.saves[path]++
	return nil
}

// Exists reports whether anything was ever saved at path.
func (s *EnvStore) Exists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[path]
	return ok
}

// SaveCount returns how many times Save succeeded for path.
func (s *EnvStore) SaveCount(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves[path]
}
