package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/update-env/internal/core/domain"
	"github.com/custodia-labs/update-env/internal/core/ports/driven"
	"github.com/custodia-labs/update-env/internal/core/ports/driving"
	"github.com/custodia-labs/update-env/internal/logger"
)

// Ensure VariableService implements the interface.
var _ driving.VariableService = (*VariableService)(nil)

// VariableService manages the variables in an env file.
type VariableService struct {
	store    driven.EnvStore
	exporter driven.Exporter    // Optional: required only by Export
	watcher  driven.FileWatcher // Optional: required only by Watch
}

// NewVariableService creates a new variable service.
// exporter and watcher may be nil.
func NewVariableService(
	store driven.EnvStore,
	exporter driven.Exporter,
	watcher driven.FileWatcher,
) *VariableService {
	return &VariableService{
		store:    store,
		exporter: exporter,
		watcher:  watcher,
	}
}

// Set stores value under key and rewrites the file.
func (s *VariableService) Set(path, key, value string) error {
	abs, env, err := s.load(path)
	if err != nil {
		return err
	}

	env.Set(key, value)

	if err := s.store.Save(abs, env); err != nil {
		return fmt.Errorf("save %s: %w", abs, err)
	}
	logger.Info("set %s in %s", key, abs)
	return nil
}

// Get returns the value of key and whether it exists.
func (s *VariableService) Get(path, key string) (string, bool, error) {
	_, env, err := s.load(path)
	if err != nil {
		return "", false, err
	}

	value, ok := env.Get(key)
	return value, ok, nil
}

// List returns all entries in file order.
func (s *VariableService) List(path string) ([]domain.Entry, error) {
	_, env, err := s.load(path)
	if err != nil {
		return nil, err
	}
	return env.Entries(), nil
}

// Delete removes key and rewrites the file. When key is absent it returns
// false and the file is left untouched.
func (s *VariableService) Delete(path, key string) (bool, error) {
	abs, env, err := s.load(path)
	if err != nil {
		return false, err
	}

	if !env.Delete(key) {
		logger.Debug("%s not present in %s, nothing to delete", key, abs)
		return false, nil
	}

	if err := s.store.Save(abs, env); err != nil {
		return false, fmt.Errorf("save %s: %w", abs, err)
	}
	logger.Info("deleted %s from %s", key, abs)
	return true, nil
}

// Export renders the file in the given format.
func (s *VariableService) Export(path string, format domain.ExportFormat) ([]byte, error) {
	if s.exporter == nil {
		return nil, errors.New("exporter not configured")
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	abs, env, err := s.load(path)
	if err != nil {
		return nil, err
	}

	out, err := s.exporter.Export(env, format)
	if err != nil {
		return nil, fmt.Errorf("export %s as %s: %w", abs, format, err)
	}
	return out, nil
}

// Watch calls fn with the current entries and then after every change to
// the file, until ctx is cancelled. A reload that fails after watching
// has started is logged and skipped.
func (s *VariableService) Watch(ctx context.Context, path string, fn func([]domain.Entry)) error {
	if s.watcher == nil {
		return errors.New("watcher not configured")
	}

	abs, env, err := s.load(path)
	if err != nil {
		return err
	}
	fn(env.Entries())

	return s.watcher.Watch(ctx, abs, func() {
		_, env, err := s.load(abs)
		if err != nil {
			logger.Warn("reload after change failed: %v", err)
			return
		}
		fn(env.Entries())
	})
}

// load resolves path to an absolute path and reads the env stored there.
func (s *VariableService) load(path string) (string, *domain.Env, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	env, err := s.store.Load(abs)
	if err != nil {
		return "", nil, fmt.Errorf("load %s: %w", abs, err)
	}
	return abs, env, nil
}
