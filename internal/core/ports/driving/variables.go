package driving

import (
	"context"

	"github.com/custodia-labs/update-env/internal/core/domain"
)

// VariableService manages the variables stored in an env file.
// Each call loads the file, applies the operation and, for mutations,
// writes the whole file back.
type VariableService interface {
	// Set stores value under key, updating it in place if it exists.
	Set(path, key, value string) error

	// Get returns the value of key and whether it was found.
	// A missing key is not an error.
	Get(path, key string) (string, bool, error)

	// List returns every entry in file order.
	List(path string) ([]domain.Entry, error)

	// Delete removes key. It returns false, and does not touch the file,
	// when the key is absent.
	Delete(path, key string) (bool, error)

	// Export renders the file in the given format.
	Export(path string, format domain.ExportFormat) ([]byte, error)

	// Watch calls fn with the current entries, then again after every
	// change to the file, until ctx is cancelled.
	Watch(ctx context.Context, path string, fn func([]domain.Entry)) error
}
