package driven

import "context"

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after the file
	// at path is created, written, replaced or removed.
	// Returns nil when ctx is cancelled.
	Watch(ctx context.Context, path string, onChange func()) error
}
