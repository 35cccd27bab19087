package driven

import "github.com/custodia-labs/update-env/internal/core/domain"

// Exporter renders an env in one of the supported export formats.
type Exporter interface {
	// Export encodes env in the given format.
	// Returns domain.ErrUnsupportedFormat for unknown formats.
	Export(env *domain.Env, format domain.ExportFormat) ([]byte, error)
}
