package driven

import "github.com/custodia-labs/update-env/internal/core/domain"

// EnvStore translates between an env file on disk and a domain.Env.
// Every call works on the whole file; nothing is cached between calls.
type EnvStore interface {
	// Load reads the env file at path.
	// A missing file yields an empty Env, not an error.
	Load(path string) (*domain.Env, error)

	// Save overwrites the file at path with the contents of env.
	Save(path string, env *domain.Env) error
}
