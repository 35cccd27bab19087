// Package export renders env files in other formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/update-env/internal/adapters/driven/envfile"
	"github.com/custodia-labs/update-env/internal/core/domain"
	"github.com/custodia-labs/update-env/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

// Exporter implements driven.Exporter.
// JSON and YAML output keep file order; TOML tables are sorted by key.
type Exporter struct{}

// NewExporter creates a new exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export encodes env in the given format.
func (x *Exporter) Export(env *domain.Env, format domain.ExportFormat) ([]byte, error) {
	switch format {
	case domain.ExportFormatDotenv:
		return envfile.Marshal(env), nil
	case domain.ExportFormatJSON:
		return exportJSON(env)
	case domain.ExportFormatYAML:
		return exportYAML(env)
	case domain.ExportFormatTOML:
		return exportTOML(env)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// exportJSON writes the object by hand since encoding/json sorts map keys.
func exportJSON(env *domain.Env) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, e := range env.Entries() {
		if i > 0 {
			compact.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		compact.Write(k)
		compact.WriteByte(':')
		compact.Write(v)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func exportYAML(env *domain.Env) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range env.Entries() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func exportTOML(env *domain.Env) ([]byte, error) {
	values := make(map[string]string, env.Len())
	for _, e := range env.Entries() {
		values[e.Key] = e.Value
	}
	return toml.Marshal(values)
}
