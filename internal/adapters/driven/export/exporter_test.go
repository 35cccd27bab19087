package export

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/update-env/internal/core/domain"
)

func sampleEnv() *domain.Env {
	env := domain.NewEnv()
	env.Set("ZED", "last-alphabetically")
	env.Set("API_URL", "https://example.com/?a=b")
	env.Set("DEBUG", "true")
	env.Set("EMPTY", "")
	env.Set("QUOTE", `say "hi"`)
	return env
}

func sampleMap() map[string]string {
	return map[string]string{
		"ZED":     "last-alphabetically",
		"API_URL": "https://example.com/?a=b",
		"DEBUG":   "true",
		"EMPTY":   "",
		"QUOTE":   `say "hi"`,
	}
}

func TestExporter_Dotenv(t *testing.T) {
	out, err := NewExporter().Export(sampleEnv(), domain.ExportFormatDotenv)

	require.NoError(t, err)
	assert.Equal(t,
		"ZED=last-alphabetically\nAPI_URL=https://example.com/?a=b\nDEBUG=true\nEMPTY=\nQUOTE=say \"hi\"\n",
		string(out))
}

func TestExporter_JSON(t *testing.T) {
	out, err := NewExporter().Export(sampleEnv(), domain.ExportFormatJSON)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ZED": "last-alphabetically",
		"API_URL": "https://example.com/?a=b",
		"DEBUG": "true",
		"EMPTY": "",
		"QUOTE": "say \"hi\""
	}`, string(out))
}

func TestExporter_JSONKeepsOrder(t *testing.T) {
	out, err := NewExporter().Export(sampleEnv(), domain.ExportFormatJSON)

	require.NoError(t, err)
	s := string(out)
	assert.Less(t, strings.Index(s, `"ZED"`), strings.Index(s, `"API_URL"`))
	assert.True(t, strings.HasSuffix(s, "}\n"))
}

func TestExporter_JSONEmpty(t *testing.T) {
	out, err := NewExporter().Export(domain.NewEnv(), domain.ExportFormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}

func TestExporter_YAML(t *testing.T) {
	out, err := NewExporter().Export(sampleEnv(), domain.ExportFormatYAML)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, sampleMap(), decoded)

	// Values that look like booleans stay strings.
	var untyped map[string]any
	require.NoError(t, yaml.Unmarshal(out, &untyped))
	assert.Equal(t, "true", untyped["DEBUG"])
}

func TestExporter_YAMLKeepsOrder(t *testing.T) {
	out, err := NewExporter().Export(sampleEnv(), domain.ExportFormatYAML)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "ZED: last-alphabetically\n"))
}

func TestExporter_TOML(t *testing.T) {
	out, err := NewExporter().Export(sampleEnv(), domain.ExportFormatTOML)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, toml.Unmarshal(out, &decoded))
	assert.Equal(t, sampleMap(), decoded)
}

func TestExporter_TOMLKeyWithSpace(t *testing.T) {
	env := domain.NewEnv()
	env.Set("MY KEY", "v")

	out, err := NewExporter().Export(env, domain.ExportFormatTOML)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, toml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]string{"MY KEY": "v"}, decoded)
}

func TestExporter_UnsupportedFormat(t *testing.T) {
	_, err := NewExporter().Export(sampleEnv(), domain.ExportFormat("xml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "xml")
}
