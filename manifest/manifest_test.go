package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raywall/envconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
fields:
  - key: DB_HOST
    field: db_host
    type: string
  - key: DB_PORT
    field: db_port
    type: int
  - key: REQUEST_TIMEOUT
    field: request_timeout
    type: duration
`

func TestParse(t *testing.T) {
	schema, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	src := envconf.MapSource{
		"DB_HOST":         "db.example.com",
		"DB_PORT":         "5432",
		"REQUEST_TIMEOUT": "500ms",
	}

	loader, err := schema.Compile(envconf.WithSource(src))
	require.NoError(t, err)

	rec, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"db_host", "db_port", "request_timeout"}, rec.Fields())
	assert.Equal(t, "db.example.com", rec.String("db_host"))
	assert.Equal(t, 5432, rec.Int("db_port"))
	assert.Equal(t, 500*time.Millisecond, rec.Duration("request_timeout"))
}

func TestParse_UnknownType(t *testing.T) {
	doc := `
fields:
  - key: DB_HOST
    field: db_host
    type: hostname
`
	_, err := Parse([]byte(doc))

	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "db_host", unknown.Field)
	assert.Equal(t, "hostname", unknown.Type)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("fields: [broken"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid yaml")
}

func TestParse_MissingKeyStillShortCircuits(t *testing.T) {
	schema, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	loader, err := schema.Compile(envconf.WithSource(envconf.MapSource{}))
	require.NoError(t, err)

	_, err = loader.Load()

	var missing *envconf.MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "DB_HOST", missing.Key)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	schema, err := ParseFile(path)
	require.NoError(t, err)

	loader, err := schema.Compile(envconf.WithSource(envconf.MapSource{
		"DB_HOST":         "localhost",
		"DB_PORT":         "5432",
		"REQUEST_TIMEOUT": "2s",
	}))
	require.NoError(t, err)

	rec, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", rec.String("db_host"))
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
