package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemas(t *testing.T) {
	data := []byte(`
schemas:
  - name: custom_header
    fields:
      - {name: magic, size: 4}
      - {name: tag, size: 2, kind: uint}
      - {name: payload, size: 16, kind: bytes}
  - name: custom_entry
    fields:
      - {name: id, size: 8}
`)

	schemas, err := ParseSchemas(data)
	require.NoError(t, err)
	require.Len(t, schemas, 2)

	hdr := schemas[0]
	assert.Equal(t, "custom_header", hdr.Name())
	assert.Equal(t, 22, hdr.Size())

	fields := hdr.Fields()
	assert.Equal(t, Uint, fields[0].Kind)
	assert.Equal(t, Uint, fields[1].Kind)
	assert.Equal(t, Bytes, fields[2].Kind)

	assert.Equal(t, "custom_entry", schemas[1].Name())
	assert.Equal(t, 8, schemas[1].Size())
}

func TestParseSchemas_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "unknown kind",
			data: `
schemas:
  - name: bad
    fields:
      - {name: f, size: 4, kind: float}
`,
		},
		{
			name: "zero width",
			data: `
schemas:
  - name: bad
    fields:
      - {name: f, size: 0}
`,
		},
		{
			name: "scalar too wide",
			data: `
schemas:
  - name: bad
    fields:
      - {name: f, size: 12}
`,
		},
		{
			name: "not yaml",
			data: `{{`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSchemas([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSchemas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas.yaml")
	data := []byte(`
schemas:
  - name: from_disk
    fields:
      - {name: a, size: 4}
      - {name: b, size: 4}
`)
	require.NoError(t, os.WriteFile(path, data, 0600))

	schemas, err := LoadSchemas(path)
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "from_disk", schemas[0].Name())
	assert.Equal(t, 8, schemas[0].Size())
}

func TestLoadSchemas_MissingFile(t *testing.T) {
	_, err := LoadSchemas(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
