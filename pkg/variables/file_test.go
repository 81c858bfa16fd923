package variables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	vars, err := ParseAssignments([]string{"author=Jane Doe", "empty=", "eq=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"author": "Jane Doe", "empty": "", "eq": "a=b"}, vars)

	for _, bad := range []string{"novalue", "=x", "bad name=x"} {
		_, err := ParseAssignments([]string{bad})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "assignment %q", bad)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "vars.yaml")
		require.NoError(t, os.WriteFile(path, []byte("author: Jane\nyear: 2024\nlicense: MIT\n"), 0644))

		vars, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"author": "Jane", "year": "2024", "license": "MIT"}, vars)
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(dir, "vars.toml")
		require.NoError(t, os.WriteFile(path, []byte("author = \"Jane\"\npublic = true\n"), 0644))

		vars, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"author": "Jane", "public": "true"}, vars)
	})

	t.Run("nested values are rejected", func(t *testing.T) {
		path := filepath.Join(dir, "nested.yaml")
		require.NoError(t, os.WriteFile(path, []byte("outer:\n  inner: x\n"), 0644))

		_, err := LoadFile(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileIO))
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := filepath.Join(dir, "vars.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		_, err := LoadFile(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
