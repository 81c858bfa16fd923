package templates

import (
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		ManifestFile: `
description = "Demo template"

[variables]
license = "MIT"
year_started = 2024
private = false
`,
	})

	m, err := LoadManifest(fsys, "/tpl")
	require.NoError(t, err)
	assert.Equal(t, "Demo template", m.Description)

	defaults, err := m.Defaults()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"license":      "MIT",
		"year_started": "2024",
		"private":      "false",
	}, defaults)
}

func TestLoadManifestMissing(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, fsys.MkdirAll("/tpl", 0755))

	m, err := LoadManifest(fsys, "/tpl")
	require.NoError(t, err)
	assert.Empty(t, m.Description)

	defaults, err := m.Defaults()
	require.NoError(t, err)
	assert.Empty(t, defaults)
}

func TestLoadManifestInvalid(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{ManifestFile: "description = [unclosed"})

	_, err := LoadManifest(fsys, "/tpl")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
}

func TestManifestDefaultsRejectsTables(t *testing.T) {
	m := &Manifest{Variables: map[string]interface{}{
		"ok":     "x",
		"nested": map[string]interface{}{"a": 1},
	}}
	_, err := m.Defaults()
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
	assert.Equal(t, "nested", errors.GetErrorDetails(err)["variable"])
}
