package reveal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/filesystem"
	"github.com/arthur-debert/nsp/pkg/testutil"
	"github.com/arthur-debert/nsp/pkg/testutil/testapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealTemplates(t *testing.T) {
	root := t.TempDir()
	runner := &testutil.MockRunner{}
	app := testapp.New(t, testapp.Options{Root: root, FS: filesystem.NewOS(), Runner: runner})

	dir, err := RevealTemplates(app)
	require.NoError(t, err)

	want := filepath.Join(root, "data", "templates")
	assert.Equal(t, want, dir)
	info, err := os.Stat(want)
	require.NoError(t, err, "template directory is created")
	assert.True(t, info.IsDir())
	assert.Equal(t, []string{"xdg-open " + want}, runner.Commands())
}

func TestRevealProjects(t *testing.T) {
	runner := &testutil.MockRunner{}
	app := testapp.New(t, testapp.Options{Runner: runner})

	_, err := RevealProjects(app)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Empty(t, runner.Started)

	require.NoError(t, app.FS.MkdirAll("/nsp/projects", 0755))
	dir, err := RevealProjects(app)
	require.NoError(t, err)
	assert.Equal(t, "/nsp/projects", dir)
	assert.Equal(t, []string{"xdg-open /nsp/projects"}, runner.Commands())
}

func TestRevealProjectsNoFileManager(t *testing.T) {
	runner := &testutil.MockRunner{Missing: []string{"xdg-open"}}
	app := testapp.New(t, testapp.Options{Runner: runner})
	require.NoError(t, app.FS.MkdirAll("/nsp/projects", 0755))

	_, err := RevealProjects(app)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLaunchNotFound))
}
