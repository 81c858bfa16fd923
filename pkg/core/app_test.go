package core

import (
	"testing"

	"github.com/arthur-debert/nsp/pkg/config"
	"github.com/arthur-debert/nsp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	fsys := testutil.NewTestFS()
	p := testutil.NewMockPaths("/nsp")
	testutil.WriteTree(t, fsys, p.TemplatesDir(), map[string]string{"demo/a.txt": "a"})
	testutil.WriteTree(t, fsys, "/shared", map[string]string{"web/index.html": ""})

	cfg := config.Default()
	cfg.Templates.Paths = []string{"/shared"}
	cfg.Editor.Platform = "linux"

	app, err := NewApp(Options{
		Config: cfg,
		Paths:  p,
		FS:     fsys,
		Getenv: func(string) string { return "" },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/nsp/data/templates", "/shared"}, app.Catalog.Roots())
	names, err := app.Catalog.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"demo", "web"}, names)

	assert.Equal(t, "/nsp/data/templates", app.Installer.Root())
	assert.Equal(t, "subl", app.Launcher.Executable())

	packages, err := app.Vars.Get(VarPackagesPath)
	require.NoError(t, err)
	assert.Equal(t, "/nsp/data", packages)
}

func TestNewAppLoadsConfig(t *testing.T) {
	_, err := NewApp(Options{
		ConfigPath: "/definitely/missing/config.toml",
		Paths:      testutil.NewMockPaths("/nsp"),
		FS:         testutil.NewTestFS(),
	})
	require.Error(t, err)
}

func TestMaterializeOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Templates.Ignore = []string{"NOTES.txt"}
	cfg.Markers.Project = ".code-project"

	app := &App{Config: cfg}
	opts := app.MaterializeOptions()

	assert.Equal(t, ".code-project", opts.Markers.Project)
	assert.Equal(t, ".sublime-workspace", opts.Markers.Workspace)
	assert.Equal(t, []string{"NOTES.txt", ".nsp.toml"}, opts.Ignore, "the manifest is always ignored")
	assert.Equal(t, cfg.Permissions.File, opts.FileMode)
	assert.Equal(t, []string{"NOTES.txt"}, cfg.Templates.Ignore, "config is not mutated")
}
