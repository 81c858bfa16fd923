// Package testapp builds core.App instances wired to test doubles.
package testapp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/nsp/pkg/config"
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/launcher"
	"github.com/arthur-debert/nsp/pkg/testutil"
	"github.com/arthur-debert/nsp/pkg/types"
)

// Now is the fixed clock of test apps
var Now = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

// Options configures New
type Options struct {
	// Root holds every app directory. Empty means "/nsp".
	Root string
	// FS defaults to an in-memory filesystem
	FS     types.FS
	Runner *testutil.MockRunner
	// Templates are written into the user template directory, keyed by
	// template name
	Templates map[string]map[string]string
	// Configure adjusts the configuration after the test defaults are set
	Configure func(cfg *config.Config)
}

// New creates an app whose projects live in Root/projects and whose
// descriptor storage is Root/storage
func New(t *testing.T, opts Options) *core.App {
	t.Helper()

	if opts.Root == "" {
		opts.Root = "/nsp"
	}
	if opts.FS == nil {
		opts.FS = testutil.NewTestFS()
	}
	if opts.Runner == nil {
		opts.Runner = &testutil.MockRunner{}
	}

	cfg := config.Default()
	cfg.Project.Root = filepath.Join(opts.Root, "projects")
	cfg.Project.Storage = filepath.Join(opts.Root, "storage")
	cfg.Editor.Platform = launcher.PlatformLinux
	if opts.Configure != nil {
		opts.Configure(cfg)
	}

	p := testutil.NewMockPaths(opts.Root)
	for name, tree := range opts.Templates {
		testutil.WriteTree(t, opts.FS, filepath.Join(p.TemplatesDir(), name), tree)
	}

	app, err := core.NewApp(core.Options{
		Config: cfg,
		Paths:  p,
		FS:     opts.FS,
		Runner: opts.Runner,
		Getenv: func(string) string { return "" },
		Now:    func() time.Time { return Now },
	})
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	return app
}
