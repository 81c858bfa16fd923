package core

import (
	"os"
	"time"

	"github.com/arthur-debert/nsp/pkg/config"
	"github.com/arthur-debert/nsp/pkg/filesystem"
	"github.com/arthur-debert/nsp/pkg/launcher"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/materialize"
	"github.com/arthur-debert/nsp/pkg/paths"
	"github.com/arthur-debert/nsp/pkg/templates"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/nsp/pkg/variables"
)

// Options configures NewApp. Zero values use the real system.
type Options struct {
	// ConfigPath is an explicit config file; empty means the default one
	ConfigPath string
	// Config skips loading when set
	Config *config.Config
	Paths  paths.Paths
	FS     types.FS
	Runner launcher.Runner
	Getenv func(string) string
	Now    func() time.Time
}

// App holds the collaborators shared by all commands
type App struct {
	Config    *config.Config
	Paths     paths.Paths
	FS        types.FS
	Vars      *variables.Registry
	Catalog   *templates.Catalog
	Installer *templates.Installer
	Launcher  *launcher.Launcher
	Now       func() time.Time
}

// NewApp loads configuration and builds the shared collaborators
func NewApp(opts Options) (*App, error) {
	logger := logging.GetLogger("core.app")

	if opts.Paths == nil {
		opts.Paths = paths.New()
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = opts.Getenv(paths.EnvHome)
	}

	vars := variables.New()
	if err := RegisterDefaults(vars, Environment{
		DataDir:      opts.Paths.DataDir(),
		TemplatesDir: opts.Paths.TemplatesDir(),
		Home:         home,
		Getenv:       opts.Getenv,
		Now:          opts.Now,
	}); err != nil {
		return nil, err
	}

	roots := append([]string{opts.Paths.TemplatesDir()}, cfg.TemplatePaths()...)

	app := &App{
		Config:    cfg,
		Paths:     opts.Paths,
		FS:        opts.FS,
		Vars:      vars,
		Catalog:   templates.NewCatalog(opts.FS, roots...),
		Installer: templates.NewInstaller(opts.Paths.TemplatesDir()),
		Launcher: launcher.New(launcher.Options{
			Executable: cfg.Editor.Executable,
			Platform:   cfg.Editor.Platform,
			Runner:     opts.Runner,
			FS:         opts.FS,
			Getenv:     opts.Getenv,
		}),
		Now: opts.Now,
	}

	logger.Debug().
		Str("config", cfg.Source).
		Strs("templateRoots", roots).
		Msg("App initialized")
	return app, nil
}

// MaterializeOptions translates the configuration for the materializer
func (a *App) MaterializeOptions() materialize.Options {
	ignore := a.Config.Templates.Ignore
	if !contains(ignore, templates.ManifestFile) {
		ignore = append(append([]string{}, ignore...), templates.ManifestFile)
	}
	return materialize.Options{
		Markers: materialize.Markers{
			Project:   a.Config.Markers.Project,
			Workspace: a.Config.Markers.Workspace,
		},
		Ignore:   ignore,
		DirMode:  a.Config.Permissions.Directory,
		FileMode: a.Config.Permissions.File,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
