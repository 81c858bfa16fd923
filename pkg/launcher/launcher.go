package launcher

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/filesystem"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/paths"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/rs/zerolog"
)

// Platform names
const (
	PlatformWindows = "windows"
	PlatformDarwin  = "darwin"
	PlatformLinux   = "linux"
)

// Executable names
const (
	windowsInstallGlob   = "Sublime Text*"
	windowsCLIExecutable = "subl.exe"
	windowsGUIExecutable = "sublime_text.exe"
	unixExecutable       = "subl"
)

// Options configures a Launcher. Zero values use the running system.
type Options struct {
	// Executable is the configured editor path
	Executable string
	// Platform overrides runtime.GOOS for discovery and reveal
	Platform string

	Runner Runner
	FS     types.FS
	Getenv func(string) string
	Glob   func(pattern string) ([]string, error)
}

// Launcher opens paths in the editor
type Launcher struct {
	opts       Options
	executable string
	logger     zerolog.Logger
}

// New creates a launcher and discovers the editor executable
func New(opts Options) *Launcher {
	if opts.Platform == "" {
		opts.Platform = runtime.GOOS
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Glob == nil {
		opts.Glob = filepath.Glob
	}

	l := &Launcher{opts: opts, logger: logging.GetLogger("launcher")}
	l.executable = l.discover()
	l.logger.Debug().
		Str("platform", opts.Platform).
		Str("executable", l.executable).
		Msg("Editor executable resolved")
	return l
}

// Executable returns the editor executable that Open runs
func (l *Launcher) Executable() string {
	return l.executable
}

// Platform returns the platform used for discovery
func (l *Launcher) Platform() string {
	return l.opts.Platform
}

func (l *Launcher) discover() string {
	if configured := paths.ExpandHome(l.opts.Executable); configured != "" {
		if l.isFile(configured) {
			return configured
		}
		l.logger.Warn().Str("executable", configured).Msg("Configured editor not found, discovering")
	}

	if l.opts.Platform != PlatformWindows {
		return unixExecutable
	}

	for _, env := range []string{"ProgramW6432", "ProgramFiles"} {
		base := l.opts.Getenv(env)
		if base == "" {
			continue
		}
		matches, err := l.opts.Glob(filepath.Join(base, windowsInstallGlob))
		if err != nil {
			continue
		}
		// newest major version first
		sort.Sort(sort.Reverse(sort.StringSlice(matches)))
		for _, dir := range matches {
			for _, exe := range []string{windowsCLIExecutable, windowsGUIExecutable} {
				if candidate := filepath.Join(dir, exe); l.isFile(candidate) {
					return candidate
				}
			}
		}
	}
	return windowsGUIExecutable
}

// Open starts the editor on target. When the editor cannot be started,
// fallbackDir is revealed instead and an ErrLaunchNotFound error is
// returned.
func (l *Launcher) Open(target, fallbackDir string) error {
	target = filepath.FromSlash(target)

	exe, err := l.opts.Runner.LookPath(l.executable)
	if err == nil {
		l.logger.Info().Str("executable", exe).Str("target", target).Msg("Opening in editor")
		err = l.opts.Runner.Start(exe, target)
		if err == nil {
			return nil
		}
	}

	l.logger.Error().Err(err).Str("executable", l.executable).Msg("Could not launch editor")
	launchErr := errors.Wrapf(err, errors.ErrLaunchNotFound, "failed to launch %s", l.executable).
		WithDetail("executable", l.executable).
		WithDetail("target", target)

	if fallbackDir != "" {
		if revealErr := l.Reveal(fallbackDir); revealErr != nil {
			l.logger.Warn().Err(revealErr).Str("dir", fallbackDir).Msg("Could not reveal folder either")
		}
	}
	return launchErr
}

// Reveal shows dir in the platform file manager
func (l *Launcher) Reveal(dir string) error {
	dir = filepath.FromSlash(dir)
	name := revealCommand(l.opts.Platform)

	exe, err := l.opts.Runner.LookPath(name)
	if err == nil {
		err = l.opts.Runner.Start(exe, dir)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrLaunchNotFound, "failed to reveal %s with %s", dir, name).
			WithDetail("executable", name)
	}
	l.logger.Info().Str("dir", dir).Msg("Revealed folder")
	return nil
}

func revealCommand(platform string) string {
	switch platform {
	case PlatformWindows:
		return "explorer.exe"
	case PlatformDarwin:
		return "open"
	default:
		return "xdg-open"
	}
}

func (l *Launcher) isFile(path string) bool {
	info, err := l.opts.FS.Stat(path)
	return err == nil && !info.IsDir()
}
