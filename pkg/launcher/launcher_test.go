package launcher

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) LookPath(file string) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockRunner) Start(name string, args ...string) error {
	callArgs := m.Called(name, args)
	return callArgs.Error(0)
}

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDiscoverConfigured(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/opt/st", map[string]string{"subl": "#!"})

	l := New(Options{Executable: "/opt/st/subl", Platform: PlatformLinux, FS: fsys, Runner: &MockRunner{}})
	assert.Equal(t, "/opt/st/subl", l.Executable())

	l = New(Options{Executable: "/opt/missing/subl", Platform: PlatformLinux, FS: fsys, Runner: &MockRunner{}})
	assert.Equal(t, "subl", l.Executable(), "missing configured executable falls back to discovery")
}

func TestDiscoverUnix(t *testing.T) {
	for _, platform := range []string{PlatformLinux, PlatformDarwin} {
		l := New(Options{Platform: platform, FS: testutil.NewTestFS(), Runner: &MockRunner{}})
		assert.Equal(t, "subl", l.Executable(), platform)
	}
}

func TestDiscoverWindows(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		env   map[string]string
		want  string
	}{
		{
			name:  "cli executable of newest install",
			files: map[string]string{"Sublime Text 3/subl.exe": "", "Sublime Text 4/subl.exe": ""},
			env:   map[string]string{"ProgramW6432": "/pf"},
			want:  "/pf/Sublime Text 4/subl.exe",
		},
		{
			name:  "gui executable when cli is missing",
			files: map[string]string{"Sublime Text/sublime_text.exe": ""},
			env:   map[string]string{"ProgramFiles": "/pf"},
			want:  "/pf/Sublime Text/sublime_text.exe",
		},
		{
			name:  "bare name when nothing is installed",
			files: map[string]string{"Other/app.exe": ""},
			env:   map[string]string{"ProgramW6432": "/pf", "ProgramFiles": "/pf"},
			want:  "sublime_text.exe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewTestFS()
			testutil.WriteTree(t, fsys, "/pf", tt.files)

			glob := func(pattern string) ([]string, error) {
				assert.Equal(t, "/pf/Sublime Text*", pattern)
				var out []string
				for _, dir := range []string{"/pf/Sublime Text", "/pf/Sublime Text 3", "/pf/Sublime Text 4"} {
					if _, err := fsys.Stat(dir); err == nil {
						out = append(out, dir)
					}
				}
				return out, nil
			}

			l := New(Options{
				Platform: PlatformWindows,
				FS:       fsys,
				Runner:   &MockRunner{},
				Getenv:   env(tt.env),
				Glob:     glob,
			})
			assert.Equal(t, tt.want, l.Executable())
		})
	}
}

func TestOpen(t *testing.T) {
	runner := &MockRunner{}
	runner.On("LookPath", "subl").Return("/usr/bin/subl", nil)
	runner.On("Start", "/usr/bin/subl", []string{"/p/App.sublime-workspace"}).Return(nil)

	l := New(Options{Platform: PlatformLinux, FS: testutil.NewTestFS(), Runner: runner})
	assert.NoError(t, l.Open("/p/App.sublime-workspace", "/p"))
	runner.AssertExpectations(t)
}

func TestOpenMissingEditorRevealsFolder(t *testing.T) {
	runner := &MockRunner{}
	runner.On("LookPath", "subl").Return("", stderrors.New("executable file not found in $PATH"))
	runner.On("LookPath", "xdg-open").Return("/usr/bin/xdg-open", nil)
	runner.On("Start", "/usr/bin/xdg-open", []string{"/p"}).Return(nil)

	l := New(Options{Platform: PlatformLinux, FS: testutil.NewTestFS(), Runner: runner})
	err := l.Open("/p/App.sublime-project", "/p")

	assert.True(t, errors.IsErrorCode(err, errors.ErrLaunchNotFound))
	assert.Equal(t, "subl", errors.GetErrorDetails(err)["executable"])
	runner.AssertExpectations(t)
}

func TestOpenStartFailure(t *testing.T) {
	runner := &MockRunner{}
	runner.On("LookPath", "subl").Return("/usr/bin/subl", nil)
	runner.On("Start", "/usr/bin/subl", []string{"/p"}).Return(stderrors.New("permission denied"))
	runner.On("LookPath", "open").Return("", stderrors.New("not found"))

	l := New(Options{Platform: PlatformDarwin, FS: testutil.NewTestFS(), Runner: runner})
	err := l.Open("/p", "/p")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLaunchNotFound))
	runner.AssertExpectations(t)
}

func TestReveal(t *testing.T) {
	tests := []struct {
		platform string
		command  string
	}{
		{PlatformWindows, "explorer.exe"},
		{PlatformDarwin, "open"},
		{PlatformLinux, "xdg-open"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			runner := &MockRunner{}
			runner.On("LookPath", tt.command).Return("/bin/"+tt.command, nil)
			runner.On("Start", "/bin/"+tt.command, []string{"/projects"}).Return(nil)

			l := New(Options{Platform: tt.platform, FS: testutil.NewTestFS(), Runner: runner, Getenv: env(nil)})
			assert.NoError(t, l.Reveal("/projects"))
			runner.AssertExpectations(t)
		})
	}
}

func TestRevealMissing(t *testing.T) {
	runner := &MockRunner{}
	runner.On("LookPath", "xdg-open").Return("", stderrors.New("not found"))

	l := New(Options{Platform: PlatformLinux, FS: testutil.NewTestFS(), Runner: runner})
	err := l.Reveal("/projects")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLaunchNotFound))
}
