package materialize

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/filesystem"
	"github.com/arthur-debert/nsp/pkg/testutil"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/nsp/pkg/variables"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(t *testing.T, vars map[string]string) Run {
	t.Helper()

	reg := variables.New()
	require.NoError(t, reg.SetAll(vars))
	return Run{
		Template:    types.TemplateDescriptor{Name: "demo", Path: "/tpl"},
		Destination: "/out",
		Vars:        reg.Overlay(),
	}
}

func TestPlanOrder(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		"a/${type}.txt": "Hello ${project_name:L-}\n",
		"README.md":     "# ${project_name}\n",
		"b/c/d.txt":     "deep",
	})

	run := newRun(t, map[string]string{"type": "Demo", "project_name": "Foo Bar"})
	plan, err := NewPlanner(fsys, DefaultOptions()).Plan(run)
	require.NoError(t, err)

	want := []string{
		"mkdir /out",
		"mkdir /out/a",
		"mkdir /out/b",
		"write /out/README.md (10 bytes)",
		"write /out/a/Demo.txt (14 bytes)",
		"mkdir /out/b/c",
		"write /out/b/c/d.txt (4 bytes)",
	}
	if diff := cmp.Diff(want, plan.Describe()); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/out", plan.ProjectRoot)
	assert.Empty(t, plan.ProjectFile)
	assert.Empty(t, plan.WorkspaceFile)

	// Planning never writes
	_, err = fsys.Stat("/out")
	assert.Error(t, err)
}

func TestPlanDirectoryPlaceholders(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		"${type}/inner.txt":          "x",
		"${type}/${type:L}/leaf.txt": "y",
	})

	run := newRun(t, map[string]string{"type": "Demo"})
	plan, err := NewPlanner(fsys, DefaultOptions()).Plan(run)
	require.NoError(t, err)

	want := []string{"/out", "/out/Demo", "/out/Demo/demo"}
	if diff := cmp.Diff(want, plan.Directories()); diff != "" {
		t.Errorf("directories mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"/out/Demo/inner.txt", "/out/Demo/demo/leaf.txt"}, plan.Files())
}

func TestPlanDescriptorsGoToStorage(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		"${project_name:U_}.sublime-project": `{"folders": [{"path": "${project_root}"}]}`,
		"${folder_name}.sublime-workspace":   "{}",
		"notes.txt":                          "${project_file}|${workspace_file}",
	})

	run := newRun(t, map[string]string{
		"project_name":   "My Cool/App",
		"folder_name":    SanitizeFolderName("My Cool/App"),
		"project_root":   "/projects/My Cool-App",
		"project_file":   "",
		"workspace_file": "",
	})
	run.Destination = "/projects/My Cool-App"
	run.Storage = "/storage/My Cool-App"

	plan, err := Materialize(fsys, run, DefaultOptions())
	require.NoError(t, err)

	projectFile := "/storage/My Cool-App/MY_COOL_APP.sublime-project"
	workspaceFile := "/storage/My Cool-App/My Cool-App.sublime-workspace"
	assert.Equal(t, projectFile, plan.ProjectFile)
	assert.Equal(t, workspaceFile, plan.WorkspaceFile)

	assert.Equal(t, map[string]string{
		"notes.txt": projectFile + "|" + workspaceFile,
	}, testutil.ReadTree(t, fsys, "/projects/My Cool-App"))
	assert.Equal(t, map[string]string{
		"MY_COOL_APP.sublime-project":    `{"folders": [{"path": "/projects/My Cool-App"}]}`,
		"My Cool-App.sublime-workspace": "{}",
	}, testutil.ReadTree(t, fsys, "/storage/My Cool-App"))

	got, err := run.Vars.Get(VarProjectFile)
	require.NoError(t, err)
	assert.Equal(t, projectFile, got)
}

func TestPlanDescriptorsWithoutStorage(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		"sub/x.sublime-project": "{}",
	})

	run := newRun(t, nil)
	plan, err := NewPlanner(fsys, DefaultOptions()).Plan(run)
	require.NoError(t, err)
	assert.Equal(t, "/out/sub/x.sublime-project", plan.ProjectFile)
	assert.Equal(t, []string{"/out", "/out/sub"}, plan.Directories())
}

func TestPlanBindsOnlyInOverlay(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{"p.sublime-project": "{}"})

	base := variables.New()
	run := Run{
		Template:    types.TemplateDescriptor{Name: "demo", Path: "/tpl"},
		Destination: "/out",
		Vars:        base.Overlay(),
	}
	_, err := NewPlanner(fsys, DefaultOptions()).Plan(run)
	require.NoError(t, err)

	_, ok := base.Lookup(VarProjectFile)
	assert.False(t, ok)
	_, ok = run.Vars.Lookup(VarProjectFile)
	assert.True(t, ok)
}

func TestPlanPreservesContent(t *testing.T) {
	fsys := testutil.NewTestFS()
	tree := map[string]string{
		"crlf.txt":        "one\r\ntwo\r\n",
		"no-newline.txt":  "last line",
		"dollars.sh":      "echo $HOME ${HOME:-x} $((1+2))\n",
		"nested/blank.md": "\n\n\n",
		"empty.txt":       "",
	}
	testutil.WriteTree(t, fsys, "/tpl", tree)

	_, err := Materialize(fsys, newRun(t, nil), DefaultOptions())
	require.NoError(t, err)

	got := testutil.ReadTree(t, fsys, "/out")
	tree["nested/"] = ""
	if diff := cmp.Diff(tree, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanEmptyTemplate(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, fsys.MkdirAll("/tpl", 0755))

	plan, err := Materialize(fsys, newRun(t, nil), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"mkdir /out"}, plan.Describe())
	assert.Empty(t, testutil.ReadTree(t, fsys, "/out"))
}

func TestPlanCollisionLastWriteWins(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		"${a}.txt": "first",
		"${b}.txt": "second",
	})

	run := newRun(t, map[string]string{"a": "same", "b": "same"})
	plan, err := Materialize(fsys, run, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"/out/same.txt", "/out/same.txt"}, plan.Files())
	assert.Equal(t, map[string]string{"same.txt": "second"}, testutil.ReadTree(t, fsys, "/out"))
}

func TestPlanUndefinedVariable(t *testing.T) {
	tests := []struct {
		name string
		tree map[string]string
		file string
		line interface{}
	}{
		{
			name: "in content",
			tree: map[string]string{"ok.txt": "fine", "z.txt": "line one\n${missing}\n"},
			file: "/tpl/z.txt",
			line: 2,
		},
		{
			name: "in file name",
			tree: map[string]string{"ok.txt": "fine", "${missing}.txt": "x"},
			file: "/tpl/${missing}.txt",
		},
		{
			name: "in directory name",
			tree: map[string]string{"ok.txt": "fine", "${missing}/x.txt": "x"},
			file: "/tpl/${missing}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewTestFS()
			testutil.WriteTree(t, fsys, "/tpl", tt.tree)

			plan, err := Materialize(fsys, newRun(t, nil), DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedVariable))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, "missing", details["variable"])
			assert.Equal(t, tt.file, details["file"])
			if tt.line != nil {
				assert.Equal(t, tt.line, details["line"])
			}

			// nothing written, not even the root
			_, statErr := fsys.Stat("/out")
			assert.Error(t, statErr)
		})
	}
}

func TestPlanIgnoresManifest(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{
		".nsp.toml":     "description = \"${not_a_var}\"",
		"keep.txt":      "kept",
		"sub/.nsp.toml": "x",
	})

	opts := DefaultOptions()
	opts.Ignore = []string{".nsp.toml"}
	_, err := Materialize(fsys, newRun(t, nil), opts)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"keep.txt": "kept", "sub/": ""}, testutil.ReadTree(t, fsys, "/out"))
}

func TestPlanErrors(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/data", map[string]string{"file.txt": "x"})
	planner := NewPlanner(fsys, DefaultOptions())

	_, err := planner.Plan(Run{Destination: "/out"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = planner.Plan(Run{Template: types.TemplateDescriptor{Path: "/tpl"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = planner.Plan(Run{Template: types.TemplateDescriptor{Name: "nope", Path: "/nope"}, Destination: "/out"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))

	_, err = planner.Plan(Run{Template: types.TemplateDescriptor{Name: "file", Path: "/data/file.txt"}, Destination: "/out"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
}

func TestPlanDoesNotFollowLinkedDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	tpl := filepath.Join(root, "tpl")
	testutil.CreateFile(t, tpl, "sub/file.txt", "x")
	require.NoError(t, os.Symlink("..", filepath.Join(tpl, "sub", "loop")))

	out := filepath.Join(root, "out")
	plan, err := NewPlanner(filesystem.NewOS(), DefaultOptions()).Plan(Run{
		Template:    types.TemplateDescriptor{Name: "demo", Path: tpl},
		Destination: out,
		Vars:        variables.New(),
	})
	require.NoError(t, err)

	want := []string{
		"mkdir " + out,
		"mkdir " + filepath.Join(out, "sub"),
		"mkdir " + filepath.Join(out, "sub", "loop"),
		"write " + filepath.Join(out, "sub", "file.txt") + " (1 bytes)",
	}
	if diff := cmp.Diff(want, plan.Describe()); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}
