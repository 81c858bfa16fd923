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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorDryRun(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{"a/b.txt": "x"})

	plan, err := NewPlanner(fsys, DefaultOptions()).Plan(newRun(t, nil))
	require.NoError(t, err)
	require.NoError(t, NewExecutor(fsys, true).Apply(plan))

	_, err = fsys.Stat("/out")
	assert.Error(t, err)
}

func TestExecutorNilPlan(t *testing.T) {
	err := NewExecutor(testutil.NewTestFS(), false).Apply(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExecutorUnknownOperation(t *testing.T) {
	plan := &Plan{Operations: []types.Operation{{Type: "chmod", Target: "/x"}}}
	err := NewExecutor(testutil.NewTestFS(), false).Apply(plan)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExecutorExistingDirectory(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/tpl", map[string]string{"new.txt": "new"})
	testutil.WriteTree(t, fsys, "/out", map[string]string{"old.txt": "old", "new.txt": "stale"})

	_, err := Materialize(fsys, newRun(t, nil), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"new.txt": "new", "old.txt": "old"}, testutil.ReadTree(t, fsys, "/out"))
}

func TestExecutorDirCreateFailure(t *testing.T) {
	root := t.TempDir()
	blocker := testutil.CreateFile(t, root, "blocker", "not a directory")

	fsys := filesystem.NewOS()
	tpl := filepath.Join(root, "tpl")
	testutil.CreateFile(t, tpl, "first.txt", "1")
	testutil.CreateFile(t, tpl, "sub/second.txt", "2")

	run := Run{
		Template:    types.TemplateDescriptor{Name: "demo", Path: tpl},
		Destination: blocker,
		Vars:        variables.New(),
	}
	_, err := Materialize(fsys, run, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Equal(t, blocker, errors.GetErrorDetails(err)["path"])
}

func TestExecutorPartialWritesStay(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()
	tpl := filepath.Join(root, "tpl")
	testutil.CreateFile(t, tpl, "a.txt", "a")
	testutil.CreateFile(t, tpl, "b/c.txt", "c")

	out := filepath.Join(root, "out")
	run := Run{
		Template:    types.TemplateDescriptor{Name: "demo", Path: tpl},
		Destination: out,
		Vars:        variables.New(),
	}
	plan, err := NewPlanner(fsys, DefaultOptions()).Plan(run)
	require.NoError(t, err)

	// block the subdirectory after planning
	testutil.CreateFile(t, out, "b", "file in the way")

	err = NewExecutor(fsys, false).Apply(plan)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.DirExists(t, out)
}

func TestExecutorKeepsExecutableBit(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()
	tpl := filepath.Join(root, "tpl")
	script := testutil.CreateFile(t, tpl, "run.sh", "#!/bin/sh\necho ${type}\n")
	require.NoError(t, os.Chmod(script, 0755))
	testutil.CreateFile(t, tpl, "plain.txt", "plain")

	vars := variables.New()
	require.NoError(t, vars.Set("type", "Demo"))
	out := filepath.Join(root, "out")
	_, err := Materialize(fsys, Run{
		Template:    types.TemplateDescriptor{Name: "demo", Path: tpl},
		Destination: out,
		Vars:        vars,
	}, DefaultOptions())
	require.NoError(t, err)

	testutil.AssertMode(t, fsys, filepath.Join(out, "run.sh"), 0755)
	testutil.AssertMode(t, fsys, filepath.Join(out, "plain.txt"), 0644)

	data, err := os.ReadFile(filepath.Join(out, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho Demo\n", string(data))
}

func TestExecutorRejectsInvalidPlanInDryRun(t *testing.T) {
	fsys := testutil.NewTestFS()

	err := NewExecutor(fsys, true).Apply(&Plan{Operations: []types.Operation{{Type: "chmod", Target: "/x"}}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = NewExecutor(fsys, true).Apply(&Plan{Operations: []types.Operation{{Type: types.OperationCreateDir}}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExecutorTargets(t *testing.T) {
	assert.Equal(t, runtime.GOOS != "windows", NewExecutor(filesystem.NewOS(), false).native)
	assert.False(t, NewExecutor(testutil.NewTestFS(), false).native)
}

func TestExecutorLastWriteWins(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "out", "same.txt")
	plan := &Plan{Operations: []types.Operation{
		{Type: types.OperationCreateDir, Target: filepath.Join(root, "out"), Mode: 0755},
		{Type: types.OperationWriteFile, Source: "first", Target: target, Content: []byte("first"), Mode: 0644},
		{Type: types.OperationWriteFile, Source: "second", Target: target, Content: []byte("second"), Mode: 0644},
	}}

	require.NoError(t, NewExecutor(filesystem.NewOS(), false).Apply(plan))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestExecutorWriteFailureDetails(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "taken")
	require.NoError(t, os.MkdirAll(dir, 0755))

	plan := &Plan{Operations: []types.Operation{
		{Type: types.OperationWriteFile, Source: "/tpl/taken", Target: dir, Content: []byte("x"), Mode: 0644},
	}}
	err := NewExecutor(filesystem.NewOS(), false).Apply(plan)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileIO))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, dir, details["path"])
	assert.Equal(t, "/tpl/taken", details["source"])
}
