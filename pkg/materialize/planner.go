package materialize

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/nsp/pkg/variables"
	"github.com/rs/zerolog"
)

// Variables bound by the planner when descriptor files are found
const (
	VarProjectFile   = "project_file"
	VarWorkspaceFile = "workspace_file"
)

const (
	defaultDirMode  fs.FileMode = 0755
	defaultFileMode fs.FileMode = 0644
)

// Options tunes planning
type Options struct {
	Markers Markers
	// Ignore lists template file base names that are never copied
	Ignore []string
	// DirMode is used for created directories
	DirMode fs.FileMode
	// FileMode is used for written files; executable bits of the template
	// file are kept on top of it
	FileMode fs.FileMode
}

// DefaultOptions returns the Sublime Text markers and default permissions
func DefaultOptions() Options {
	return Options{
		Markers:  DefaultMarkers(),
		DirMode:  defaultDirMode,
		FileMode: defaultFileMode,
	}
}

// Planner computes materialization plans from templates on an FS
type Planner struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// NewPlanner creates a planner reading templates from fsys
func NewPlanner(fsys types.FS, opts Options) *Planner {
	if opts.DirMode == 0 {
		opts.DirMode = defaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = defaultFileMode
	}
	return &Planner{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("materialize.planner"),
	}
}

// Plan walks the template depth-first and returns the operations needed to
// materialize it. Entries are visited in lexical order, so when two entries
// resolve to the same target the later one wins once applied.
func (p *Planner) Plan(run Run) (*Plan, error) {
	if run.Template.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "template path cannot be empty")
	}
	if run.Destination == "" {
		return nil, errors.New(errors.ErrInvalidInput, "destination cannot be empty")
	}
	if run.Vars == nil {
		run.Vars = variables.New()
	}
	if run.Storage == "" {
		run.Storage = run.Destination
	}

	info, err := p.fs.Stat(run.Template.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateNotFound,
			"template %q not found at %s", run.Template.Name, run.Template.Path)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrTemplateInvalid,
			"template %q is not a directory: %s", run.Template.Name, run.Template.Path)
	}

	done := logging.LogOperationStart(p.logger, "plan")
	defer done()

	b := &planBuilder{
		planner: p,
		run:     run,
		plan:    &Plan{ProjectRoot: run.Destination},
		dirs:    make(map[string]bool),
		ignore:  make(map[string]bool, len(p.opts.Ignore)),
	}
	for _, name := range p.opts.Ignore {
		b.ignore[name] = true
	}

	if err := b.walk(run.Template.Path, ""); err != nil {
		return nil, err
	}

	p.logger.Debug().
		Str("template", run.Template.Name).
		Str("destination", run.Destination).
		Int("operations", len(b.plan.Operations)).
		Str("projectFile", b.plan.ProjectFile).
		Str("workspaceFile", b.plan.WorkspaceFile).
		Msg("Plan computed")

	return b.plan, nil
}

type planBuilder struct {
	planner *Planner
	run     Run
	plan    *Plan
	dirs    map[string]bool
	ignore  map[string]bool
}

func (b *planBuilder) walk(srcDir, suffix string) error {
	destSuffix, err := b.expandName(suffix, srcDir)
	if err != nil {
		return err
	}
	destDir := filepath.Join(b.run.Destination, destSuffix)
	b.mkdir(destDir, srcDir)

	entries, err := b.planner.fs.ReadDir(srcDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "failed to read template directory %s", srcDir)
	}

	var subdirs []fs.DirEntry
	for _, entry := range entries {
		if !b.isDir(srcDir, entry) {
			continue
		}
		// linked directories are recreated empty; descending could loop
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
		}
		name, err := b.expandName(entry.Name(), filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return err
		}
		b.mkdir(filepath.Join(destDir, name), filepath.Join(srcDir, entry.Name()))
	}

	for _, entry := range entries {
		if b.isDir(srcDir, entry) {
			continue
		}
		if b.ignore[entry.Name()] {
			b.planner.logger.Trace().Str("file", entry.Name()).Msg("Skipping ignored template file")
			continue
		}
		if err := b.file(filepath.Join(srcDir, entry.Name()), destSuffix, destDir); err != nil {
			return err
		}
	}

	for _, entry := range subdirs {
		if err := b.walk(filepath.Join(srcDir, entry.Name()), filepath.Join(suffix, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (b *planBuilder) file(srcPath, destSuffix, destDir string) error {
	name, err := b.expandName(filepath.Base(srcPath), srcPath)
	if err != nil {
		return err
	}

	targetDir := destDir
	kind := b.planner.opts.Markers.Classify(filepath.ToSlash(filepath.Join(destSuffix, name)))
	if kind != DescriptorNone {
		targetDir = filepath.Join(b.run.Storage, destSuffix)
		b.mkdir(targetDir, srcPath)
	}
	target := filepath.Join(targetDir, name)

	switch kind {
	case DescriptorProject:
		b.plan.ProjectFile = target
		if err := b.run.Vars.Set(VarProjectFile, filepath.ToSlash(target)); err != nil {
			return err
		}
	case DescriptorWorkspace:
		b.plan.WorkspaceFile = target
		if err := b.run.Vars.Set(VarWorkspaceFile, filepath.ToSlash(target)); err != nil {
			return err
		}
	}

	info, err := b.planner.fs.Stat(srcPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "failed to stat template file %s", srcPath)
	}
	content, err := b.render(srcPath)
	if err != nil {
		return err
	}

	b.plan.Operations = append(b.plan.Operations, types.Operation{
		Type:        types.OperationWriteFile,
		Source:      srcPath,
		Target:      target,
		Content:     content,
		Mode:        uint32(b.planner.opts.FileMode | info.Mode().Perm()&0111),
		Description: fmt.Sprintf("Write %s", target),
	})
	return nil
}

// render resolves placeholders line by line, keeping line endings intact
func (b *planBuilder) render(srcPath string) ([]byte, error) {
	data, err := b.planner.fs.ReadFile(srcPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileIO, "failed to read template file %s", srcPath)
	}

	var out bytes.Buffer
	out.Grow(len(data))
	lineNo := 0
	for len(data) > 0 {
		lineNo++
		end := bytes.IndexByte(data, '\n') + 1
		if end == 0 {
			end = len(data)
		}
		line, err := b.run.Vars.Expand(string(data[:end]))
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err),
				"cannot resolve placeholder in %s line %d", srcPath, lineNo).
				WithDetail("file", srcPath).
				WithDetail("line", lineNo)
		}
		out.WriteString(line)
		data = data[end:]
	}
	return out.Bytes(), nil
}

func (b *planBuilder) expandName(name, srcPath string) (string, error) {
	resolved, err := b.run.Vars.ExpandName(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.GetErrorCode(err),
			"cannot resolve placeholder in name of %s", srcPath).
			WithDetail("file", srcPath)
	}
	return resolved, nil
}

func (b *planBuilder) mkdir(dir, srcPath string) {
	if b.dirs[dir] {
		return
	}
	b.dirs[dir] = true
	b.plan.Operations = append(b.plan.Operations, types.Operation{
		Type:        types.OperationCreateDir,
		Source:      srcPath,
		Target:      dir,
		Mode:        uint32(b.planner.opts.DirMode),
		Description: fmt.Sprintf("Create directory %s", dir),
	})
}

// isDir treats symlinks to directories as directories
func (b *planBuilder) isDir(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := b.planner.fs.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
