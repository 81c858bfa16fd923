package materialize

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/filesystem"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	synthfilesystem "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// Executor applies plans to a filesystem through a synthfs pipeline
type Executor struct {
	fs     types.FS
	target synthfilesystem.FullFileSystem
	// native is set when target writes to fs itself
	native bool
	dryRun bool
	logger zerolog.Logger
}

// NewExecutor creates an executor writing to fsys. In dry-run mode the
// plan is converted and queued but never run.
func NewExecutor(fsys types.FS, dryRun bool) *Executor {
	e := &Executor{
		fs:     fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("materialize.executor"),
	}
	if backed, ok := fsys.(filesystem.SynthBacked); ok {
		if target := backed.Synth(); target != nil {
			e.target = target
			e.native = true
		}
	}
	if e.target == nil {
		// operations write through fsys; the pipeline only needs somewhere to run
		e.target = filesystem.NewSynthMemory()
	}
	return e
}

// treeWriter is the part of a filesystem operations write through
type treeWriter interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Apply performs the plan's operations in order. The first failure aborts;
// whatever was written before it stays on disk.
func (e *Executor) Apply(plan *Plan) error {
	if plan == nil {
		return errors.New(errors.ErrInvalidInput, "plan cannot be nil")
	}

	// set by the failing operation, so the caller gets its coded error
	var failure error

	sfs := synthfs.New()
	pipeline := synthfs.NewMemPipeline()
	for i, op := range plan.Operations {
		synthOp, err := e.convert(sfs, i, op, &failure)
		if err != nil {
			return err
		}
		if err := pipeline.Add(synthOp); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to queue operation: %s", op.String())
		}
	}

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range plan.Operations {
			e.logger.Info().Str("type", string(op.Type)).Str("target", op.Target).Msg(op.Description)
		}
		return nil
	}

	if len(plan.Operations) == 0 {
		e.logger.Info().Msg("No operations to execute")
		return nil
	}

	done := logging.LogOperationStart(e.logger, "apply")
	defer done()

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, e.target)
	if err := result.GetError(); err != nil {
		e.logger.Error().Err(err).Msg("Pipeline execution failed")
		if failure != nil {
			return failure
		}
		return errors.Wrap(err, errors.ErrFileIO, "failed to execute operations")
	}

	e.logger.Info().
		Int("operations", len(plan.Operations)).
		Str("projectRoot", plan.ProjectRoot).
		Msg("All operations executed successfully")
	return nil
}

// convert turns op into a synthfs operation. Operations are custom ones
// because plans overwrite files and revisit existing directories, which
// the stock create operations refuse.
func (e *Executor) convert(sfs *synthfs.SynthFS, seq int, op types.Operation, failure *error) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s operation requires target", op.Type)
	}

	var apply func(w treeWriter) error
	switch op.Type {
	case types.OperationCreateDir:
		apply = func(w treeWriter) error { return e.createDir(w, op) }
	case types.OperationWriteFile:
		apply = func(w treeWriter) error { return e.writeFile(w, op) }
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported operation type: %s", op.Type)
	}

	id := fmt.Sprintf("%s-%04d-%s", op.Type, seq, op.Target)
	return sfs.CustomOperationWithID(id, func(ctx context.Context, sink synthfilesystem.FileSystem) error {
		var w treeWriter = e.fs
		if e.native {
			w = sink
		}
		if err := apply(w); err != nil {
			e.logger.Error().Err(err).Str("target", op.Target).Msg("Operation failed")
			*failure = err
			return err
		}
		return nil
	}), nil
}

func (e *Executor) createDir(w treeWriter, op types.Operation) error {
	e.logger.Debug().Str("target", op.Target).Msg("Creating directory")
	if err := w.MkdirAll(op.Target, fs.FileMode(op.Mode)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", op.Target).
			WithDetail("path", op.Target)
	}
	return nil
}

func (e *Executor) writeFile(w treeWriter, op types.Operation) error {
	e.logger.Debug().Str("target", op.Target).Int("contentLen", len(op.Content)).Msg("Writing file")
	if err := w.WriteFile(op.Target, op.Content, fs.FileMode(op.Mode)); err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "failed to write %s", op.Target).
			WithDetail("path", op.Target).
			WithDetail("source", op.Source)
	}
	return nil
}

// Materialize plans run against fsys and applies the plan to the same fsys
func Materialize(fsys types.FS, run Run, opts Options) (*Plan, error) {
	plan, err := NewPlanner(fsys, opts).Plan(run)
	if err != nil {
		return nil, err
	}
	if err := NewExecutor(fsys, false).Apply(plan); err != nil {
		return plan, err
	}
	return plan, nil
}
