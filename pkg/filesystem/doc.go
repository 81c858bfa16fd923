// Package filesystem provides implementations of types.FS: the real OS
// filesystem and an afero-backed one used for in-memory planning and tests.
// It also hands out synthfs filesystems for executing plans.
package filesystem
