// Package testutil provides utilities for testing nsp components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory types.FS
//   - WriteTree / ReadTree: declare and inspect whole directory trees inline
//   - CreateFile / CreateDir: OS-backed helpers for tests that need real paths
//   - MockPaths: every nsp directory under a single root
//   - MockRunner: records editor and file manager launches instead of
//     starting processes
//
// The testapp subpackage assembles a complete core.App on top of these.
//
// All test data should be defined inline, not in external files.
package testutil
