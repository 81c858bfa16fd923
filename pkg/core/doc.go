// Package core wires nsp together.
//
// NewApp loads the configuration, resolves the XDG paths and builds the
// long-lived collaborators every command shares: the template catalog and
// installer, the editor launcher and the base variable registry.
//
// # Default Variables
//
// The base registry holds the variables that do not depend on a run:
//
//   - packages_path: the nsp data directory
//   - templates_path: the user template directory
//   - home: the user's home directory
//   - program_files, program_files_x86, program_files_x64: Windows install
//     folders, empty elsewhere
//   - date, year: computed when resolved
//
// Backslashes in every path are normalized to "/" so values can be pasted
// into JSON descriptor files. Each project run layers its own overlay on
// top of this registry.
package core
