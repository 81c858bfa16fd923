// Package materialize turns a template directory into a project tree.
//
// Materialization happens in two phases. A Planner walks the template on a
// types.FS and produces a Plan: an ordered list of create-directory and
// write-file operations with every placeholder already resolved. An Executor
// then applies the plan to a (possibly different) types.FS. Because planning
// resolves everything up front, an undefined variable aborts the run before a
// single file is written.
//
// Files whose destination path contains the project or workspace descriptor
// marker are redirected to the storage root and reported in the plan.
package materialize
