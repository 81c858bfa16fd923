// Package types defines the core types and interfaces shared across nsp:
// the filesystem abstraction, template descriptors, materialization plan
// operations and project results.
package types
