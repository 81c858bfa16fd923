package types

import "fmt"

// OperationType defines the type of file system operation in a plan
type OperationType string

const (
	// OperationCreateDir creates a directory (and its parents)
	OperationCreateDir OperationType = "create_dir"

	// OperationWriteFile writes content to a file, replacing it
	OperationWriteFile OperationType = "write_file"
)

// Operation is one step of a materialization plan.
// Plans are computed without touching the destination and applied later.
type Operation struct {
	// Type is the type of operation
	Type OperationType

	// Source is the template path the operation derives from
	Source string

	// Target is the destination path
	Target string

	// Content is the resolved content (write operations only)
	Content []byte

	// Mode is the permission bits for the target
	Mode uint32

	// Description is a human-readable description
	Description string
}

// String renders the operation for logs and dry runs
func (o Operation) String() string {
	switch o.Type {
	case OperationCreateDir:
		return fmt.Sprintf("mkdir %s", o.Target)
	case OperationWriteFile:
		return fmt.Sprintf("write %s (%d bytes)", o.Target, len(o.Content))
	default:
		return fmt.Sprintf("%s %s", o.Type, o.Target)
	}
}
