package materialize

import (
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/nsp/pkg/variables"
)

// Run is the state of one materialization
type Run struct {
	// Template is the source template
	Template types.TemplateDescriptor
	// Destination is the project root the template is copied into
	Destination string
	// Storage receives descriptor files. Empty means Destination.
	Storage string
	// Vars resolves placeholders. The planner binds project_file and
	// workspace_file in it, so pass a per-run overlay.
	Vars *variables.Registry
}

// Plan is the resolved, not yet applied, result of planning a run
type Plan struct {
	Operations []types.Operation

	// ProjectRoot is the destination project root
	ProjectRoot string
	// ProjectFile is the project descriptor path, "" if none
	ProjectFile string
	// WorkspaceFile is the workspace descriptor path, "" if none
	WorkspaceFile string
}

// Directories returns the targets of all create-directory operations
func (p *Plan) Directories() []string {
	return p.targets(types.OperationCreateDir)
}

// Files returns the targets of all write operations, in plan order
func (p *Plan) Files() []string {
	return p.targets(types.OperationWriteFile)
}

// Describe renders every operation, one per line
func (p *Plan) Describe() []string {
	lines := make([]string, len(p.Operations))
	for i, op := range p.Operations {
		lines[i] = op.String()
	}
	return lines
}

func (p *Plan) targets(t types.OperationType) []string {
	var out []string
	for _, op := range p.Operations {
		if op.Type == t {
			out = append(out, op.Target)
		}
	}
	return out
}
