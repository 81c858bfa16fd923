package materialize

import "strings"

// Default descriptor markers
const (
	DefaultProjectMarker   = ".sublime-project"
	DefaultWorkspaceMarker = ".sublime-workspace"
)

// Markers classifies descriptor files by substring match on their path
type Markers struct {
	Project   string
	Workspace string
}

// DefaultMarkers returns the Sublime Text descriptor markers
func DefaultMarkers() Markers {
	return Markers{Project: DefaultProjectMarker, Workspace: DefaultWorkspaceMarker}
}

// DescriptorKind is the classification of a template file
type DescriptorKind int

const (
	DescriptorNone DescriptorKind = iota
	DescriptorProject
	DescriptorWorkspace
)

// Classify returns the descriptor kind of path. The project marker is
// checked first. Empty markers never match.
func (m Markers) Classify(path string) DescriptorKind {
	switch {
	case m.Project != "" && strings.Contains(path, m.Project):
		return DescriptorProject
	case m.Workspace != "" && strings.Contains(path, m.Workspace):
		return DescriptorWorkspace
	default:
		return DescriptorNone
	}
}
