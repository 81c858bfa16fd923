package types

// ProjectResult is what a project creation hands back to the caller
type ProjectResult struct {
	// Name is the project name as entered
	Name string
	// Template is the template name used, empty for existing projects
	Template string
	// ProjectRoot is the destination project directory
	ProjectRoot string
	// ProjectFile is the project descriptor path, empty if none was produced
	ProjectFile string
	// WorkspaceFile is the workspace descriptor path, empty if none was produced
	WorkspaceFile string
	// OpenTarget is the path handed to the editor
	OpenTarget string
	// Existing is true when the project folder already existed
	Existing bool
	// DryRun is true when no changes were made
	DryRun bool
	// Operations is the executed (or planned, in dry-run) plan
	Operations []Operation
	// Warnings collects non-fatal problems, such as a missing editor
	Warnings []string
}

// FilesWritten returns the targets of all write operations
func (r *ProjectResult) FilesWritten() []string {
	var files []string
	for _, op := range r.Operations {
		if op.Type == OperationWriteFile {
			files = append(files, op.Target)
		}
	}
	return files
}

// Variable is a name and its resolved value
type Variable struct {
	Name  string
	Value string
}

// TemplateListResult is what listing templates hands back
type TemplateListResult struct {
	Templates []TemplateDescriptor
	// Roots are the directories that were searched, in priority order
	Roots []string
}

// TemplateDetailResult describes one template
type TemplateDetailResult struct {
	TemplateDescriptor
	// Placeholders are the distinct placeholder tokens in names and content
	Placeholders []string
	// Defaults are the manifest variable defaults, sorted by name
	Defaults []Variable
	// Files are the template files relative to the template root
	Files []string
}

// InstallResult lists the templates added to the user template directory
type InstallResult struct {
	Installed []TemplateDescriptor
}

// GenConfigResult holds the generated configuration
type GenConfigResult struct {
	ConfigContent string
	// FilesWritten is empty unless the config was written to disk
	FilesWritten []string
}
