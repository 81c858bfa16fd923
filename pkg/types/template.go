package types

// TemplateDescriptor names a template directory usable as a materialization
// source. Name is the directory's base name.
type TemplateDescriptor struct {
	Name        string
	Path        string
	Description string
}
