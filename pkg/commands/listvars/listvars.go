package listvars

import (
	"github.com/arthur-debert/nsp/pkg/commands/create"
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/prompt"
)

// ListVariablesOptions defines the options for the ListVariables command.
type ListVariablesOptions struct {
	// TemplateName adds the variables a run of that template would see
	TemplateName string
	// ProjectName is used for the run variables; empty means the default
	// project name
	ProjectName string
	// Vars and VarsFile are applied like they are for a project
	Vars     []string
	VarsFile string
}

// ListVariables resolves every visible variable. Without a template only
// the default variables are listed.
func ListVariables(app *core.App, opts ListVariablesOptions) (map[string]string, error) {
	log := logging.GetLogger("commands.listvars")
	log.Debug().Str("template", opts.TemplateName).Msg("Executing command")

	if opts.TemplateName == "" {
		return app.Vars.Snapshot(), nil
	}

	desc, err := app.Catalog.Find(opts.TemplateName)
	if err != nil {
		return nil, err
	}
	name := opts.ProjectName
	if name == "" {
		name = prompt.DefaultProjectName
	}
	root, _ := app.Config.ProjectRoots()

	vars, err := create.RunVariables(app, desc, create.CreateProjectOptions{
		Vars:     opts.Vars,
		VarsFile: opts.VarsFile,
	}, root, name)
	if err != nil {
		return nil, err
	}
	return vars.Snapshot(), nil
}
