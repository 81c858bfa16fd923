// Package commands provides high-level command implementations for nsp.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the core packages.
//
// Each command is implemented in its own subdirectory:
//   - create/           - CreateProject command
//   - listtemplates/    - ListTemplates command
//   - showtemplate/     - ShowTemplate command
//   - installtemplates/ - InstallTemplates and AddTemplate commands
//   - reveal/           - RevealTemplates and RevealProjects commands
//   - listvars/         - ListVariables command
//   - genconfig/        - GenConfig command
//
// This file re-exports all command functions so the CLI depends on a
// single package.
package commands

import (
	"context"

	"github.com/arthur-debert/nsp/pkg/commands/create"
	"github.com/arthur-debert/nsp/pkg/commands/genconfig"
	"github.com/arthur-debert/nsp/pkg/commands/installtemplates"
	"github.com/arthur-debert/nsp/pkg/commands/listtemplates"
	"github.com/arthur-debert/nsp/pkg/commands/listvars"
	"github.com/arthur-debert/nsp/pkg/commands/reveal"
	"github.com/arthur-debert/nsp/pkg/commands/showtemplate"
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/types"
)

// CreateProject materializes a template into a new project, or opens the
// project when its folder already exists.
type CreateProjectOptions = create.CreateProjectOptions

func CreateProject(app *core.App, opts CreateProjectOptions) (*types.ProjectResult, error) {
	return create.CreateProject(app, opts)
}

// ListTemplates finds all templates in the configured template roots.
func ListTemplates(app *core.App) (*types.TemplateListResult, error) {
	return listtemplates.ListTemplates(app)
}

// ShowTemplate describes one template.
func ShowTemplate(app *core.App, name string) (*types.TemplateDetailResult, error) {
	return showtemplate.ShowTemplate(app, name)
}

// InstallTemplates extracts template archives into the user template directory.
type InstallTemplatesOptions = installtemplates.InstallTemplatesOptions

func InstallTemplates(ctx context.Context, app *core.App, opts InstallTemplatesOptions) (*types.InstallResult, error) {
	return installtemplates.InstallTemplates(ctx, app, opts)
}

// AddTemplate copies a directory into the user template directory.
type AddTemplateOptions = installtemplates.AddTemplateOptions

func AddTemplate(app *core.App, opts AddTemplateOptions) (*types.InstallResult, error) {
	return installtemplates.AddTemplate(app, opts)
}

// RevealTemplates shows the user template directory in the file manager.
func RevealTemplates(app *core.App) (string, error) {
	return reveal.RevealTemplates(app)
}

// RevealProjects shows the project root in the file manager.
func RevealProjects(app *core.App) (string, error) {
	return reveal.RevealProjects(app)
}

// ListVariables resolves every visible variable.
type ListVariablesOptions = listvars.ListVariablesOptions

func ListVariables(app *core.App, opts ListVariablesOptions) (map[string]string, error) {
	return listvars.ListVariables(app, opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(app *core.App, opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(app, opts)
}
