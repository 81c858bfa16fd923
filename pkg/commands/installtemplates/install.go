package installtemplates

import (
	"context"

	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/paths"
	"github.com/arthur-debert/nsp/pkg/types"
)

// InstallTemplatesOptions defines the options for the InstallTemplates command.
type InstallTemplatesOptions struct {
	// Archives are .zip, .tgz or .tar.gz files, each holding one template
	Archives []string
}

// InstallTemplates extracts each archive into the user template directory,
// replacing templates of the same name. It stops at the first failure;
// archives installed before it stay installed.
func InstallTemplates(ctx context.Context, app *core.App, opts InstallTemplatesOptions) (*types.InstallResult, error) {
	log := logging.GetLogger("commands.installtemplates")
	log.Debug().Strs("archives", opts.Archives).Msg("Executing command")

	if len(opts.Archives) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no archives given")
	}

	result := &types.InstallResult{}
	for _, archive := range opts.Archives {
		desc, err := app.Installer.InstallArchive(ctx, paths.ExpandHome(archive))
		if err != nil {
			return result, err
		}
		result.Installed = append(result.Installed, desc)
	}
	return result, nil
}

// AddTemplateOptions defines the options for the AddTemplate command.
type AddTemplateOptions struct {
	// Source is the directory to copy
	Source string
	// Name is the template name; empty means the source's base name
	Name string
}

// AddTemplate copies a directory into the user template directory.
func AddTemplate(app *core.App, opts AddTemplateOptions) (*types.InstallResult, error) {
	log := logging.GetLogger("commands.installtemplates")
	log.Debug().Str("source", opts.Source).Str("name", opts.Name).Msg("Executing command")

	desc, err := app.Installer.AddDirectory(paths.ExpandHome(opts.Source), opts.Name)
	if err != nil {
		return nil, err
	}
	return &types.InstallResult{Installed: []types.TemplateDescriptor{desc}}, nil
}
