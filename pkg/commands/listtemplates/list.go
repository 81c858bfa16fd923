package listtemplates

import (
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/types"
)

// ListTemplates finds all templates in the configured template roots.
func ListTemplates(app *core.App) (*types.TemplateListResult, error) {
	log := logging.GetLogger("commands.listtemplates")
	log.Debug().Strs("roots", app.Catalog.Roots()).Msg("Executing command")

	list, err := app.Catalog.List()
	if err != nil {
		return nil, err
	}

	log.Info().Int("templateCount", len(list)).Msg("Listed templates")
	return &types.TemplateListResult{
		Templates: list,
		Roots:     app.Catalog.Roots(),
	}, nil
}
