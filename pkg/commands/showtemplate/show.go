package showtemplate

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/templates"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/nsp/pkg/variables"
)

// ShowTemplate describes a template: its files, the placeholders they use
// and the defaults its manifest declares.
func ShowTemplate(app *core.App, name string) (*types.TemplateDetailResult, error) {
	log := logging.GetLogger("commands.showtemplate")
	log.Debug().Str("template", name).Msg("Executing command")

	desc, err := app.Catalog.Find(name)
	if err != nil {
		return nil, err
	}

	manifest, err := templates.LoadManifest(app.FS, desc.Path)
	if err != nil {
		return nil, err
	}
	defaults, err := manifest.Defaults()
	if err != nil {
		return nil, err
	}

	ignore := make(map[string]bool)
	for _, f := range app.MaterializeOptions().Ignore {
		ignore[f] = true
	}

	result := &types.TemplateDetailResult{TemplateDescriptor: desc}
	seen := make(map[string]bool)
	addPlaceholders := func(s string) {
		for _, p := range variables.FindPlaceholders(s) {
			if !seen[p.Token] {
				seen[p.Token] = true
				result.Placeholders = append(result.Placeholders, p.Token)
			}
		}
	}

	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := app.FS.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileIO, "failed to read template directory %s", dir)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			relPath := entry.Name()
			if rel != "" {
				relPath = rel + "/" + entry.Name()
			}
			if entry.IsDir() {
				addPlaceholders(entry.Name())
				if err := walk(path, relPath); err != nil {
					return err
				}
				continue
			}
			if ignore[entry.Name()] {
				continue
			}
			addPlaceholders(entry.Name())
			result.Files = append(result.Files, relPath)

			data, err := app.FS.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileIO, "failed to read template file %s", path)
			}
			addPlaceholders(string(data))
		}
		return nil
	}
	if err := walk(desc.Path, ""); err != nil {
		return nil, err
	}

	sort.Strings(result.Placeholders)
	for name, value := range defaults {
		result.Defaults = append(result.Defaults, types.Variable{Name: name, Value: value})
	}
	sort.Slice(result.Defaults, func(i, j int) bool { return result.Defaults[i].Name < result.Defaults[j].Name })

	log.Info().
		Str("template", desc.Name).
		Int("files", len(result.Files)).
		Int("placeholders", len(result.Placeholders)).
		Msg("Described template")
	return result, nil
}
