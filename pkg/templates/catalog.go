package templates

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/rs/zerolog"
)

// Catalog lists the templates found in an ordered list of roots
type Catalog struct {
	fs     types.FS
	roots  []string
	logger zerolog.Logger
}

// NewCatalog creates a catalog over roots. Earlier roots shadow later ones.
func NewCatalog(fsys types.FS, roots ...string) *Catalog {
	return &Catalog{
		fs:     fsys,
		roots:  roots,
		logger: logging.GetLogger("templates.catalog"),
	}
}

// Roots returns the searched directories in order
func (c *Catalog) Roots() []string {
	return c.roots
}

// List returns every template sorted by name. Missing roots are skipped.
func (c *Catalog) List() ([]types.TemplateDescriptor, error) {
	seen := make(map[string]bool)
	var out []types.TemplateDescriptor

	for _, root := range c.roots {
		entries, err := c.fs.ReadDir(root)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				c.logger.Debug().Str("root", root).Msg("Template root does not exist")
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrFileIO, "failed to read template root %s", root)
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") || seen[name] {
				continue
			}
			path := filepath.Join(root, name)
			if !c.isDir(path) {
				continue
			}
			seen[name] = true

			desc := types.TemplateDescriptor{Name: name, Path: path}
			if m, err := LoadManifest(c.fs, path); err != nil {
				c.logger.Warn().Err(err).Str("template", name).Msg("Ignoring unreadable manifest")
			} else {
				desc.Description = m.Description
			}
			out = append(out, desc)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	c.logger.Debug().Int("count", len(out)).Msg("Listed templates")
	return out, nil
}

// Find returns the template called name
func (c *Catalog) Find(name string) (types.TemplateDescriptor, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return types.TemplateDescriptor{}, errors.Newf(errors.ErrInvalidInput, "invalid template name %q", name)
	}

	all, err := c.List()
	if err != nil {
		return types.TemplateDescriptor{}, err
	}
	for _, t := range all {
		if t.Name == name {
			return t, nil
		}
	}
	return types.TemplateDescriptor{}, errors.Newf(errors.ErrTemplateNotFound, "template %q not found", name).
		WithDetail("template", name).
		WithDetail("roots", c.roots)
}

// Names returns the template names sorted
func (c *Catalog) Names() ([]string, error) {
	all, err := c.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return names, nil
}

func (c *Catalog) isDir(path string) bool {
	info, err := c.fs.Stat(path)
	return err == nil && info.IsDir()
}
