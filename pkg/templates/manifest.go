package templates

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// ManifestFile is the optional template manifest. It is never copied into
// projects.
const ManifestFile = ".nsp.toml"

// Manifest describes a template
type Manifest struct {
	Description string                 `toml:"description"`
	Variables   map[string]interface{} `toml:"variables"`
}

// LoadManifest reads the manifest of the template at dir. A template
// without one gets an empty manifest.
func LoadManifest(fsys types.FS, dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileIO, "failed to read manifest %s", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "invalid manifest %s", path).
			WithDetail("path", path)
	}
	return &m, nil
}

// Defaults returns the manifest variables as strings. Tables and arrays are
// rejected because placeholders only substitute scalars.
func (m *Manifest) Defaults() (map[string]string, error) {
	out := make(map[string]string, len(m.Variables))
	names := make([]string, 0, len(m.Variables))
	for name := range m.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := m.Variables[name].(type) {
		case map[string]interface{}, []interface{}:
			return nil, errors.Newf(errors.ErrTemplateInvalid,
				"manifest variable %q must be a scalar", name).WithDetail("variable", name)
		default:
			out[name] = fmt.Sprint(v)
		}
	}
	return out, nil
}
