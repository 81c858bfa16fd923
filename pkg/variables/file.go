package variables

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseAssignments parses name=value pairs as given to --var
func ParseAssignments(assignments []string) (map[string]string, error) {
	vars := make(map[string]string, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid variable definition %q: expected name=value", a)
		}
		if !ValidName(name) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid variable name %q", name).
				WithDetail("variable", name)
		}
		vars[name] = value
	}
	return vars, nil
}

// LoadFile reads flat variable definitions from a YAML or TOML file.
// Non-string scalars are converted with their default formatting.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileIO, "failed to read variables file %s", path)
	}

	raw := make(map[string]interface{})
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported variables file format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse variables file %s", path)
	}

	vars := make(map[string]string, len(raw))
	for name, v := range raw {
		if !ValidName(name) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid variable name %q in %s", name, path).
				WithDetail("variable", name)
		}
		switch v := v.(type) {
		case map[string]interface{}, []interface{}:
			return nil, errors.Newf(errors.ErrInvalidInput,
				"variable %q in %s must be a scalar", name, path)
		case nil:
			vars[name] = ""
		case string:
			vars[name] = v
		default:
			vars[name] = fmt.Sprint(v)
		}
	}
	return vars, nil
}
