package variables

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/nsp/pkg/errors"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// ValidName reports whether name is a legal variable name
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Registry maps variable names to values. A registry may have a parent;
// lookups fall through to it and writes never reach it.
// Registries are not safe for concurrent use.
type Registry struct {
	parent *Registry
	vars   map[string]Value
}

// New creates an empty registry
func New() *Registry {
	return &Registry{vars: make(map[string]Value)}
}

// Overlay returns a child registry for per-run bindings
func (r *Registry) Overlay() *Registry {
	return &Registry{parent: r, vars: make(map[string]Value)}
}

// Register stores value under name, replacing any earlier binding in r
func (r *Registry) Register(name string, value Value) error {
	if !ValidName(name) {
		return errors.Newf(errors.ErrInvalidInput, "invalid variable name %q", name).
			WithDetail("variable", name)
	}
	if value == nil {
		value = Literal("")
	}
	r.vars[name] = value
	return nil
}

// Set registers a literal value
func (r *Registry) Set(name, value string) error {
	return r.Register(name, Literal(value))
}

// SetAll registers every entry of values as literals
func (r *Registry) SetAll(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds the value bound to name in r or its ancestors
func (r *Registry) Lookup(name string) (Value, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if v, ok := reg.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Resolve returns the transformed value of name
func (r *Registry) Resolve(name string, t Transform) (string, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return "", errors.Newf(errors.ErrUndefinedVariable, "variable %q is not defined", name).
			WithDetail("variable", name)
	}
	return t.Apply(v.resolve()), nil
}

// Get resolves name without a transform
func (r *Registry) Get(name string) (string, error) {
	return r.Resolve(name, Transform{})
}

// Names returns all visible variable names, sorted
func (r *Registry) Names() []string {
	seen := make(map[string]struct{})
	for reg := r; reg != nil; reg = reg.parent {
		for name := range reg.vars {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot resolves every visible variable. Computed values are evaluated once.
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string)
	for _, name := range r.Names() {
		v, _ := r.Lookup(name)
		out[name] = v.resolve()
	}
	return out
}
