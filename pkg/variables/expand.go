package variables

import (
	"regexp"
	"strings"
)

// placeholderPattern matches ${name} and ${name:TRANSFORM}
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_.]+)(?::([UL_\-]+))?\}`)

// Placeholder is one occurrence of ${name} or ${name:TRANSFORM}
type Placeholder struct {
	Token     string
	Name      string
	Transform Transform
}

// FindPlaceholders lists the placeholders in s in order of appearance
func FindPlaceholders(s string) []Placeholder {
	matches := placeholderPattern.FindAllStringSubmatch(s, -1)
	out := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		out = append(out, Placeholder{Token: m[0], Name: m[1], Transform: ParseTransform(m[2])})
	}
	return out
}

// HasPlaceholders reports whether s contains at least one placeholder
func HasPlaceholders(s string) bool {
	return placeholderPattern.MatchString(s)
}

// Expand replaces every placeholder in s. Substituted text is not expanded
// again. The first undefined variable aborts the expansion.
func (r *Registry) Expand(s string) (string, error) {
	return r.expand(s, nil)
}

// ExpandName expands placeholders in a single file or directory name.
// A substituted value never introduces extra path components: any path
// separator it contains is replaced by the transform's separator when the
// placeholder has one, and by "-" otherwise.
func (r *Registry) ExpandName(s string) (string, error) {
	return r.expand(s, func(v string, t Transform) string {
		sep := "-"
		if t.Separator != 0 {
			sep = string(t.Separator)
		}
		return strings.NewReplacer("/", sep, `\`, sep).Replace(v)
	})
}

func (r *Registry) expand(s string, post func(string, Transform) string) (string, error) {
	if !HasPlaceholders(s) {
		return s, nil
	}

	var firstErr error
	out := placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		if firstErr != nil {
			return token
		}
		m := placeholderPattern.FindStringSubmatch(token)
		t := ParseTransform(m[2])
		v, err := r.Resolve(m[1], t)
		if err != nil {
			firstErr = err
			return token
		}
		if post != nil {
			v = post(v, t)
		}
		return v
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}
