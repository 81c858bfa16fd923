package variables

import "strings"

// Transform directive letters
const (
	TransformUpper      = 'U'
	TransformLower      = 'L'
	TransformHyphen     = '-'
	TransformUnderscore = '_'
)

// CaseTransform changes the letter case of a value
type CaseTransform int

const (
	CaseNone CaseTransform = iota
	CaseUpper
	CaseLower
)

// Transform is a parsed ${name:TRANSFORM} directive
type Transform struct {
	Case CaseTransform
	// Separator replaces spaces when non-zero
	Separator rune
}

// ParseTransform parses a directive such as "U-" or "L_".
// U wins over L and - wins over _ regardless of their order in the directive.
// Unknown letters are ignored.
func ParseTransform(directive string) Transform {
	var t Transform
	switch {
	case strings.ContainsRune(directive, TransformUpper):
		t.Case = CaseUpper
	case strings.ContainsRune(directive, TransformLower):
		t.Case = CaseLower
	}
	switch {
	case strings.ContainsRune(directive, TransformHyphen):
		t.Separator = TransformHyphen
	case strings.ContainsRune(directive, TransformUnderscore):
		t.Separator = TransformUnderscore
	}
	return t
}

// IsZero reports whether the transform leaves values untouched
func (t Transform) IsZero() bool {
	return t.Case == CaseNone && t.Separator == 0
}

// Apply runs the case transform first, then the separator transform
func (t Transform) Apply(v string) string {
	switch t.Case {
	case CaseUpper:
		v = strings.ToUpper(v)
	case CaseLower:
		v = strings.ToLower(v)
	}
	if t.Separator != 0 {
		v = strings.ReplaceAll(v, " ", string(t.Separator))
	}
	return v
}

// String renders the transform back to directive form
func (t Transform) String() string {
	var b strings.Builder
	switch t.Case {
	case CaseUpper:
		b.WriteRune(TransformUpper)
	case CaseLower:
		b.WriteRune(TransformLower)
	}
	if t.Separator != 0 {
		b.WriteRune(t.Separator)
	}
	return b.String()
}
