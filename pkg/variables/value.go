package variables

// Value is either a Literal or a Computed variable value
type Value interface {
	resolve() string
}

// Literal is a fixed string value
type Literal string

func (l Literal) resolve() string { return string(l) }

// Computed produces its value on every lookup. It must be deterministic for
// the duration of a run since a placeholder may be resolved many times.
type Computed func() string

func (c Computed) resolve() string {
	if c == nil {
		return ""
	}
	return c()
}
