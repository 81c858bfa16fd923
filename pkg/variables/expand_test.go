package variables

import (
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	reg := New()
	require.NoError(t, reg.SetAll(map[string]string{
		"type":         "Demo",
		"project_name": "Foo Bar",
		"with.dot":     "dotted",
		"nested":       "${type}",
	}))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no placeholders", "plain text\n", "plain text\n"},
		{"single", "${type}.txt", "Demo.txt"},
		{"transform", "Hello ${project_name:L-}", "Hello foo-bar"},
		{"repeated", "${type}/${type}", "Demo/Demo"},
		{"dotted name", "${with.dot}", "dotted"},
		{"no recursive expansion", "${nested}", "${type}"},
		{"empty transform is not a placeholder", "${type:}", "${type:}"},
		{"unknown transform letters are not a placeholder", "${type:X}", "${type:X}"},
		{"dollar without braces", "$type costs $5", "$type costs $5"},
		{"mixed", `{"name": "${project_name:U_}", "kind": "${type:L}"}`, `{"name": "FOO_BAR", "kind": "demo"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Expand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandUndefined(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Set("type", "Demo"))

	_, err := reg.Expand("${type} ${missing:U} ${other}")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedVariable))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["variable"])
}

func TestFindPlaceholders(t *testing.T) {
	found := FindPlaceholders("a ${x} b ${y.z:U-}")
	require.Len(t, found, 2)
	assert.Equal(t, Placeholder{Token: "${x}", Name: "x"}, found[0])
	assert.Equal(t, "y.z", found[1].Name)
	assert.Equal(t, Transform{Case: CaseUpper, Separator: '-'}, found[1].Transform)

	assert.True(t, HasPlaceholders("${a}"))
	assert.False(t, HasPlaceholders("${}"))
}

func TestExpandName(t *testing.T) {
	reg := New()
	require.NoError(t, reg.SetAll(map[string]string{
		"project_name": "My Cool/App",
		"win":          `a\b`,
	}))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"separator transform", "${project_name:U_}.sublime-project", "MY_COOL_APP.sublime-project"},
		{"dash transform", "${project_name:L-}", "my-cool-app"},
		{"no transform", "${project_name}", "My Cool-App"},
		{"backslash", "${win}.txt", "a-b.txt"},
		{"literal separators kept", "src/${win}", "src/a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.ExpandName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	content, err := reg.Expand("${project_name}")
	require.NoError(t, err)
	assert.Equal(t, "My Cool/App", content, "content expansion keeps separators")
}
