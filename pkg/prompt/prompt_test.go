package prompt

import (
	"testing"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectName(t *testing.T) {
	s := &Scripted{Answers: []string{"  My App  "}}
	name, err := ProjectName(s)
	require.NoError(t, err)
	assert.Equal(t, "My App", name)
	assert.Equal(t, []string{"Project Name"}, s.Asked)
}

func TestProjectNameDefault(t *testing.T) {
	name, err := ProjectName(&Scripted{Answers: []string{""}})
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectName, name)
}

func TestProjectNameCancelled(t *testing.T) {
	_, err := ProjectName(&Scripted{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))

	_, err = ProjectName(&Scripted{Answers: []string{"   "}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))
}

func TestTemplate(t *testing.T) {
	choice, err := Template(&Scripted{Answers: []string{"web"}}, []string{"go-cli", "web"})
	require.NoError(t, err)
	assert.Equal(t, "web", choice)

	_, err = Template(&Scripted{Answers: []string{"rust"}}, []string{"go-cli", "web"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Template(&Scripted{}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestNonInteractive(t *testing.T) {
	_, err := ProjectName(NonInteractive{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Template(NonInteractive{}, []string{"a"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
