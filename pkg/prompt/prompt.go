// Package prompt asks the user for a project name and a template.
//
// Prompting goes through the Prompter interface so commands can be driven
// by a terminal (pterm), by scripted answers in tests, or refuse to prompt
// when stdin is not a terminal.
package prompt

import (
	"os"
	"strings"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// DefaultProjectName is offered when asking for a project name
const DefaultProjectName = "New Project"

// InputConfig configures a text input prompt
type InputConfig struct {
	Message string
	Default string
}

// SelectConfig configures a single-choice prompt
type SelectConfig struct {
	Message string
	Options []string
	Default string
}

// Prompter asks questions
type Prompter interface {
	Input(cfg InputConfig) (string, error)
	Select(cfg SelectConfig) (string, error)
}

// IsInteractive reports whether stdin is a terminal
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a terminal prompter when stdin is a terminal and a
// non-interactive one otherwise
func New() Prompter {
	if IsInteractive() {
		return Terminal{}
	}
	return NonInteractive{}
}

// Terminal prompts with pterm interactive widgets
type Terminal struct{}

// Input implements Prompter
func (Terminal) Input(cfg InputConfig) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cfg.Default).
		Show(cfg.Message)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCancelled, "input cancelled")
	}
	return answer, nil
}

// Select implements Prompter
func (Terminal) Select(cfg SelectConfig) (string, error) {
	if len(cfg.Options) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "nothing to choose from")
	}
	sel := pterm.DefaultInteractiveSelect.WithOptions(cfg.Options)
	if cfg.Default != "" {
		sel = sel.WithDefaultOption(cfg.Default)
	}
	answer, err := sel.Show(cfg.Message)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCancelled, "selection cancelled")
	}
	return answer, nil
}

// NonInteractive refuses every question
type NonInteractive struct{}

// Input implements Prompter
func (NonInteractive) Input(cfg InputConfig) (string, error) {
	return "", errors.Newf(errors.ErrInvalidInput, "%s: no terminal to prompt on, pass it as an argument", cfg.Message)
}

// Select implements Prompter
func (NonInteractive) Select(cfg SelectConfig) (string, error) {
	return "", errors.Newf(errors.ErrInvalidInput, "%s: no terminal to prompt on, pass it as a flag", cfg.Message)
}

// Scripted answers prompts from a fixed list, in order
type Scripted struct {
	Answers []string
	// Asked records every prompt message
	Asked []string
}

// Input implements Prompter. An empty scripted answer takes the default.
func (s *Scripted) Input(cfg InputConfig) (string, error) {
	answer, err := s.next(cfg.Message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return cfg.Default, nil
	}
	return answer, nil
}

// Select implements Prompter. The answer must be one of the options.
func (s *Scripted) Select(cfg SelectConfig) (string, error) {
	answer, err := s.next(cfg.Message)
	if err != nil {
		return "", err
	}
	for _, opt := range cfg.Options {
		if opt == answer {
			return answer, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "%q is not one of %s", answer, strings.Join(cfg.Options, ", "))
}

func (s *Scripted) next(message string) (string, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return "", errors.Newf(errors.ErrCancelled, "no answer for %q", message)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

// ProjectName asks for a project name. A blank answer cancels.
func ProjectName(p Prompter) (string, error) {
	name, err := p.Input(InputConfig{Message: "Project Name", Default: DefaultProjectName})
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New(errors.ErrCancelled, "no project name given")
	}
	return name, nil
}

// Template asks which template to use
func Template(p Prompter, names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New(errors.ErrTemplateNotFound, "no templates installed")
	}
	return p.Select(SelectConfig{Message: "Template", Options: names, Default: names[0]})
}
