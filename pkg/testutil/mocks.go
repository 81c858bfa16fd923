package testutil

import (
	"os/exec"
	"strings"
)

// StartCall records one process start
type StartCall struct {
	Name string
	Args []string
}

// MockRunner is a stand-in for the launcher's process runner. By default
// every executable is found and starts successfully.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	StartFunc    func(name string, args ...string) error

	// Missing lists executables LookPath does not find
	Missing []string
	// Started records successful starts in order
	Started []StartCall
}

// LookPath runs the mock's lookup function
func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	for _, missing := range m.Missing {
		if missing == file {
			return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
		}
	}
	return file, nil
}

// Start runs the mock's start function and records the call
func (m *MockRunner) Start(name string, args ...string) error {
	if m.StartFunc != nil {
		if err := m.StartFunc(name, args...); err != nil {
			return err
		}
	}
	m.Started = append(m.Started, StartCall{Name: name, Args: args})
	return nil
}

// Commands renders the recorded starts as command lines
func (m *MockRunner) Commands() []string {
	out := make([]string, len(m.Started))
	for i, call := range m.Started {
		out[i] = strings.TrimSpace(call.Name + " " + strings.Join(call.Args, " "))
	}
	return out
}
