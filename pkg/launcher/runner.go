package launcher

import (
	"os/exec"
)

// Runner starts external programs
type Runner interface {
	// LookPath resolves file like exec.LookPath
	LookPath(file string) (string, error)
	// Start launches the program without waiting for it
	Start(name string, args ...string) error
}

// ExecRunner runs programs with os/exec
type ExecRunner struct{}

// LookPath implements Runner
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Start implements Runner. The child is released so it outlives nsp.
func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
