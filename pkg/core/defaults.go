package core

import (
	"strings"
	"time"

	"github.com/arthur-debert/nsp/pkg/variables"
)

// Default variable names
const (
	VarPackagesPath    = "packages_path"
	VarTemplatesPath   = "templates_path"
	VarHome            = "home"
	VarProgramFiles    = "program_files"
	VarProgramFilesX86 = "program_files_x86"
	VarProgramFilesX64 = "program_files_x64"
	VarDate            = "date"
	VarYear            = "year"
)

const (
	dateLayout = "2006-01-02"
	yearLayout = "2006"
)

// Environment is what default variables are computed from
type Environment struct {
	DataDir      string
	TemplatesDir string
	Home         string
	Getenv       func(string) string
	Now          func() time.Time
}

// RegisterDefaults binds the default variables in reg
func RegisterDefaults(reg *variables.Registry, env Environment) error {
	getenv := env.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	now := env.Now
	if now == nil {
		now = time.Now
	}

	programFiles := getenv("ProgramFiles")
	programFilesX64 := getenv("ProgramW6432")
	if programFilesX64 == "" {
		programFilesX64 = programFiles
	}
	programFilesX86 := getenv("ProgramFiles(x86)")
	if programFilesX86 == "" {
		programFilesX86 = programFiles
	}

	literals := map[string]string{
		VarPackagesPath:    env.DataDir,
		VarTemplatesPath:   env.TemplatesDir,
		VarHome:            env.Home,
		VarProgramFiles:    programFiles,
		VarProgramFilesX86: programFilesX86,
		VarProgramFilesX64: programFilesX64,
	}
	for name, value := range literals {
		literals[name] = slashes(value)
	}
	if err := reg.SetAll(literals); err != nil {
		return err
	}

	if err := reg.Register(VarDate, variables.Computed(func() string {
		return now().Format(dateLayout)
	})); err != nil {
		return err
	}
	return reg.Register(VarYear, variables.Computed(func() string {
		return now().Format(yearLayout)
	}))
}

// PinClock binds date and year in a run's overlay to the single instant t
func PinClock(reg *variables.Registry, t time.Time) error {
	return reg.SetAll(map[string]string{
		VarDate: t.Format(dateLayout),
		VarYear: t.Format(yearLayout),
	})
}

// slashes normalizes Windows separators
func slashes(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
