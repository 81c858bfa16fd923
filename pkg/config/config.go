package config

import (
	"os"

	"github.com/arthur-debert/nsp/pkg/paths"
)

// Project holds where projects are created
type Project struct {
	Root            string `koanf:"root"`
	SeparateStorage bool   `koanf:"separate_storage"`
	Storage         string `koanf:"storage"`
}

// Markers holds the substrings identifying descriptor files
type Markers struct {
	Project   string `koanf:"project"`
	Workspace string `koanf:"workspace"`
}

// Editor holds editor discovery settings
type Editor struct {
	Executable string `koanf:"executable"`
	Platform   string `koanf:"platform"`
}

// Templates holds template lookup settings
type Templates struct {
	Paths  []string `koanf:"paths"`
	Ignore []string `koanf:"ignore"`
}

// Permissions holds the modes of created directories and files
type Permissions struct {
	Directory os.FileMode `koanf:"directory"`
	File      os.FileMode `koanf:"file"`
}

// Config is the main configuration structure
type Config struct {
	Project     Project     `koanf:"project"`
	Markers     Markers     `koanf:"markers"`
	Editor      Editor      `koanf:"editor"`
	Templates   Templates   `koanf:"templates"`
	Permissions Permissions `koanf:"permissions"`

	// Source is the user config file that was loaded, "" if none
	Source string `koanf:"-"`
}

// ProjectRoots returns the directory projects are created in and the
// directory descriptor files are stored in. Without separate storage both
// are the project root.
func (c *Config) ProjectRoots() (root, storage string) {
	root = paths.ExpandHome(c.Project.Root)
	if !c.Project.SeparateStorage || c.Project.Storage == "" {
		return root, root
	}
	return root, paths.ExpandHome(c.Project.Storage)
}

// TemplatePaths returns the extra template directories with ~ expanded
func (c *Config) TemplatePaths() []string {
	out := make([]string, 0, len(c.Templates.Paths))
	for _, p := range c.Templates.Paths {
		if p != "" {
			out = append(out, paths.ExpandHome(p))
		}
	}
	return out
}
