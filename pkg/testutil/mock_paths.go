package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/nsp/pkg/paths"
)

// MockPaths implements paths.Paths with every directory under one root
type MockPaths struct {
	Root string
}

var _ paths.Paths = (*MockPaths)(nil)

// NewMockPaths creates mock paths under root
func NewMockPaths(root string) *MockPaths {
	return &MockPaths{Root: root}
}

// DataDir returns root/data
func (m *MockPaths) DataDir() string {
	return filepath.Join(m.Root, "data")
}

// ConfigDir returns root/config
func (m *MockPaths) ConfigDir() string {
	return filepath.Join(m.Root, "config")
}

// StateDir returns root/state
func (m *MockPaths) StateDir() string {
	return filepath.Join(m.Root, "state")
}

// TemplatesDir returns root/data/templates
func (m *MockPaths) TemplatesDir() string {
	return filepath.Join(m.DataDir(), paths.TemplatesDirName)
}

// ConfigFile returns root/config/config.toml
func (m *MockPaths) ConfigFile() string {
	return filepath.Join(m.ConfigDir(), paths.ConfigFileName)
}

// LogFilePath returns root/state/nsp.log
func (m *MockPaths) LogFilePath() string {
	return filepath.Join(m.StateDir(), paths.LogFileName)
}
