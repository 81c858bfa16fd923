package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for nsp
	EnvDataDir = "NSP_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for nsp
	EnvConfigDir = "NSP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for nsp
	EnvStateDir = "NSP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names under the XDG directories
const (
	// AppDirName is the directory name for nsp-specific files
	AppDirName = "nsp"

	// TemplatesDirName is the subdirectory of the data dir holding templates
	TemplatesDirName = "templates"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "nsp.log"
)

// Paths resolves the directories nsp reads and writes
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	TemplatesDir() string
	ConfigFile() string
	LogFilePath() string
}

type paths struct {
	data   string
	config string
	state  string
}

// New resolves the XDG directories, respecting the NSP_* overrides
func New() Paths {
	p := &paths{
		data:   filepath.Join(xdg.DataHome, AppDirName),
		config: filepath.Join(xdg.ConfigHome, AppDirName),
		state:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.data = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.config = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.state = ExpandHome(dir)
	}
	return p
}

// DataDir returns the data directory for nsp
func (p *paths) DataDir() string {
	return p.data
}

// ConfigDir returns the config directory for nsp
func (p *paths) ConfigDir() string {
	return p.config
}

// StateDir returns the state directory for nsp
func (p *paths) StateDir() string {
	return p.state
}

// TemplatesDir returns the user template directory
func (p *paths) TemplatesDir() string {
	return filepath.Join(p.data, TemplatesDirName)
}

// ConfigFile returns the default user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.config, ConfigFileName)
}

// LogFilePath returns the log file location
func (p *paths) LogFilePath() string {
	return filepath.Join(p.state, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	// ~user is left alone
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
