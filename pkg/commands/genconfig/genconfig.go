package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/nsp/pkg/config"
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/paths"
	"github.com/arthur-debert/nsp/pkg/types"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	// Write saves the config instead of only returning it
	Write bool
	// Path is where to write; empty means the user config file
	Path string
	// Force overwrites an existing file
	Force bool
}

// GenConfig outputs or writes the default configuration
func GenConfig(app *core.App, opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.Generate(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	target := paths.ExpandHome(opts.Path)
	if target == "" {
		target = app.Paths.ConfigFile()
	}
	logger.Info().Str("path", target).Msg("Writing config file")

	if _, err := app.FS.Stat(target); err == nil && !opts.Force {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(target)
	if err := app.FS.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := app.FS.WriteFile(target, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileIO, "failed to write config to %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
