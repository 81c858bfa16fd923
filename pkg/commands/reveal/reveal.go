package reveal

import (
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
)

// RevealTemplates shows the user template directory in the file manager,
// creating it first when needed. It returns the revealed directory.
func RevealTemplates(app *core.App) (string, error) {
	log := logging.GetLogger("commands.reveal")
	dir := app.Installer.Root()
	log.Debug().Str("dir", dir).Msg("Revealing template directory")

	if err := app.Installer.EnsureRoot(); err != nil {
		return "", err
	}
	if err := app.Launcher.Reveal(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// RevealProjects shows the project root in the file manager. The root must
// already exist.
func RevealProjects(app *core.App) (string, error) {
	log := logging.GetLogger("commands.reveal")
	root, _ := app.Config.ProjectRoots()
	log.Debug().Str("dir", root).Msg("Revealing project root")

	info, err := app.FS.Stat(root)
	if err != nil || !info.IsDir() {
		return "", errors.Newf(errors.ErrNotFound, "project root %s does not exist", root).
			WithDetail("path", root)
	}
	if err := app.Launcher.Reveal(root); err != nil {
		return "", err
	}
	return root, nil
}
