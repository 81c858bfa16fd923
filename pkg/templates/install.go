package templates

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/codeclysm/extract/v3"
	"github.com/otiai10/copy"
	"github.com/rs/zerolog"
)

// archiveSuffixes are the archive extensions accepted by InstallArchive,
// longest first
var archiveSuffixes = []string{".tar.gz", ".tgz", ".zip"}

// ArchiveTemplateName returns the template name an archive installs as
func ArchiveTemplateName(archivePath string) (string, bool) {
	base := filepath.Base(archivePath)
	lower := strings.ToLower(base)
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(lower, suffix) && len(base) > len(suffix) {
			return base[:len(base)-len(suffix)], true
		}
	}
	return "", false
}

// Installer writes templates into the user template directory. It works on
// the OS filesystem because archive extraction and directory copy do.
type Installer struct {
	root   string
	logger zerolog.Logger
}

// NewInstaller creates an installer targeting root
func NewInstaller(root string) *Installer {
	return &Installer{
		root:   root,
		logger: logging.GetLogger("templates.installer"),
	}
}

// Root returns the directory templates are installed into
func (i *Installer) Root() string {
	return i.root
}

// EnsureRoot creates the template directory if needed
func (i *Installer) EnsureRoot() error {
	if err := os.MkdirAll(i.root, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create template directory %s", i.root).
			WithDetail("path", i.root)
	}
	return nil
}

// InstallArchive extracts a .zip, .tgz or .tar.gz archive as a template
// named after the archive. An installed template of the same name is
// replaced. The archive may hold the template directory itself or its
// contents directly.
func (i *Installer) InstallArchive(ctx context.Context, archivePath string) (types.TemplateDescriptor, error) {
	name, ok := ArchiveTemplateName(archivePath)
	if !ok {
		return types.TemplateDescriptor{}, errors.Newf(errors.ErrInvalidInput,
			"unsupported archive %s (expected .zip, .tgz or .tar.gz)", archivePath)
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return types.TemplateDescriptor{}, errors.Wrapf(err, errors.ErrFileIO, "failed to open archive %s", archivePath)
	}
	defer func() { _ = f.Close() }()

	if err := i.EnsureRoot(); err != nil {
		return types.TemplateDescriptor{}, err
	}

	staging, err := os.MkdirTemp(i.root, ".install-")
	if err != nil {
		return types.TemplateDescriptor{}, errors.Wrap(err, errors.ErrDirCreate, "failed to create staging directory")
	}
	defer func() { _ = os.RemoveAll(staging) }()

	i.logger.Debug().Str("archive", archivePath).Str("staging", staging).Msg("Extracting template archive")
	if err := extract.Archive(ctx, f, staging, func(s string) string { return s }); err != nil {
		return types.TemplateDescriptor{}, errors.Wrapf(err, errors.ErrArchiveExtract,
			"template archive extraction failed for %s", archivePath).WithDetail("archive", archivePath)
	}

	dest := filepath.Join(i.root, name)
	if err := i.replace(archiveRoot(staging, name), dest); err != nil {
		return types.TemplateDescriptor{}, err
	}

	i.logger.Info().Str("template", name).Str("path", dest).Msg("Installed template archive")
	return types.TemplateDescriptor{Name: name, Path: dest}, nil
}

// AddDirectory copies a directory into the template directory. An empty
// name uses the directory's base name.
func (i *Installer) AddDirectory(src, name string) (types.TemplateDescriptor, error) {
	src = filepath.Clean(src)
	if name == "" {
		name = filepath.Base(src)
	}
	if name == "." || name == string(filepath.Separator) || strings.ContainsAny(name, `/\`) {
		return types.TemplateDescriptor{}, errors.Newf(errors.ErrInvalidInput, "invalid template name %q", name)
	}

	info, err := os.Stat(src)
	if err != nil {
		return types.TemplateDescriptor{}, errors.Wrapf(err, errors.ErrNotFound, "template source %s not found", src)
	}
	if !info.IsDir() {
		return types.TemplateDescriptor{}, errors.Newf(errors.ErrInvalidInput, "template source %s is not a directory", src)
	}
	if err := i.EnsureRoot(); err != nil {
		return types.TemplateDescriptor{}, err
	}

	dest := filepath.Join(i.root, name)
	if err := os.RemoveAll(dest); err != nil {
		return types.TemplateDescriptor{}, errors.Wrapf(err, errors.ErrFileIO, "failed to remove existing template %s", dest)
	}
	if err := copy.Copy(src, dest); err != nil {
		return types.TemplateDescriptor{}, errors.Wrapf(err, errors.ErrFileIO, "template copying failed for %s", src)
	}

	i.logger.Info().Str("template", name).Str("path", dest).Msg("Added template directory")
	return types.TemplateDescriptor{Name: name, Path: dest}, nil
}

// archiveRoot picks the template directory inside an extracted archive: a
// directory named like the template, else a single top-level directory,
// else the extraction directory itself
func archiveRoot(staging, name string) string {
	if info, err := os.Stat(filepath.Join(staging, name)); err == nil && info.IsDir() {
		return filepath.Join(staging, name)
	}
	entries, err := os.ReadDir(staging)
	if err == nil && len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(staging, entries[0].Name())
	}
	return staging
}

// replace moves src to dest, removing whatever was at dest first
func (i *Installer) replace(src, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "failed to remove existing template %s", dest)
	}
	if err := os.Rename(src, dest); err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "failed to move template into %s", dest)
	}
	// staging directories are created private
	if err := os.Chmod(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileIO, "failed to set permissions of %s", dest)
	}
	return nil
}
