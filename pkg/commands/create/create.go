package create

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/materialize"
	"github.com/arthur-debert/nsp/pkg/paths"
	"github.com/arthur-debert/nsp/pkg/prompt"
	"github.com/arthur-debert/nsp/pkg/templates"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/arthur-debert/nsp/pkg/variables"
)

// Variables bound for every run
const (
	VarType           = "type"
	VarTemplateFolder = "template_folder"
	VarProjectName    = "project_name"
	VarFolderName     = "folder_name"
	VarProjectRoot    = "project_root"
	VarProjectFolder  = "project_folder"
)

// CreateProjectOptions defines the options for the CreateProject command.
type CreateProjectOptions struct {
	// ProjectName is the raw project name. Empty means ask.
	ProjectName string
	// TemplateName selects the template. Empty means ask.
	TemplateName string
	// Vars are extra name=value bindings, applied last
	Vars []string
	// VarsFile is a YAML or TOML file of extra bindings
	VarsFile string
	// OpenPath is opened instead of the project's descriptor
	OpenPath string
	// NoOpen skips launching the editor
	NoOpen bool
	// DryRun plans without writing or launching
	DryRun bool
	// Prompter answers the questions the options leave open
	Prompter prompt.Prompter
}

// CreateProject materializes a template into a new project folder and opens
// it. When the project folder already exists nothing is written: its
// descriptor, or the folder itself, is opened instead.
func CreateProject(app *core.App, opts CreateProjectOptions) (*types.ProjectResult, error) {
	log := logging.GetLogger("commands.create")
	if opts.Prompter == nil {
		opts.Prompter = prompt.New()
	}

	name := strings.TrimSpace(opts.ProjectName)
	if name == "" {
		var err error
		if name, err = prompt.ProjectName(opts.Prompter); err != nil {
			return nil, err
		}
	}

	folderName := materialize.SanitizeFolderName(name)
	root, storage := app.Config.ProjectRoots()
	projectFolder := filepath.Join(root, folderName)
	storageFolder := filepath.Join(storage, folderName)

	log.Info().
		Str("project", name).
		Str("folder", projectFolder).
		Bool("dryRun", opts.DryRun).
		Msg("Creating project")

	result := &types.ProjectResult{
		Name:        name,
		ProjectRoot: projectFolder,
		DryRun:      opts.DryRun,
	}

	if isDir(app.FS, projectFolder) {
		log.Info().Str("folder", projectFolder).Msg("Project already exists; opening it")
		result.Existing = true
		markers := app.MaterializeOptions().Markers
		result.ProjectFile, result.WorkspaceFile = FindDescriptors(app.FS, markers, storageFolder, projectFolder)
		if result.ProjectFile == "" && result.WorkspaceFile == "" {
			result.Warnings = append(result.Warnings, "project folder already exists, but no project file was found")
		}
	} else {
		if err := materializeProject(app, opts, result, root, storageFolder); err != nil {
			return nil, err
		}
	}

	result.OpenTarget = OpenTarget(opts.OpenPath, result)
	if opts.NoOpen || opts.DryRun {
		return result, nil
	}

	if err := app.Launcher.Open(result.OpenTarget, projectFolder); err != nil {
		if !errors.IsErrorCode(err, errors.ErrLaunchNotFound) {
			return nil, err
		}
		result.Warnings = append(result.Warnings, err.Error())
	}
	return result, nil
}

func materializeProject(app *core.App, opts CreateProjectOptions, result *types.ProjectResult, root, storageFolder string) error {
	templateName := opts.TemplateName
	if templateName == "" {
		names, err := app.Catalog.Names()
		if err != nil {
			return err
		}
		if templateName, err = prompt.Template(opts.Prompter, names); err != nil {
			return err
		}
	}

	desc, err := app.Catalog.Find(templateName)
	if err != nil {
		return err
	}

	vars, err := RunVariables(app, desc, opts, root, result.Name)
	if err != nil {
		return err
	}

	run := materialize.Run{
		Template:    desc,
		Destination: result.ProjectRoot,
		Storage:     storageFolder,
		Vars:        vars,
	}
	plan, err := materialize.NewPlanner(app.FS, app.MaterializeOptions()).Plan(run)
	if err != nil {
		return err
	}
	if err := materialize.NewExecutor(app.FS, opts.DryRun).Apply(plan); err != nil {
		return err
	}

	result.Template = desc.Name
	result.ProjectFile = plan.ProjectFile
	result.WorkspaceFile = plan.WorkspaceFile
	result.Operations = plan.Operations
	return nil
}

// RunVariables builds the registry overlay for one run. Bindings are applied
// in order, later ones winning: run variables, template manifest defaults,
// the vars file, then explicit assignments.
func RunVariables(app *core.App, desc types.TemplateDescriptor, opts CreateProjectOptions, root, name string) (*variables.Registry, error) {
	folderName := materialize.SanitizeFolderName(name)
	vars := app.Vars.Overlay()

	now := time.Now
	if app.Now != nil {
		now = app.Now
	}
	if err := core.PinClock(vars, now()); err != nil {
		return nil, err
	}

	if err := vars.SetAll(map[string]string{
		VarType:                      desc.Name,
		VarTemplateFolder:            filepath.ToSlash(desc.Path),
		VarProjectName:               name,
		VarFolderName:                folderName,
		VarProjectRoot:               filepath.ToSlash(root),
		VarProjectFolder:             filepath.ToSlash(filepath.Join(root, folderName)),
		materialize.VarProjectFile:   "",
		materialize.VarWorkspaceFile: "",
	}); err != nil {
		return nil, err
	}

	manifest, err := templates.LoadManifest(app.FS, desc.Path)
	if err != nil {
		return nil, err
	}
	defaults, err := manifest.Defaults()
	if err != nil {
		return nil, err
	}
	if err := vars.SetAll(defaults); err != nil {
		return nil, err
	}

	if opts.VarsFile != "" {
		fileVars, err := variables.LoadFile(paths.ExpandHome(opts.VarsFile))
		if err != nil {
			return nil, err
		}
		if err := vars.SetAll(fileVars); err != nil {
			return nil, err
		}
	}

	assigned, err := variables.ParseAssignments(opts.Vars)
	if err != nil {
		return nil, err
	}
	if err := vars.SetAll(assigned); err != nil {
		return nil, err
	}
	return vars, nil
}

// OpenTarget picks what the editor opens: the explicit path, else the
// workspace descriptor, else the project descriptor, else the project root
func OpenTarget(explicit string, result *types.ProjectResult) string {
	switch {
	case explicit != "":
		return paths.ExpandHome(explicit)
	case result.WorkspaceFile != "":
		return result.WorkspaceFile
	case result.ProjectFile != "":
		return result.ProjectFile
	default:
		return result.ProjectRoot
	}
}

// FindDescriptors searches each directory tree in turn for descriptor files.
// The first directory, in walk order, holding a descriptor wins; both of its
// descriptors are reported when it holds both.
func FindDescriptors(fsys types.FS, markers materialize.Markers, roots ...string) (projectFile, workspaceFile string) {
	seen := make(map[string]bool, len(roots))
	for _, root := range roots {
		if seen[root] || !isDir(fsys, root) {
			continue
		}
		seen[root] = true
		if p, w, ok := findIn(fsys, markers, root); ok {
			return p, w
		}
	}
	return "", ""
}

func findIn(fsys types.FS, markers materialize.Markers, dir string) (projectFile, workspaceFile string, found bool) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return "", "", false
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		switch markers.Classify(entry.Name()) {
		case materialize.DescriptorProject:
			if projectFile == "" {
				projectFile = path
			}
		case materialize.DescriptorWorkspace:
			if workspaceFile == "" {
				workspaceFile = path
			}
		}
	}
	if projectFile != "" || workspaceFile != "" {
		return projectFile, workspaceFile, true
	}

	for _, sub := range subdirs {
		if p, w, ok := findIn(fsys, markers, sub); ok {
			return p, w, true
		}
	}
	return "", "", false
}

func isDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
