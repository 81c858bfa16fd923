package nsp

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort             = "Create projects from templates"
	MsgNewShort              = "Create a project from a template and open it"
	MsgTemplatesShort        = "Manage project templates"
	MsgTemplatesListShort    = "List available templates"
	MsgTemplatesShowShort    = "Describe a template"
	MsgTemplatesAddShort     = "Copy a directory into the template directory"
	MsgTemplatesInstallShort = "Install templates from archives"
	MsgTemplatesOpenShort    = "Open the template directory in the file manager"
	MsgProjectsShort         = "Work with the project root"
	MsgProjectsOpenShort     = "Open the project root in the file manager"
	MsgVarsShort             = "List variables and their values"
	MsgConfigShort           = "Output or write the default configuration"
	MsgVersionShort          = "Print version information"
	MsgCompletionShort       = "Generate shell completion script"
	MsgManShort              = "Generate man pages"
	MsgTopicsShort           = "Display available documentation topics"

	// Status messages
	MsgRevealedTemplates = "Template directory:"
	MsgRevealedProjects  = "Project root:"
	MsgConfigWritten     = "Wrote configuration to"
	MsgConfigKept        = "Configuration file already exists; use --force to overwrite"
	MsgManWritten        = "Wrote man pages to"
	MsgVersionFormat     = "nsp version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/nsp/config.toml)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagTemplate = "Template to create the project from"
	MsgFlagVar      = "Bind a variable, as name=value (repeatable)"
	MsgFlagVarsFile = "YAML or TOML file of variables"
	MsgFlagOpen     = "Open this path instead of the project file"
	MsgFlagNoOpen   = "Do not launch the editor"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagName     = "Template or project name"
	MsgFlagWrite    = "Write the config to a file instead of stdout"
	MsgFlagPath     = "File to write the config to"
	MsgFlagForce    = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/templates-long.txt
	msgTemplatesLongRaw string
	MsgTemplatesLong    = strings.TrimSpace(msgTemplatesLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/vars-long.txt
	msgVarsLongRaw string
	MsgVarsLong    = strings.TrimSpace(msgVarsLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
