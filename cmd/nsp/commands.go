package nsp

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/nsp/internal/version"
	"github.com/arthur-debert/nsp/pkg/cobrax/topics"
	"github.com/arthur-debert/nsp/pkg/commands"
	"github.com/arthur-debert/nsp/pkg/core"
	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/launcher"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/output"
	"github.com/arthur-debert/nsp/pkg/paths"
	"github.com/arthur-debert/nsp/pkg/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics
var topicsFS embed.FS

// markdownWidth is the word wrap of rendered help topics
const markdownWidth = 80

// Deps replaces system collaborators, for tests. Zero values use the real
// system.
type Deps struct {
	Runner   launcher.Runner
	Prompter prompt.Prompter
}

type globalOptions struct {
	verbosity  int
	configPath string
	noColor    bool
	deps       Deps
}

func (g *globalOptions) loadApp() (*core.App, error) {
	return core.NewApp(core.Options{
		ConfigPath: g.configPath,
		Runner:     g.deps.Runner,
	})
}

func (g *globalOptions) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	return output.NewRenderer(cmd.OutOrStdout(), g.noColor)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command with replaced collaborators
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	initTemplateFormatting()

	g := &globalOptions{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "nsp",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: g.verbosity,
				NoColor:   g.noColor,
				LogFile:   paths.New().LogFilePath(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand given
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd(g))
	rootCmd.AddCommand(newTemplatesCmd(g))
	rootCmd.AddCommand(newProjectsCmd(g))
	rootCmd.AddCommand(newVarsCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newTopicsCmd())

	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topicRenderer{g: g},
		}
		if err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// topicRenderer renders markdown topics with glamour unless color is off.
// The --no-color flag is only known once the command line is parsed.
type topicRenderer struct {
	g *globalOptions
}

func (r topicRenderer) Render(content string, format string) string {
	if output.ColorDisabled(os.Stdout, r.g.noColor) {
		return content
	}
	glamourRenderer := &topics.GlamourRenderer{Style: "auto", Width: markdownWidth}
	return glamourRenderer.Render(content, format)
}

// templateNamesCompletion provides shell completion for template names
func templateNamesCompletion(g *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		app, err := g.loadApp()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := app.Catalog.Names()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newNewCmd(g *globalOptions) *cobra.Command {
	var opts commands.CreateProjectOptions

	cmd := &cobra.Command{
		Use:     "new [name]",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.ProjectName = args[0]
			}
			opts.Prompter = g.deps.Prompter

			app, err := g.loadApp()
			if err != nil {
				return err
			}

			log.Info().
				Str("project", opts.ProjectName).
				Str("template", opts.TemplateName).
				Bool("dryRun", opts.DryRun).
				Msg("Creating project")

			result, err := commands.CreateProject(app, opts)
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderProject(result)
		},
	}

	cmd.Flags().StringVarP(&opts.TemplateName, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, MsgFlagVar)
	cmd.Flags().StringVar(&opts.VarsFile, "vars-file", "", MsgFlagVarsFile)
	cmd.Flags().StringVar(&opts.OpenPath, "open", "", MsgFlagOpen)
	cmd.Flags().BoolVar(&opts.NoOpen, "no-open", false, MsgFlagNoOpen)
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, MsgFlagDryRun)
	cmd.MarkFlagsMutuallyExclusive("open", "no-open")
	_ = cmd.RegisterFlagCompletionFunc("template", templateNamesCompletion(g))

	return cmd
}

func newTemplatesCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgTemplatesListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			result, err := commands.ListTemplates(app)
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderTemplates(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "show <template>",
		Short:             MsgTemplatesShowShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateNamesCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			result, err := commands.ShowTemplate(app, args[0])
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderTemplateDetail(result)
		},
	})

	var addOpts commands.AddTemplateOptions
	addCmd := &cobra.Command{
		Use:   "add <dir>",
		Short: MsgTemplatesAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addOpts.Source = args[0]
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			result, err := commands.AddTemplate(app, addOpts)
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderInstall(result)
		},
	}
	addCmd.Flags().StringVar(&addOpts.Name, "name", "", MsgFlagName)
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "install <archive>...",
		Short:   MsgTemplatesInstallShort,
		Example: MsgInstallExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			result, err := commands.InstallTemplates(cmd.Context(), app, commands.InstallTemplatesOptions{Archives: args})
			if result != nil {
				if renderErr := r.RenderInstall(result); renderErr != nil {
					return renderErr
				}
			}
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "open",
		Short: MsgTemplatesOpenShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			dir, err := commands.RevealTemplates(app)
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderPath(MsgRevealedTemplates, dir)
		},
	})

	return cmd
}

func newProjectsCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Short:   MsgProjectsShort,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "open",
		Short: MsgProjectsOpenShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			dir, err := commands.RevealProjects(app)
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderPath(MsgRevealedProjects, dir)
		},
	})

	return cmd
}

func newVarsCmd(g *globalOptions) *cobra.Command {
	var opts commands.ListVariablesOptions

	cmd := &cobra.Command{
		Use:     "vars",
		Short:   MsgVarsShort,
		Long:    MsgVarsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			vars, err := commands.ListVariables(app, opts)
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderVariables(vars)
		},
	}

	cmd.Flags().StringVarP(&opts.TemplateName, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&opts.ProjectName, "name", "", MsgFlagName)
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, MsgFlagVar)
	cmd.Flags().StringVar(&opts.VarsFile, "vars-file", "", MsgFlagVarsFile)
	_ = cmd.RegisterFlagCompletionFunc("template", templateNamesCompletion(g))

	return cmd
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var opts commands.GenConfigOptions

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.loadApp()
			if err != nil {
				return err
			}
			result, err := commands.GenConfig(app, opts)
			if err != nil {
				return err
			}

			if !opts.Write {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), result.ConfigContent)
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			if len(result.FilesWritten) == 0 {
				return r.RenderWarning(MsgConfigKept)
			}
			for _, f := range result.FilesWritten {
				if err := r.RenderPath(MsgConfigWritten, f); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&opts.Path, "path", "", MsgFlagPath)
	cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = paths.ExpandHome(args[0])
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
			}

			header := &doc.GenManHeader{
				Title:   "NSP",
				Section: "1",
				Source:  "nsp " + version.Version,
				Manual:  "nsp manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileIO, "failed to generate man pages")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", MsgManWritten, dir)
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// delegate to "help topics"
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return cmd.Help()
		},
	}
}
