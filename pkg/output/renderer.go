package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/arthur-debert/nsp/pkg/errors"
	"github.com/arthur-debert/nsp/pkg/logging"
	"github.com/arthur-debert/nsp/pkg/types"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// markdownWidth is the word wrap used for markdown output
const markdownWidth = 80

// Renderer writes command results to a terminal or a pipe. Views are Go
// templates whose text is styled through the "style" function.
type Renderer struct {
	w         io.Writer
	noColor   bool
	styles    map[string]lipgloss.Style
	templates *template.Template
}

// ColorDisabled reports whether output to w should be plain: when asked
// to, when NO_COLOR is set, or when w is not a terminal
func ColorDisabled(w io.Writer, noColor bool) bool {
	if noColor || termenv.EnvNoColor() {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	log := logging.GetLogger("output.renderer")
	noColor = ColorDisabled(w, noColor)

	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	log.Debug().
		Bool("noColor", noColor).
		Str("colorProfile", fmt.Sprintf("%v", lr.ColorProfile())).
		Msg("Creating renderer")

	cfg, err := parseStyles(stylesYAML)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		w:       w,
		noColor: noColor,
		styles:  buildStyles(lr, cfg),
	}

	tmpl, err := template.New("output").
		Funcs(template.FuncMap{"style": r.Style}).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl
	return r, nil
}

// NoColor reports whether styling is disabled
func (r *Renderer) NoColor() bool {
	return r.noColor
}

// Style renders text with the named style. Unknown styles leave text as is.
func (r *Renderer) Style(name, text string) string {
	if r.noColor {
		return text
	}
	style, ok := r.styles[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// RenderProject renders the outcome of nsp new
func (r *Renderer) RenderProject(result *types.ProjectResult) error {
	return r.execute("project.tmpl", result)
}

// RenderTemplates renders the template list
func (r *Renderer) RenderTemplates(list *types.TemplateListResult) error {
	return r.execute("templates.tmpl", list)
}

// RenderInstall renders the templates added by install or add
func (r *Renderer) RenderInstall(result *types.InstallResult) error {
	return r.execute("installed.tmpl", result)
}

// RenderPath renders a message followed by a styled path
func (r *Renderer) RenderPath(msg, path string) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n", msg, r.Style("Path", path))
	return err
}

// RenderVariables renders name = value pairs sorted by name
func (r *Renderer) RenderVariables(vars map[string]string) error {
	return r.execute("variables.tmpl", SortedVariables(vars))
}

// RenderTemplateDetail renders a template description as markdown
func (r *Renderer) RenderTemplateDetail(detail *types.TemplateDetailResult) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "template.md.tmpl", detail); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return r.RenderMarkdown(buf.String())
}

// RenderMarkdown renders markdown with glamour, or prints it unchanged when
// styling is disabled
func (r *Renderer) RenderMarkdown(md string) error {
	if r.noColor {
		_, err := io.WriteString(r.w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		_, err = io.WriteString(r.w, md)
		return err
	}
	out, err := renderer.Render(md)
	if err != nil {
		out = md
	}
	_, err = io.WriteString(r.w, out)
	return err
}

// RenderWarning renders a non-fatal problem
func (r *Renderer) RenderWarning(msg string) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n", r.Style("Warning", "Warning:"), msg)
	return err
}

// RenderError renders an error followed by its details
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.Style("Error", "Error:"), err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s %v\n", r.Style("Muted", k+":"), details[k])
	}

	_, writeErr := io.WriteString(r.w, b.String())
	return writeErr
}

func (r *Renderer) execute(name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.w, out)
	return err
}

// SortedVariables turns a map into a name-sorted list
func SortedVariables(vars map[string]string) []types.Variable {
	out := make([]types.Variable, 0, len(vars))
	for name, value := range vars {
		out = append(out, types.Variable{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
