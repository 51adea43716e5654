// Package docs loads document templates and writes generated documents into
// a project directory. Templates are data files with YAML frontmatter, not
// source-code string literals, so content changes don't touch Go code.
package docs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leizerowicz/project-start/internal/config"
)

//go:embed templates/*.md
var builtinFS embed.FS

// Template is one document template: metadata from frontmatter plus body.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Filename is the output path relative to the project directory,
	// e.g. "BACKLOG.md" or "sparc/SPARC_SPECIFICATION.md".
	Filename string `yaml:"filename"`

	// AI marks templates whose body is a generation prompt routed through
	// the external AI CLI. Non-AI templates are rendered and written as-is.
	AI bool `yaml:"ai,omitempty"`

	// Content is the template body (after frontmatter).
	Content string `yaml:"-"`

	// Source is "built-in" or "global" for display.
	Source string `yaml:"-"`
}

// Load finds and loads a template by name.
// Resolution order: user global override → built-in.
func Load(name string) (*Template, error) {
	if tmpl, err := loadFromDir(globalTemplatesDir(), name); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}

	tmpl, err := loadBuiltin(name)
	if err != nil {
		return nil, fmt.Errorf("template %q not found", name)
	}
	tmpl.Source = "built-in"
	return tmpl, nil
}

// globalTemplatesDir returns the user's template override directory.
func globalTemplatesDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// loadFromDir attempts to load a template from a directory.
func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, fmt.Errorf("no directory")
	}

	path := filepath.Join(dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return parseTemplate(name, string(data))
}

// loadBuiltin loads a built-in template by name.
func loadBuiltin(name string) (*Template, error) {
	data, err := builtinFS.ReadFile("templates/" + name + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", name, err)
	}
	return parseTemplate(name, string(data))
}

// parseTemplate parses raw content with YAML frontmatter into a Template.
// The filename defaults from the template name when frontmatter omits it.
func parseTemplate(name, raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter in %s: %w", name, err)
		}
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	if tmpl.Filename == "" {
		tmpl.Filename = strings.ToUpper(name) + ".md"
	}

	tmpl.Content = strings.TrimSpace(content) + "\n"
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
