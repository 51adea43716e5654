package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leizerowicz/project-start/internal/generate"
	"github.com/leizerowicz/project-start/internal/output"
)

// Emitter writes generated documents into a project directory. AI-eligible
// templates are routed through the Runner (which falls back to static
// content on its own); everything else is rendered directly.
type Emitter struct {
	Runner  *generate.Runner
	Printer *output.Printer

	// Now is the timestamp source, overridable in tests.
	Now func() time.Time
}

// NewEmitter creates an Emitter.
func NewEmitter(runner *generate.Runner, printer *output.Printer) *Emitter {
	return &Emitter{
		Runner:  runner,
		Printer: printer,
		Now:     time.Now,
	}
}

// Emit renders the named template with vars and writes it under dir at the
// template's filename, creating intermediate directories. Returns the path
// written. Each call writes exactly one file and never reads it back.
func (e *Emitter) Emit(ctx context.Context, dir, tmplName string, vars map[string]string) (string, error) {
	tmpl, err := Load(tmplName)
	if err != nil {
		return "", err
	}

	var content string
	if tmpl.AI {
		prompt := Render(tmpl, vars)
		content = e.Runner.Generate(ctx, tmpl.Description, prompt)
		if content != "" && content[len(content)-1] != '\n' {
			content += "\n"
		}
	} else {
		content = Render(tmpl, vars)
	}

	path := filepath.Join(dir, filepath.FromSlash(tmpl.Filename))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", tmpl.Filename, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", tmpl.Filename, err)
	}

	if e.Printer != nil {
		e.Printer.Progress(tmpl.Filename)
	}
	return path, nil
}

// EmitAll emits a list of templates with shared vars, in order, and returns
// the paths written. Stops at the first filesystem error; documents already
// written stay on disk.
func (e *Emitter) EmitAll(ctx context.Context, dir string, tmplNames []string, vars map[string]string) ([]string, error) {
	paths := make([]string, 0, len(tmplNames))
	for _, name := range tmplNames {
		path, err := e.Emit(ctx, dir, name, vars)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
