package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leizerowicz/project-start/internal/project"
)

func TestRender_Substitution(t *testing.T) {
	tmpl := &Template{Content: "# {{name}}\n\nStack: {{tech_stack}}\nUnknown: {{mystery}}\n"}
	got := Render(tmpl, map[string]string{"name": "Chat App", "tech_stack": "Go"})

	if !strings.Contains(got, "# Chat App") {
		t.Errorf("Render() missing name: %q", got)
	}
	if !strings.Contains(got, "Stack: Go") {
		t.Errorf("Render() missing tech_stack: %q", got)
	}
	// Unknown placeholders stay visible instead of silently vanishing.
	if !strings.Contains(got, "{{mystery}}") {
		t.Errorf("Render() removed unknown placeholder: %q", got)
	}
}

func TestBaseContext_CoversEveryField(t *testing.T) {
	info := project.Info{"name": "Chat App", "tech_stack": "Go + HTMX"}
	got := BaseContext(info)

	for _, key := range project.Keys {
		if !strings.Contains(got, project.Label(key)) {
			t.Errorf("BaseContext() missing field %s", key)
		}
	}
	if !strings.Contains(got, project.NotSpecified) {
		t.Error("BaseContext() should render the placeholder for unanswered fields")
	}
}

func TestBaseVars(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	vars := BaseVars(project.Info{"name": "Chat App"}, now)

	if vars["name"] != "Chat App" {
		t.Errorf("vars[name] = %q", vars["name"])
	}
	if vars["timeline"] != project.NotSpecified {
		t.Errorf("vars[timeline] = %q, want placeholder", vars["timeline"])
	}
	if vars["timestamp"] != "2026-08-24 10:30" {
		t.Errorf("vars[timestamp] = %q", vars["timestamp"])
	}
	if !strings.Contains(vars["base_context"], "Chat App") {
		t.Error("vars[base_context] missing project name")
	}
}

func TestReadmeContext_Truncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	long := strings.Repeat("x", 1500)
	if err := os.WriteFile(path, []byte(long), 0o644); err != nil {
		t.Fatal(err)
	}

	got := ReadmeContext(path)
	if !strings.HasPrefix(got, "## Existing README (truncated)") {
		t.Errorf("ReadmeContext() missing header: %q", got[:40])
	}
	if !strings.Contains(got, "[truncated]") {
		t.Error("ReadmeContext() should mark truncation")
	}
	if len(got) > 1200 {
		t.Errorf("ReadmeContext() length = %d, want roughly the 1000-char cap", len(got))
	}
}

func TestReadmeContext_AbsentIsEmpty(t *testing.T) {
	if got := ReadmeContext(filepath.Join(t.TempDir(), "README.md")); got != "" {
		t.Errorf("ReadmeContext(absent) = %q, want empty", got)
	}
}

func TestExcerpt_ShortFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("short content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := Excerpt(path, 1000); got != "short content" {
		t.Errorf("Excerpt() = %q, want trimmed original", got)
	}
}
