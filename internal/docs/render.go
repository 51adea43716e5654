package docs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leizerowicz/project-start/internal/project"
)

// readmeLimit caps how much of an existing README is folded into context.
const readmeLimit = 1000

// Render substitutes {{key}} variables in the template content. Unknown
// placeholders are left untouched so a malformed template is visible in the
// output rather than silently blanked.
func Render(tmpl *Template, vars map[string]string) string {
	result := tmpl.Content
	for key, val := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", val)
	}
	return result
}

// BaseVars builds the substitution map shared by every document: one entry
// per questionnaire field (missing fields render as the placeholder), the
// assembled context block, and the generation timestamp.
func BaseVars(info project.Info, now time.Time) map[string]string {
	vars := make(map[string]string, len(project.Keys)+2)
	for _, key := range project.Keys {
		vars[key] = info.Field(key)
	}
	vars["base_context"] = BaseContext(info)
	vars["timestamp"] = now.Format("2006-01-02 15:04")
	return vars
}

// BaseContext renders every questionnaire field as a Markdown block, used
// both inside generated documents and as the shared prefix of AI prompts.
func BaseContext(info project.Info) string {
	var b strings.Builder
	b.WriteString("## Project Context\n\n")
	for _, key := range project.Keys {
		fmt.Fprintf(&b, "- **%s**: %s\n", project.Label(key), info.Field(key))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ReadmeContext returns a truncated excerpt of the README at path, or ""
// when the file is absent. Absence is not an error; context is just omitted.
func ReadmeContext(path string) string {
	excerpt := Excerpt(path, readmeLimit)
	if excerpt == "" {
		return ""
	}
	return "## Existing README (truncated)\n\n" + excerpt
}

// Excerpt reads at most limit characters from path. Missing or unreadable
// files yield the empty string.
func Excerpt(path string, limit int) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	text := strings.TrimSpace(string(data))
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "\n\n[truncated]"
}
