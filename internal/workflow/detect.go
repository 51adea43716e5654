package workflow

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leizerowicz/project-start/internal/project"
)

// markerFiles maps well-known filenames to a technology label.
var markerFiles = map[string]string{
	"package.json":       "JavaScript/TypeScript (Node.js)",
	"tsconfig.json":      "TypeScript",
	"go.mod":             "Go",
	"requirements.txt":   "Python",
	"pyproject.toml":     "Python",
	"Cargo.toml":         "Rust",
	"pom.xml":            "Java (Maven)",
	"build.gradle":       "Java/Kotlin (Gradle)",
	"Gemfile":            "Ruby",
	"composer.json":      "PHP",
	"Dockerfile":         "Docker",
	"docker-compose.yml": "Docker Compose",
}

// maxDetectedDeps bounds how many dependencies the shallow manifest scan
// reports into the tech_stack answer.
const maxDetectedDeps = 8

// DetectInfo infers ProjectInfo from an existing project directory: marker
// files give technology labels, manifests give a shallow dependency list, and
// the README gives a description sentence. description overrides the README
// heuristic when non-empty.
func DetectInfo(dir, description string) project.Info {
	info := project.Info{
		"name": project.NameFromDir(strings.TrimSuffix(dir, string(filepath.Separator))),
	}

	var labels []string
	for _, marker := range sortedMarkers() {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			labels = append(labels, markerFiles[marker])
		}
	}

	deps := detectDependencies(dir)
	stack := strings.Join(labels, ", ")
	if len(deps) > 0 {
		if stack != "" {
			stack += "; "
		}
		stack += "key dependencies: " + strings.Join(deps, ", ")
	}
	info["tech_stack"] = stack

	if description == "" {
		description = readmeDescription(filepath.Join(dir, "README.md"))
	}
	info["description"] = description

	return info
}

// sortedMarkers returns marker filenames in a stable order so detection
// output doesn't shuffle between runs.
func sortedMarkers() []string {
	ordered := []string{
		"package.json", "tsconfig.json", "go.mod", "requirements.txt",
		"pyproject.toml", "Cargo.toml", "pom.xml", "build.gradle",
		"Gemfile", "composer.json", "Dockerfile", "docker-compose.yml",
	}
	return ordered
}

// detectDependencies shallowly inspects the manifests present in dir.
func detectDependencies(dir string) []string {
	var deps []string
	deps = append(deps, packageJSONDeps(filepath.Join(dir, "package.json"))...)
	deps = append(deps, goModDeps(filepath.Join(dir, "go.mod"))...)
	deps = append(deps, requirementsDeps(filepath.Join(dir, "requirements.txt"))...)
	deps = append(deps, cargoDeps(filepath.Join(dir, "Cargo.toml"))...)

	if len(deps) > maxDetectedDeps {
		deps = deps[:maxDetectedDeps]
	}
	return deps
}

// packageJSONDeps lists the dependency names from a package.json.
func packageJSONDeps(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var manifest struct {
		Dependencies map[string]string `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil
	}

	deps := make([]string, 0, len(manifest.Dependencies))
	for name := range manifest.Dependencies {
		deps = append(deps, name)
	}
	sort.Strings(deps)
	return deps
}

// goModDeps lists module paths from go.mod require lines.
func goModDeps(path string) []string {
	lines := readLines(path)
	var deps []string
	inBlock := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "require (":
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock && line != "" && !strings.Contains(line, "// indirect"):
			if fields := strings.Fields(line); len(fields) >= 1 {
				deps = append(deps, fields[0])
			}
		case strings.HasPrefix(line, "require ") && !strings.Contains(line, "("):
			if fields := strings.Fields(line); len(fields) >= 2 {
				deps = append(deps, fields[1])
			}
		}
	}
	return deps
}

// requirementsDeps lists package names from a requirements.txt.
func requirementsDeps(path string) []string {
	var deps []string
	for _, line := range readLines(path) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		for _, sep := range []string{"==", ">=", "<=", "~=", ">", "<"} {
			if name, _, ok := strings.Cut(line, sep); ok {
				line = name
				break
			}
		}
		deps = append(deps, strings.TrimSpace(line))
	}
	return deps
}

// cargoDeps lists crate names from the [dependencies] section of Cargo.toml.
func cargoDeps(path string) []string {
	var deps []string
	inSection := false
	for _, line := range readLines(path) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			inSection = line == "[dependencies]"
			continue
		}
		if !inSection || line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, _, ok := strings.Cut(line, "="); ok {
			deps = append(deps, strings.TrimSpace(name))
		}
	}
	return deps
}

// readmeDescription scans the first lines of a README for a plain sentence:
// not a heading, not a badge, not a fence.
func readmeDescription(path string) string {
	const maxLines = 15

	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close() //nolint:errcheck // read-only

	scanner := bufio.NewScanner(file)
	for n := 0; n < maxLines && scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" ||
			strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "[![") ||
			strings.HasPrefix(line, "![") ||
			strings.HasPrefix(line, "```") ||
			strings.HasPrefix(line, ">") {
			continue
		}
		return line
	}
	return ""
}

// readLines returns the file's lines, or nil when unreadable.
func readLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return strings.Split(string(data), "\n")
}
