package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSubdirs are created together with a new project directory. Later
// steps add sparc/, expert_files/, memory/, and .github/ as they run.
var DefaultSubdirs = []string{"implementation_details", "agent_config"}

// maxCounter bounds the numbered prefix. Directory names use fixed-width
// three-digit prefixes, so latest-project detection by lexicographic max is
// only correct up to 999 projects.
const maxCounter = 999

// Slugify converts a project name to its directory slug: lowercased, runs of
// whitespace replaced with single hyphens, anything outside [a-z0-9-] dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NextDirName returns the first NNN-<slug> name whose directory does not yet
// exist under specsDir, starting from 001. Numbers are never reused: a
// deleted 001 with a surviving 002 yields 001 again only because the
// directory truly is absent, matching the existence-check contract.
//
// The check and the later creation are not atomic; two concurrent runs can
// pick the same number. Single-user tool, accepted gap.
func NextDirName(specsDir, slug string) (string, error) {
	for counter := 1; counter <= maxCounter; counter++ {
		name := fmt.Sprintf("%03d-%s", counter, slug)
		if _, err := os.Stat(filepath.Join(specsDir, name)); os.IsNotExist(err) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no free project number under %s (limit %d)", specsDir, maxCounter)
}

// CreateStructure creates the next numbered project directory for info's
// name, plus the default subdirectories, and returns its path.
func CreateStructure(specsDir string, info Info) (string, error) {
	slug := Slugify(info.Name())
	if slug == "" {
		return "", fmt.Errorf("project name %q produces an empty slug", info.Name())
	}

	if err := os.MkdirAll(specsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating specs directory: %w", err)
	}

	name, err := NextDirName(specsDir, slug)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(specsDir, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating project directory: %w", err)
	}
	for _, sub := range DefaultSubdirs {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", sub, err)
		}
	}
	return dir, nil
}

// LatestDir returns the most recently created project directory under
// specsDir: the lexicographic maximum of the NNN-prefixed names. Because the
// prefixes are zero-padded this coincides with creation order (up to 999).
func LatestDir(specsDir string) (string, error) {
	entries, err := os.ReadDir(specsDir)
	if err != nil {
		return "", fmt.Errorf("reading specs directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && isNumbered(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no project directories under %s", specsDir)
	}

	sort.Strings(names)
	return filepath.Join(specsDir, names[len(names)-1]), nil
}

// NameFromDir recovers a display name from a project directory path:
// "specs/001-chat-app" becomes "Chat App".
func NameFromDir(dir string) string {
	base := filepath.Base(dir)
	if isNumbered(base) {
		base = base[4:]
	}
	words := strings.Split(base, "-")
	for n, w := range words {
		if w == "" {
			continue
		}
		words[n] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// isNumbered reports whether name starts with a three-digit prefix and hyphen.
func isNumbered(name string) bool {
	if len(name) < 5 || name[3] != '-' {
		return false
	}
	for _, c := range name[:3] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
