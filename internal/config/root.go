package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RootFileName is the KEY=value file consulted for the target project root.
// It lives next to the installed binary, with the config directory as a
// fallback location.
const RootFileName = ".project_start_config"

// rootKey is the only key the root file is consulted for.
const rootKey = "TARGET_PROJECT_ROOT"

// Config carries the resolved environment for one invocation. Commands build
// it once in main and pass it down; components never read the working
// directory or the executable path on their own.
type Config struct {
	// WorkDir is the invocation working directory.
	WorkDir string

	// InstallDir is the directory containing the running binary.
	InstallDir string

	// RootFile overrides the root-file search when non-empty (tests, --debug
	// scenarios). When empty the install dir and config dir are searched.
	RootFile string
}

// Detect builds a Config from the process environment. Errors from
// os.Executable are tolerated: an empty InstallDir just disables the
// installation-location heuristic.
func Detect() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("getting working directory: %w", err)
	}

	cfg := Config{WorkDir: wd}
	if exe, err := os.Executable(); err == nil {
		cfg.InstallDir = filepath.Dir(exe)
	}
	return cfg, nil
}

// ProjectRoot resolves the directory under which specs/ projects are created.
//
// Resolution order:
//  1. TARGET_PROJECT_ROOT from the root file, when the file exists and parses.
//  2. The parent of the installation directory, when the tool is checked out
//     as a project-start/ folder inside the target repository.
//  3. The working directory.
func (c Config) ProjectRoot() string {
	if root, ok := c.rootFromFile(); ok {
		return root
	}

	if c.InstallDir != "" && filepath.Base(c.InstallDir) == "project-start" {
		return filepath.Dir(c.InstallDir)
	}

	return c.WorkDir
}

// SpecsDir returns the directory holding numbered project directories.
func (c Config) SpecsDir() string {
	return filepath.Join(c.ProjectRoot(), "specs")
}

// rootFileCandidates returns the root-file paths to try, in order.
func (c Config) rootFileCandidates() []string {
	if c.RootFile != "" {
		return []string{c.RootFile}
	}

	var paths []string
	if c.InstallDir != "" {
		paths = append(paths, filepath.Join(c.InstallDir, RootFileName))
	}
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, RootFileName))
	}
	return paths
}

// rootFromFile reads TARGET_PROJECT_ROOT from the first root file that
// exists and contains the key. A present but malformed file is skipped.
func (c Config) rootFromFile() (string, bool) {
	for _, path := range c.rootFileCandidates() {
		values, err := readKeyValueFile(path)
		if err != nil {
			continue
		}
		if root, ok := values[rootKey]; ok && root != "" {
			return root, true
		}
	}
	return "", false
}

// SaveRoot writes TARGET_PROJECT_ROOT to the preferred root file location,
// creating the directory if needed, and returns the path written.
func (c Config) SaveRoot(root string) (string, error) {
	candidates := c.rootFileCandidates()
	if len(candidates) == 0 {
		return "", fmt.Errorf("no writable location for %s", RootFileName)
	}

	path := candidates[0]
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	content := fmt.Sprintf("%s=%s\n", rootKey, root)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// readKeyValueFile parses a simple KEY=value file. Blank lines and #-comments
// are skipped. Returns an error only when the file cannot be read.
func readKeyValueFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}
