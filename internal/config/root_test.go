package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRootFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, RootFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing root file: %v", err)
	}
	return path
}

func TestProjectRoot_ConfigFileWins(t *testing.T) {
	dir := t.TempDir()
	path := writeRootFile(t, dir, "TARGET_PROJECT_ROOT=/tmp/foo\n")

	// The file value must win regardless of the working directory.
	cfg := Config{WorkDir: "/somewhere/else", RootFile: path}
	if got := cfg.ProjectRoot(); got != "/tmp/foo" {
		t.Errorf("ProjectRoot() = %q, want /tmp/foo", got)
	}
}

func TestProjectRoot_CommentsAndBlanksSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeRootFile(t, dir, "# project-start config\n\nTARGET_PROJECT_ROOT = /tmp/bar\n")

	cfg := Config{WorkDir: dir, RootFile: path}
	if got := cfg.ProjectRoot(); got != "/tmp/bar" {
		t.Errorf("ProjectRoot() = %q, want /tmp/bar", got)
	}
}

func TestProjectRoot_MissingFileFallsBackToWorkDir(t *testing.T) {
	dir := t.TempDir()

	cfg := Config{WorkDir: dir, RootFile: filepath.Join(dir, "absent")}
	if got := cfg.ProjectRoot(); got != dir {
		t.Errorf("ProjectRoot() = %q, want %q", got, dir)
	}
}

func TestProjectRoot_MalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeRootFile(t, dir, "no equals sign here\n")

	cfg := Config{WorkDir: dir, RootFile: path}
	if got := cfg.ProjectRoot(); got != dir {
		t.Errorf("ProjectRoot() = %q, want %q", got, dir)
	}
}

func TestProjectRoot_InstallDirHeuristic(t *testing.T) {
	repo := t.TempDir()
	install := filepath.Join(repo, "project-start")
	if err := os.Mkdir(install, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		WorkDir:    "/elsewhere",
		InstallDir: install,
		RootFile:   filepath.Join(repo, "absent"),
	}
	if got := cfg.ProjectRoot(); got != repo {
		t.Errorf("ProjectRoot() = %q, want parent of install dir %q", got, repo)
	}
}

func TestSaveRoot_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RootFileName)

	cfg := Config{WorkDir: dir, RootFile: path}
	written, err := cfg.SaveRoot("/tmp/target")
	if err != nil {
		t.Fatalf("SaveRoot() error = %v", err)
	}
	if written != path {
		t.Errorf("SaveRoot() path = %q, want %q", written, path)
	}

	if got := cfg.ProjectRoot(); got != "/tmp/target" {
		t.Errorf("ProjectRoot() after save = %q, want /tmp/target", got)
	}
}

func TestSpecsDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{WorkDir: dir, RootFile: filepath.Join(dir, "absent")}
	if got := cfg.SpecsDir(); got != filepath.Join(dir, "specs") {
		t.Errorf("SpecsDir() = %q, want %q", got, filepath.Join(dir, "specs"))
	}
}
