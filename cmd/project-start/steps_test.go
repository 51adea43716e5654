package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leizerowicz/project-start/internal/output"
)

// runCommand executes a fresh root command with args and optional piped input.
func runCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	if input != "" {
		cmd.SetIn(strings.NewReader(input))
	}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestPlanningCommand_NoProjects(t *testing.T) {
	setupTestEnv(t)

	out, err := runCommand(t, "", "planning")
	if err == nil {
		t.Fatal("planning with no projects: want error, got nil")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(out, "discovery") {
		t.Errorf("error should point at running discovery first, got: %s", out)
	}
}

func TestPlanningCommand_AutoDetectsLatest(t *testing.T) {
	dir := setupTestEnv(t)

	if _, err := runCommand(t, questionnaireInput("Chat App", "realtime chat"), "discovery"); err != nil {
		t.Fatalf("discovery failed: %v", err)
	}

	out, err := runCommand(t, "", "planning")
	if err != nil {
		t.Fatalf("planning failed: %v\nOutput: %s", err, out)
	}

	sparcDir := filepath.Join(dir, "specs", "001-chat-app", "sparc")
	for _, file := range []string{
		"SPARC_SPECIFICATION.md",
		"SPARC_PSEUDOCODE.md",
		"SPARC_ARCHITECTURE.md",
		"SPARC_REFINEMENT.md",
		"SPARC_COMPLETION.md",
	} {
		if _, err := os.Stat(filepath.Join(sparcDir, file)); err != nil {
			t.Errorf("missing %s: %v", file, err)
		}
	}
}

func TestStepCommands_ExplicitProject(t *testing.T) {
	dir := setupTestEnv(t)

	if _, err := runCommand(t, questionnaireInput("Chat App", "realtime chat"), "discovery"); err != nil {
		t.Fatalf("discovery failed: %v", err)
	}
	projectDir := filepath.Join(dir, "specs", "001-chat-app")

	if out, err := runCommand(t, "", "context-systems", "--project", projectDir); err != nil {
		t.Fatalf("context-systems failed: %v\nOutput: %s", err, out)
	}
	for _, file := range []string{
		filepath.Join(".github", "copilot-instructions.md"),
		filepath.Join("expert_files", "architecture_expert.md"),
		filepath.Join("expert_files", "tech_stack_expert.md"),
		filepath.Join("expert_files", "testing_expert.md"),
		"agent_coordination.md",
		filepath.Join("memory", "project_memory.md"),
		filepath.Join("memory", "constitutional_memory.md"),
		filepath.Join("memory", "lesson_memory.md"),
	} {
		if _, err := os.Stat(filepath.Join(projectDir, file)); err != nil {
			t.Errorf("missing %s: %v", file, err)
		}
	}

	if out, err := runCommand(t, "", "coordination-framework", "--project", projectDir); err != nil {
		t.Fatalf("coordination-framework failed: %v\nOutput: %s", err, out)
	}
	for _, file := range []string{
		"AGENT_ECOSYSTEM_DESIGN.md",
		"COORDINATION_STRATEGY.md",
		"COLLABORATIVE_WORKFLOWS.md",
		"AGENTIC_TESTING_FRAMEWORK.md",
		"PACT_SPARC_INTEGRATION.md",
		"QUALITY_ASSURANCE_FRAMEWORK.md",
	} {
		if _, err := os.Stat(filepath.Join(projectDir, file)); err != nil {
			t.Errorf("missing %s: %v", file, err)
		}
	}
}

func TestStepCommand_MissingExplicitProject(t *testing.T) {
	setupTestEnv(t)

	_, err := runCommand(t, "", "planning", "--project", "/nonexistent/project")
	if err == nil {
		t.Fatal("planning with missing --project: want error, got nil")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
