package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompleteWorkflowCommand(t *testing.T) {
	dir := setupTestEnv(t)

	out, err := runCommand(t, questionnaireInput("Chat App", "realtime chat"), "complete-workflow")
	if err != nil {
		t.Fatalf("complete-workflow failed: %v\nOutput: %s", err, out)
	}

	projectDir := filepath.Join(dir, "specs", "001-chat-app")
	for _, file := range []string{
		"BACKLOG.md",
		filepath.Join("sparc", "SPARC_COMPLETION.md"),
		filepath.Join(".github", "copilot-instructions.md"),
		filepath.Join("memory", "lesson_memory.md"),
		"QUALITY_ASSURANCE_FRAMEWORK.md",
	} {
		if _, err := os.Stat(filepath.Join(projectDir, file)); err != nil {
			t.Errorf("missing %s: %v", file, err)
		}
	}
}

func TestCompleteWorkflowCommand_Existing(t *testing.T) {
	dir := setupTestEnv(t)
	if err := os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name": "app", "dependencies": {"express": "^4.18.0"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "", "complete-workflow", "--existing", "a node service")
	if err != nil {
		t.Fatalf("complete-workflow --existing failed: %v\nOutput: %s", err, out)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "specs"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("want exactly one project directory, got %v (err %v)", entries, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "specs", entries[0].Name(), "QUALITY_ASSURANCE_FRAMEWORK.md")); err != nil {
		t.Errorf("all steps should have run: %v", err)
	}
}
