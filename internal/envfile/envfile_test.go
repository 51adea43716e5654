package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	return path
}

func TestLoad_SetsUnsetVariables(t *testing.T) {
	t.Setenv("PS_TEST_KEY", "")
	os.Unsetenv("PS_TEST_KEY")

	path := writeEnv(t, "PS_TEST_KEY=from-file\n")
	if err := Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := os.Getenv("PS_TEST_KEY"); got != "from-file" {
		t.Errorf("PS_TEST_KEY = %q, want from-file", got)
	}
}

func TestLoad_EnvironmentWins(t *testing.T) {
	t.Setenv("PS_TEST_WINS", "from-env")

	path := writeEnv(t, "PS_TEST_WINS=from-file\n")
	if err := Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := os.Getenv("PS_TEST_WINS"); got != "from-env" {
		t.Errorf("PS_TEST_WINS = %q, want from-env", got)
	}
}

func TestLoad_MissingFileIsNil(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load(missing) error = %v, want nil", err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		key, want string
		ok        bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"export KEY=value", "KEY", "value", true},
		{`KEY="quoted value"`, "KEY", "quoted value", true},
		{"KEY='single'", "KEY", "single", true},
		{"KEY=", "KEY", "", true},
		{"no equals", "", "", false},
		{"=value", "", "", false},
	}

	for _, tt := range tests {
		key, value, ok := parseLine(tt.line)
		if ok != tt.ok || key != tt.key || value != tt.want {
			t.Errorf("parseLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, value, ok, tt.key, tt.want, tt.ok)
		}
	}
}
