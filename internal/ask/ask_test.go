package ask

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestAsker(input string) (*Asker, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestQuestion_Answer(t *testing.T) {
	asker, _ := newTestAsker("Chat App\n")

	got, err := asker.Question("Project name", "", true)
	if err != nil {
		t.Fatalf("Question() error = %v", err)
	}
	if got != "Chat App" {
		t.Errorf("Question() = %q, want 'Chat App'", got)
	}
}

func TestQuestion_BlankReturnsDefault(t *testing.T) {
	asker, _ := newTestAsker("\n")

	got, err := asker.Question("Team size", "1-5", false)
	if err != nil {
		t.Fatalf("Question() error = %v", err)
	}
	if got != "1-5" {
		t.Errorf("Question() = %q, want default '1-5'", got)
	}
}

func TestQuestion_BlankOptionalReturnsEmpty(t *testing.T) {
	asker, _ := newTestAsker("\n")

	got, err := asker.Question("Timeline", "", false)
	if err != nil {
		t.Fatalf("Question() error = %v", err)
	}
	if got != "" {
		t.Errorf("Question() = %q, want empty", got)
	}
}

func TestQuestion_RequiredRepromptsOnBlank(t *testing.T) {
	asker, out := newTestAsker("\n\nfinally\n")

	got, err := asker.Question("Project name", "", true)
	if err != nil {
		t.Fatalf("Question() error = %v", err)
	}
	if got != "finally" {
		t.Errorf("Question() = %q, want 'finally'", got)
	}
	if n := strings.Count(out.String(), "required"); n != 2 {
		t.Errorf("required notice printed %d times, want 2", n)
	}
}

func TestQuestion_EOFIsFatal(t *testing.T) {
	asker, _ := newTestAsker("")

	_, err := asker.Question("Project name", "", true)
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Question() error = %v, want ErrInputClosed", err)
	}
}

func TestQuestion_TrailingLineWithoutNewline(t *testing.T) {
	asker, _ := newTestAsker("no newline")

	got, err := asker.Question("Project name", "", true)
	if err != nil {
		t.Fatalf("Question() error = %v", err)
	}
	if got != "no newline" {
		t.Errorf("Question() = %q, want 'no newline'", got)
	}
}

func TestMultipleChoice_ValidSelection(t *testing.T) {
	choices := []string{"Monolithic", "Microservices", "Serverless"}
	asker, _ := newTestAsker("2\n")

	got, err := asker.MultipleChoice("Architecture", choices, "")
	if err != nil {
		t.Fatalf("MultipleChoice() error = %v", err)
	}
	if got != "Microservices" {
		t.Errorf("MultipleChoice() = %q, want 'Microservices'", got)
	}
}

func TestMultipleChoice_NeverReturnsOutsideChoices(t *testing.T) {
	choices := []string{"TDD", "BDD", "Ad hoc"}
	// A run of invalid inputs followed by one valid selection.
	asker, _ := newTestAsker("0\n99\nabc\n-1\n3\n")

	got, err := asker.MultipleChoice("Testing strategy", choices, "")
	if err != nil {
		t.Fatalf("MultipleChoice() error = %v", err)
	}

	found := false
	for _, c := range choices {
		if got == c {
			found = true
		}
	}
	if !found {
		t.Errorf("MultipleChoice() = %q, not in choices %v", got, choices)
	}
	if got != "Ad hoc" {
		t.Errorf("MultipleChoice() = %q, want 'Ad hoc'", got)
	}
}

func TestMultipleChoice_BlankReturnsDefault(t *testing.T) {
	choices := []string{"Small", "Medium", "Large"}
	asker, _ := newTestAsker("\n")

	got, err := asker.MultipleChoice("Team size", choices, "Medium")
	if err != nil {
		t.Fatalf("MultipleChoice() error = %v", err)
	}
	if got != "Medium" {
		t.Errorf("MultipleChoice() = %q, want default 'Medium'", got)
	}
}

func TestMultipleChoice_BlankWithoutDefaultReprompts(t *testing.T) {
	choices := []string{"a", "b"}
	asker, _ := newTestAsker("\n1\n")

	got, err := asker.MultipleChoice("Pick", choices, "")
	if err != nil {
		t.Fatalf("MultipleChoice() error = %v", err)
	}
	if got != "a" {
		t.Errorf("MultipleChoice() = %q, want 'a'", got)
	}
}

func TestMultipleChoice_EOFDuringReprompt(t *testing.T) {
	asker, _ := newTestAsker("bogus\n")

	_, err := asker.MultipleChoice("Pick", []string{"a", "b"}, "")
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("MultipleChoice() error = %v, want ErrInputClosed", err)
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"Y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"N\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		asker, _ := newTestAsker(tt.input)
		got, err := asker.YesNo("Continue?", tt.def)
		if err != nil {
			t.Fatalf("YesNo(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("YesNo(%q, def=%v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
	}
}
