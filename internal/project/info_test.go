package project

import "testing"

func TestField_Placeholder(t *testing.T) {
	info := Info{"name": "Chat App", "timeline": "  "}

	if got := info.Field("name"); got != "Chat App" {
		t.Errorf("Field(name) = %q, want 'Chat App'", got)
	}
	if got := info.Field("timeline"); got != NotSpecified {
		t.Errorf("Field(blank) = %q, want %q", got, NotSpecified)
	}
	if got := info.Field("tech_stack"); got != NotSpecified {
		t.Errorf("Field(absent) = %q, want %q", got, NotSpecified)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct{ key, want string }{
		{"name", "Name"},
		{"tech_stack", "Tech Stack"},
		{"quality_requirements", "Quality Requirements"},
	}
	for _, tt := range tests {
		if got := Label(tt.key); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeys_NameFirst(t *testing.T) {
	if Keys[0] != "name" {
		t.Errorf("Keys[0] = %q, want name", Keys[0])
	}
}
