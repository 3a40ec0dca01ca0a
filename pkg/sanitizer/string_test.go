package sanitizer

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
		{"leading and trailing", "  Ada Lovelace  ", "Ada Lovelace"},
		{"internal runs collapsed", "Ada \t  Lovelace", "Ada Lovelace"},
		{"already clean", "Ada Lovelace", "Ada Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
