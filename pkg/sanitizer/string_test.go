package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims", input: "  Ana  ", want: "Ana"},
		{name: "collapses inner whitespace", input: "Ana \t  Maria", want: "Ana Maria"},
		{name: "keeps case", input: "McDONALD", want: "McDONALD"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "mad", want: "MAD"},
		{input: " lhr ", want: "LHR"},
		{input: "eur", want: "EUR"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeCode(tt.input); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Errorf("unexpected email %q", got)
	}
}
