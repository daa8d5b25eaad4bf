package creole

import "testing"

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "plain text", want: "plain text"},
		{name: "angle brackets", input: "<b>", want: "&lt;b&gt;"},
		{name: "ampersand", input: "a & b", want: "a &amp; b"},
		{name: "ampersand not rescanned", input: "&lt;", want: "&amp;lt;"},
		{name: "quotes untouched", input: `say "hi"`, want: `say "hi"`},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := escapeHTML(tt.input); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "double quote", input: `a"b`, want: "a&quot;b"},
		{name: "angle brackets untouched", input: "<x>", want: "<x>"},
		{name: "plain", input: "href", want: "href"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
