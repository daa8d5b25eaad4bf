package pipeline

import (
	"strings"
	"testing"
)

func TestHighlightPre(t *testing.T) {
	t.Parallel()

	t.Run("unknown language leaves fragment unchanged", func(t *testing.T) {
		t.Parallel()
		fragment := "<pre>\ncode here\n</pre>\n"
		got, err := HighlightPre(fragment, "no-such-language")
		if err != nil {
			t.Fatalf("HighlightPre() error = %v", err)
		}
		if got != fragment {
			t.Errorf("HighlightPre() = %q, want unchanged %q", got, fragment)
		}
	})

	t.Run("fragment without pre blocks unchanged", func(t *testing.T) {
		t.Parallel()
		fragment := "<p>no code</p>\n"
		got, err := HighlightPre(fragment, "go")
		if err != nil {
			t.Fatalf("HighlightPre() error = %v", err)
		}
		if got != fragment {
			t.Errorf("HighlightPre() = %q, want unchanged %q", got, fragment)
		}
	})

	t.Run("pre block rewritten with token classes", func(t *testing.T) {
		t.Parallel()
		fragment := "<p>before</p>\n<pre>\nfunc main() {}\n</pre>\n<p>after</p>\n"
		got, err := HighlightPre(fragment, "go")
		if err != nil {
			t.Fatalf("HighlightPre() error = %v", err)
		}
		for _, want := range []string{"<p>before</p>", "<p>after</p>", "chroma", "main"} {
			if !strings.Contains(got, want) {
				t.Errorf("HighlightPre() missing %q in:\n%s", want, got)
			}
		}
		if strings.Contains(got, "<pre>\nfunc") {
			t.Errorf("HighlightPre() left original pre block in place:\n%s", got)
		}
	})

	t.Run("escaped entities reach the lexer unescaped", func(t *testing.T) {
		t.Parallel()
		fragment := "<pre>\na &lt; b\n</pre>\n"
		got, err := HighlightPre(fragment, "go")
		if err != nil {
			t.Fatalf("HighlightPre() error = %v", err)
		}
		if strings.Contains(got, "&amp;lt;") {
			t.Errorf("HighlightPre() double-escaped entities:\n%s", got)
		}
	})

	t.Run("multiple pre blocks all rewritten", func(t *testing.T) {
		t.Parallel()
		fragment := "<pre>\nx := 1\n</pre>\n<p>mid</p>\n<pre>\ny := 2\n</pre>\n"
		got, err := HighlightPre(fragment, "go")
		if err != nil {
			t.Fatalf("HighlightPre() error = %v", err)
		}
		if strings.Contains(got, "<pre>\nx") || strings.Contains(got, "<pre>\ny") {
			t.Errorf("HighlightPre() left a pre block unrewritten:\n%s", got)
		}
		if !strings.Contains(got, "<p>mid</p>") {
			t.Errorf("HighlightPre() lost surrounding content:\n%s", got)
		}
	})
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS()
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() missing .chroma selector in:\n%s", css)
	}
}

func TestUnescapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "entities reversed", input: "a &lt; b &amp; c &gt; d", want: "a < b & c > d"},
		{name: "no rescan of output", input: "&amp;lt;", want: "&lt;"},
		{name: "plain text", input: "plain", want: "plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := unescapeHTML(tt.input); got != tt.want {
				t.Errorf("unescapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
