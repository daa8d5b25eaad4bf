package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlight indicates syntax highlighting failed.
var ErrHighlight = errors.New("syntax highlighting failed")

const (
	preOpen  = "<pre>"
	preClose = "</pre>"
)

// HighlightPre rewrites every <pre> block in fragment with chroma token
// markup for the given language. An unknown language name leaves the
// fragment unchanged, matching the never-fail posture of the parser itself.
// CSS classes are used rather than inline styles so the stylesheet stays in
// the caller's control; HighlightCSS emits a matching stylesheet.
func HighlightPre(fragment, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return fragment, nil
	}
	lexer = chroma.Coalesce(lexer)
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var b strings.Builder
	rest := fragment
	for {
		open := strings.Index(rest, preOpen)
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[open:], preClose)
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += open
		b.WriteString(rest[:open])

		code := rest[open+len(preOpen) : end]
		code = strings.TrimPrefix(code, "\n")
		iterator, err := lexer.Tokenise(nil, unescapeHTML(code))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHighlight, err)
		}
		if err := formatter.Format(&b, styles.Fallback, iterator); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHighlight, err)
		}
		rest = rest[end+len(preClose):]
	}
	return b.String(), nil
}

// HighlightCSS returns the stylesheet matching HighlightPre's class-based
// output, for injection via Document.
func HighlightCSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var b strings.Builder
	if err := formatter.WriteCSS(&b, styles.Fallback); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return b.String(), nil
}

var htmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

// unescapeHTML reverses the parser's text escaping so the highlighter sees
// the original source. The single-pass replacer never rescans its own
// output, so "&amp;lt;" becomes "&lt;" rather than "<".
func unescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
