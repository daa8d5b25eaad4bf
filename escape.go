package creole

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// escapeHTML escapes the characters that would otherwise be interpreted as
// markup in text content. Escaping a string without &, < or > returns it
// unchanged.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes an attribute value for use inside double quotes.
func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}
