package pipeline

import (
	"fmt"
	"strings"
)

// docTemplate wraps the parser's fragment output in a complete HTML5
// document: title, optional style block, body.
const docTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s</body>
</html>
`

// Document wraps an HTML fragment in a complete HTML5 document. The title
// is inserted verbatim and must already be HTML-escaped (the parser's
// Heading value is; raw titles should go through EscapeTitle first). An
// empty css string omits the style block.
func Document(fragment, title, css string) string {
	style := ""
	if css != "" {
		style = "<style>\n" + css + "\n</style>\n"
	}
	if !strings.HasSuffix(fragment, "\n") && fragment != "" {
		fragment += "\n"
	}
	return fmt.Sprintf(docTemplate, title, style, fragment)
}

var titleEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeTitle escapes a raw string for use as the document title.
func EscapeTitle(s string) string {
	return titleEscaper.Replace(s)
}
