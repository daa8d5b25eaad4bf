package creole

import (
	"fmt"
	"io"
	"strings"
)

// Parser converts Creole wiki markup to HTML fragments. It holds only
// immutable configuration and is safe for concurrent use.
type Parser struct {
	resolver Resolver
	xhtml    bool
}

// New creates a Parser. By default output is HTML5 and non-absolute link
// targets pass through unchanged; use options to customize.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Convert parses src with a throwaway Parser. It is a convenience for
// callers that do not need to reuse configuration.
func Convert(src string, opts ...Option) Result {
	return New(opts...).ParseString(src)
}

// Parse reads all markup from r and converts it. The returned error is
// non-nil only when reading fails; parsing itself cannot fail.
func (p *Parser) Parse(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	return p.ParseString(string(data)), nil
}

// ParseString converts markup to an HTML fragment. Unclosed elements at end
// of input are closed, so the output nesting is always well-formed.
func (p *Parser) ParseString(src string) Result {
	s := newParseState(p)
	for ln := newLineScanner(src); ln.scan(); {
		s.parseLine(ln.line)
	}
	s.closeAll()
	return Result{HTML: strings.Join(s.out, ""), Heading: s.heading}
}

// lineScanner splits source text into lines delimited by CR, LF, or CRLF.
// Trailing whitespace and the terminator are dropped from each line; leading
// whitespace is kept because it is significant in preformatted blocks.
type lineScanner struct {
	src  string
	pos  int
	line string
}

func newLineScanner(src string) *lineScanner {
	return &lineScanner{src: src}
}

func (l *lineScanner) scan() bool {
	if l.pos >= len(l.src) {
		return false
	}
	begin := l.pos
	end := l.pos
	i := l.pos
	for i < len(l.src) {
		switch c := l.src[i]; c {
		case '\r':
			i++
			if i < len(l.src) && l.src[i] == '\n' {
				i++
			}
		case '\n':
			i++
		case ' ', '\t':
			i++
			continue
		default:
			i++
			end = i
			continue
		}
		break
	}
	l.pos = i
	l.line = l.src[begin:end]
	return true
}
