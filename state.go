package creole

import (
	"strings"
	"unicode"
)

// parseState holds everything that is mutable during a single parse: the
// open-tag stack, the output buffer, the first heading seen, and the most
// recently emitted tag (which drives whitespace trimming). A fresh state is
// allocated per parse call so a Parser can be shared across goroutines.
type parseState struct {
	stack    []string
	out      []string
	heading  string
	last     string // most recently emitted tag, "" after text
	xhtml    bool
	resolver Resolver
}

func newParseState(p *Parser) *parseState {
	return &parseState{
		xhtml:    p.xhtml,
		resolver: p.resolver,
	}
}

// snapshot is a checkpoint of the state used for speculative parsing of
// constructs that may turn out malformed. Restoring truncates the stack and
// buffer back to their recorded lengths; committing is simply not restoring.
type snapshot struct {
	stackLen int
	outLen   int
}

func (s *parseState) save() snapshot {
	return snapshot{stackLen: len(s.stack), outLen: len(s.out)}
}

func (s *parseState) restore(snap snapshot) {
	s.stack = s.stack[:snap.stackLen]
	s.out = s.out[:snap.outLen]
}

// top returns the innermost open tag, or "" when nothing is open.
func (s *parseState) top() string {
	if len(s.stack) == 0 {
		return ""
	}
	return s.stack[len(s.stack)-1]
}

// contains reports whether tag is open anywhere on the stack.
func (s *parseState) contains(tag string) bool {
	for _, t := range s.stack {
		if t == tag {
			return true
		}
	}
	return false
}

// listLevel counts the open list containers, i.e. the current nesting depth.
func (s *parseState) listLevel() int {
	level := 0
	for _, t := range s.stack {
		if t == tagOrderedList || t == tagUnorderedList {
			level++
		}
	}
	return level
}

// openTag emits an opening tag and pushes it onto the stack.
func (s *parseState) openTag(tag string, attrs ...attr) {
	s.addLeaf(tag, attrs...)
	s.stack = append(s.stack, tag)
}

// addLeaf emits a self-contained tag with no stack push. Void elements
// render with a self-closing suffix in XHTML mode.
func (s *parseState) addLeaf(tag string, attrs ...attr) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.value))
		b.WriteByte('"')
	}
	if s.xhtml && voidTags[tag] {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
	if !inlineTags[tag] {
		s.addNewline()
	}
	s.out = append(s.out, b.String())
	if !contentTags[tag] && !inlineTags[tag] {
		s.addNewline()
	}
	s.last = tag
}

// closeAll pops and closes every open tag.
func (s *parseState) closeAll() {
	s.close(nil, 1)
}

// closeTag pops tags until one whose name is in tags has been closed.
func (s *parseState) closeTag(tags ...string) {
	s.close(tags, 1)
}

// closeTagN pops tags until count tags from tags have been closed.
func (s *parseState) closeTagN(count int, tags ...string) {
	s.close(tags, count)
}

// close is the single closing primitive. With no target tags it drains the
// whole stack. Content elements have the trailing whitespace of their last
// text fragment trimmed so the closing tag sits flush against the text.
func (s *parseState) close(until []string, count int) {
	for len(s.stack) > 0 && count > 0 {
		tag := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if contentTags[tag] {
			s.out[len(s.out)-1] = strings.TrimRightFunc(s.out[len(s.out)-1], unicode.IsSpace)
		}
		if !contentTags[tag] && !inlineTags[tag] {
			s.addNewline()
		}
		s.out = append(s.out, "</"+tag+">")
		if !inlineTags[tag] {
			s.addNewline()
		}
		for _, t := range until {
			if t == tag {
				count--
				break
			}
		}
	}
}

// addText escapes and appends line[begin:end]. Text immediately following a
// content element's opening tag has its leading whitespace trimmed.
func (s *parseState) addText(line string, begin, end int) {
	if begin >= end || begin >= len(line) {
		return
	}
	text := line[begin:end]
	if contentTags[s.last] {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	s.last = ""
	s.out = append(s.out, escapeHTML(text))
}

// addNewline appends a newline fragment unless one is already pending.
func (s *parseState) addNewline() {
	if n := len(s.out); n > 0 && s.out[n-1] != "\n" {
		s.out = append(s.out, "\n")
	}
}

// resolve applies the configured resolver to non-absolute targets.
func (s *parseState) resolve(uri string) string {
	if s.resolver == nil {
		return uri
	}
	if isAbsoluteURI(uri) {
		return uri
	}
	return s.resolver.Resolve(uri)
}
