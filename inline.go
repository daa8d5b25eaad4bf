package creole

import "strings"

// freeLinkPrefixes are the URI schemes recognized for free-standing links.
var freeLinkPrefixes = []string{"http://", "https://", "ftp://"}

func isFreeLink(s string) bool {
	for _, prefix := range freeLinkPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// isAbsoluteURI reports whether uri begins with an RFC 3986 scheme followed
// by "://". The slashes are a deliberate narrowing of RFC 3986 so interwiki
// targets like "WikiPedia:Creole" still reach the resolver.
func isAbsoluteURI(uri string) bool {
	if len(uri) < 4 {
		return false
	}
	if !isAlpha(uri[0]) {
		return false
	}
	i := 1
	for i < len(uri) && isSchemeChar(uri[i]) {
		i++
	}
	return strings.HasPrefix(uri[i:], "://")
}

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isSchemeChar(c byte) bool {
	return isAlpha(c) || '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'
}

// parseFragment scans line[index:] for inline markup, stopping early if the
// optional delimiter is found. The return value is the index just past the
// consumed input, or the index of the delimiter's first character (the
// caller decides whether to consume it). Each iteration makes strictly
// forward progress, so the scan always terminates.
func (s *parseState) parseFragment(line string, index int, delim string) int {
	length := len(line)
	escape := false
	begin := index
	for index < length {
		// An open code span absorbs everything up to its closing braces.
		if s.contains(tagCode) {
			index = s.parseNowiki(line, index)
			begin = index
			continue
		}
		if escape {
			escape = false
			index++
			continue
		}
		if line[index] == '~' {
			if index+1 < length && line[index+1] != ' ' && line[index+1] != '\t' {
				s.addText(line, begin, index)
				escape = true
				begin = index + 1
			}
			index++
			continue
		}
		if delim != "" && strings.HasPrefix(line[index:], delim) {
			s.addText(line, begin, index)
			begin = index
			break
		}
		if strings.HasPrefix(line[index:], "{{{") {
			s.addText(line, begin, index)
			s.openTag(tagCode)
			index += 3
			begin = index
			continue
		}
		if isFreeLink(line[index:]) {
			s.addText(line, begin, index)
			index = s.parseFreeLink(line, index)
			begin = index
			continue
		}
		var nextTwo string
		if index+2 <= length {
			nextTwo = line[index : index+2]
		}
		if tag, ok := inlineMarkup[nextTwo]; ok {
			// The marker closes its tag when that tag is innermost, opens it
			// when it is not on the stack at all, and is literal text when
			// the tag is open deeper down (illegal overlap).
			switch {
			case s.top() == tag:
				s.addText(line, begin, index)
				s.closeTag(tag)
				begin = index + 2
			case !s.contains(tag):
				s.addText(line, begin, index)
				s.openTag(tag)
				begin = index + 2
			}
			index += 2
			continue
		}
		switch nextTwo {
		case `\\`:
			s.addText(line, begin, index)
			s.addLeaf(tagBreak)
			index += 2
			begin = index
		case "[[":
			s.addText(line, begin, index)
			index = s.parseLink(line, index+2)
			begin = index
		case "{{":
			s.addText(line, begin, index)
			index = s.parseImage(line, index+2)
			begin = index
		default:
			index++
		}
	}
	s.addText(line, begin, index)
	return index
}

// parseNowiki copies characters literally until an unescaped closing "}}}".
// A "}}}" followed by another brace is not a close, so "}}}}" stays inside
// the span. An unterminated span simply runs to end of input.
func (s *parseState) parseNowiki(line string, index int) int {
	length := len(line)
	begin := index
	for index < length {
		if strings.HasPrefix(line[index:], "}}}") &&
			(index == length-3 || line[index+3] != '}') {
			s.addText(line, begin, index)
			s.closeTag(tagCode)
			index += 3
			begin = index
			break
		}
		index++
	}
	s.addText(line, begin, index)
	return index
}

// parseFreeLink consumes a free-standing URI up to whitespace or end of
// line. A single trailing punctuation character is retracted from the link
// and left as ordinary text.
func (s *parseState) parseFreeLink(line string, index int) int {
	length := len(line)
	begin := index
	for index < length && line[index] != ' ' && line[index] != '\t' {
		index++
	}
	if strings.IndexByte(`,.?!:;"'`, line[index-1]) >= 0 {
		index--
	}
	href := line[begin:index]
	s.openTag(tagLink, attr{"href", href})
	s.out = append(s.out, escapeHTML(href))
	s.closeTag(tagLink)
	return index
}

// parseLink handles [[target]] and [[target|label]], with index positioned
// just past the opening brackets. The state is checkpointed first: a link
// that never closes is rolled back and re-emitted as literal text from the
// opening brackets through end of line. The label after a pipe is scanned
// as a full inline fragment, so emphasis works inside it.
func (s *parseState) parseLink(line string, index int) int {
	length := len(line)
	begin := index
	snap := s.save()
	for index < length && !strings.HasPrefix(line[index:], "]]") {
		if line[index] == '|' {
			href := s.resolve(strings.TrimSpace(line[begin:index]))
			s.openTag(tagLink, attr{"href", href})
			index = s.parseFragment(line, index+1, "]]")
			s.closeTag(tagLink)
			break
		}
		index++
	}
	if len(s.out) == snap.outLen { // no pipe was found
		href := s.resolve(line[begin:index])
		s.openTag(tagLink, attr{"href", href})
		s.out = append(s.out, escapeHTML(href))
		s.closeTag(tagLink)
	}
	if index < length {
		return index + 2
	}
	s.restore(snap)
	s.addText(line, begin-2, index)
	return index
}

// parseImage handles {{src}} and {{src|alt}}, with index positioned just
// past the opening braces. The alt text is plain text, never scanned for
// markup. An image that never closes is emitted as literal text.
func (s *parseState) parseImage(line string, index int) int {
	length := len(line)
	begin := index
	saved := index
	src := ""
	srcSet := false
	for index < length && !strings.HasPrefix(line[index:], "}}") {
		if line[index] == '|' && !srcSet {
			src = line[begin:index]
			srcSet = true
			begin = index + 1
		}
		index++
	}
	if index < length {
		var alt string
		if srcSet {
			alt = strings.TrimSpace(line[begin:index])
		} else {
			src = line[begin:index]
		}
		resolved := s.resolve(strings.TrimSpace(src))
		if srcSet {
			s.addLeaf(tagImage, attr{"src", resolved}, attr{"alt", alt})
		} else {
			s.addLeaf(tagImage, attr{"src", resolved})
		}
		return index + 2
	}
	s.addText(line, saved-2, index)
	return index
}
