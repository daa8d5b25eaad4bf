package creole

import "strings"

// parseLine classifies one line and dispatches to a structural handler.
//
// While a preformatted block is open every line is literal content until a
// column-exact "}}}" closes it. An indented closing line is markup-escaped:
// its first character is dropped and the rest emitted literally, which lets
// authors write a "}}}" line inside a preformatted block.
func (s *parseState) parseLine(line string) {
	if s.contains(tagPreformatted) {
		if line == "}}}" {
			s.closeTag(tagPreformatted)
			return
		}
		if strings.TrimSpace(line) == "}}}" {
			line = line[1:]
		}
		s.out = append(s.out, escapeHTML(line), "\n")
		return
	}
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		s.closeAll()
	case line == "{{{":
		s.closeAll()
		s.openTag(tagPreformatted)
	case line == "----":
		s.closeAll()
		s.addLeaf(tagHorizontalRule)
	case line[0] == '=':
		s.closeAll()
		s.parseHeading(line)
	case line[0] == '#' || line[0] == '*':
		s.parseListItem(line)
	case line[0] == ';' || line[0] == ':':
		s.parseDefinitionItem(line)
	case line[0] == '|':
		s.parseTableRow(line)
	default:
		s.parseContent(line)
	}
}
