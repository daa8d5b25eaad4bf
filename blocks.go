package creole

import (
	"strconv"
	"strings"
	"unicode"
)

// parseContent handles a paragraph line. Inside an open paragraph, list, or
// definition list the line continues the current content element, separated
// by a single space unless the previous line ended with a forced break.
func (s *parseState) parseContent(line string) {
	if s.contains(tagParagraph) || s.contains(tagOrderedList) ||
		s.contains(tagUnorderedList) || s.contains(tagDefinitionList) {
		if s.last != tagBreak {
			s.out = append(s.out, " ")
		}
		s.last = ""
	} else {
		s.closeAll()
		s.openTag(tagParagraph)
	}
	s.parseFragment(line, 0, "")
}

// parseHeading handles a "=" line. The run of leading equal signs gives the
// level (clamped to 6). Heading text runs to the next unescaped "=" or end
// of line; "~=" stands for a literal equal sign. Whatever follows the
// closing equal signs becomes the heading's id attribute. Heading text is
// escaped but not scanned for inline markup.
func (s *parseState) parseHeading(line string) {
	index := 0
	level := 0
	for index < len(line) && line[index] == '=' {
		level++
		index++
	}
	if level > 6 {
		level = 6
	}
	var text strings.Builder
	begin := index
	for index < len(line) {
		if strings.HasPrefix(line[index:], "~=") {
			text.WriteString(line[begin:index])
			text.WriteByte('=')
			index += 2
			begin = index
		} else if line[index] == '=' {
			break
		} else {
			index++
		}
	}
	text.WriteString(line[begin:index])
	heading := escapeHTML(strings.TrimSpace(text.String()))
	if s.heading == "" {
		s.heading = heading
	}
	for index < len(line) && line[index] == '=' {
		index++
	}
	id := strings.TrimLeftFunc(line[index:], unicode.IsSpace)
	tag := headingTags[level-1]
	if id != "" {
		s.openTag(tag, attr{"id", id})
	} else {
		s.openTag(tag)
	}
	s.out = append(s.out, heading)
	s.closeTag(tag)
}

// parseListItem handles a "#" or "*" line. The marker run length is the
// target depth. A jump of more than one level deeper is invalid nesting and
// the line is reprocessed as plain content, which also keeps a line opening
// with ** from being read as a list item.
func (s *parseState) parseListItem(line string) {
	marker := line[0]
	index := 0
	for index < len(line) && line[index] == marker {
		index++
	}
	level := index
	current := s.listLevel()
	delta := level - current
	if delta > 1 {
		s.parseContent(line)
		return
	}
	if current == 0 {
		s.closeAll()
	}
	switch {
	case delta < 0:
		s.closeTagN(-delta, tagOrderedList, tagUnorderedList)
		s.closeTag(tagListItem)
	case delta > 0:
		tag := tagUnorderedList
		if marker == '#' {
			tag = tagOrderedList
		}
		s.openTag(tag)
	default:
		s.closeTag(tagListItem)
	}
	s.openTag(tagListItem)
	s.parseFragment(line, index, "")
}

// parseDefinitionItem handles a ";" (term) or ":" (description) line. Term
// and description elements alternate as siblings inside one <dl>.
func (s *parseState) parseDefinitionItem(line string) {
	if !s.contains(tagDefinitionList) {
		s.closeAll()
		s.openTag(tagDefinitionList)
	}
	if s.top() != tagDefinitionList {
		s.closeTag(tagTerm, tagDescription)
	}
	if line[0] == ';' {
		s.openTag(tagTerm)
	} else {
		s.openTag(tagDescription)
	}
	s.parseFragment(line, 1, "")
}

// parseTableRow handles a "|" line. A contiguous run of cell markers merges
// into one cell whose colspan equals the run length; the last marker in the
// run decides between a header and a data cell. A trailing marker run with
// no content is skipped without emitting an empty cell.
func (s *parseState) parseTableRow(line string) {
	length := len(line)
	index := 0
	if !s.contains(tagTable) {
		s.closeAll()
		s.openTag(tagTable)
	}
	s.openTag(tagTableRow)
	for index < length {
		colspan := 0
		tag := tagTableData
		for index < length && line[index] == '|' {
			if strings.HasPrefix(line[index:], "|=") {
				tag = tagTableHeader
				index += 2
			} else {
				tag = tagTableData
				index++
			}
			colspan++
		}
		if index < length {
			if colspan > 1 {
				s.openTag(tag, attr{"colspan", strconv.Itoa(colspan)})
			} else {
				s.openTag(tag)
			}
			index = s.parseFragment(line, index, "|")
			s.closeTag(tag)
		}
	}
	s.closeTag(tagTableRow)
}
