package convert

import "strings"

const (
	paragraphOpen  = "<p>\n"
	paragraphClose = "\n</p>"
	lineBreak      = "\n<br/>\n"
)

// paragraph collects plain text lines starting at cursor. It stops at a blank
// line or at a line that opens a heading or a list. When nothing is collected
// the step skips exactly one line and emits nothing.
func (c *Converter) paragraph(lines []string, cursor int) Block {
	var text []string
	for _, line := range lines[cursor:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isMarkerLine(trimmed) {
			break
		}
		text = append(text, trimmed)
	}

	if len(text) == 0 {
		c.debug("skipping line", "cursor", cursor)
		return Block{Kind: BlockNone, Consumed: 1}
	}

	c.debug("paragraph", "cursor", cursor, "lines", len(text))

	return Block{
		Kind:      BlockParagraph,
		Fragments: []string{paragraphOpen + strings.Join(text, lineBreak) + paragraphClose},
		Consumed:  len(text),
	}
}
