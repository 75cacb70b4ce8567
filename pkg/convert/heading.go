package convert

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// headingLevel counts the leading `#` characters. There is no upper bound.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	return level
}

// heading renders a single heading line.
// The text starts after the `#` run and one separating character, which may be
// multi-byte. A line made only of `#` characters yields an empty heading.
func (c *Converter) heading(line string) Block {
	trimmed := strings.TrimSpace(line)
	level := headingLevel(trimmed)

	_, size := utf8.DecodeRuneInString(trimmed[level:])
	text := strings.TrimSpace(trimmed[level+size:])

	c.debug("heading", "level", level, "text", text)

	return Block{
		Kind:      BlockHeading,
		Fragments: []string{fmt.Sprintf("<h%d>%s</h%d>", level, text, level)},
		Consumed:  1,
	}
}
