// Package convert turns a restricted, line-oriented subset of Markdown into HTML.
//
// Each source line is classified by its leading characters:
//
//	# Title      -> <h1>Title</h1>
//	- item       -> <ul> ... </ul>
//	* item       -> <ol> ... </ol>
//	plain text   -> <p> ... </p>
//
// Contiguous lines of the same kind form one block. Blank lines separate blocks
// and produce no output. Text is passed through verbatim; nothing is escaped.
package convert

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a Converter.
type Options struct {
	// Logger receives debug records for every classification step.
	// A nil Logger disables tracing.
	Logger *log.Logger
}

// Converter runs the block classifier over a document.
// A Converter only reads its options and is safe for concurrent use.
type Converter struct {
	logger *log.Logger
}

// New creates a Converter with the given options.
func New(opts Options) *Converter {
	return &Converter{logger: opts.Logger}
}

// Convert renders lines with a Converter that does no tracing.
func Convert(lines []string) string {
	return New(Options{}).Convert(lines)
}

// Convert renders lines to HTML. The fragments of every block are joined by a
// newline, in source order, with no trailing newline. Convert accepts any input,
// including no lines at all, and never fails.
func (c *Converter) Convert(lines []string) string {
	return strings.Join(c.Fragments(lines), "\n")
}

// Fragments returns the HTML fragments for lines without joining them.
func (c *Converter) Fragments(lines []string) []string {
	c.debug("converting", "lines", len(lines))

	var fragments []string
	for cursor := 0; cursor < len(lines); {
		block := c.Step(lines, cursor)
		fragments = append(fragments, block.Fragments...)
		cursor += block.Consumed
	}

	return fragments
}

// Step classifies the line at cursor and runs the matching handler.
// The returned Block always consumes at least one line. A cursor outside
// lines yields an empty Block that consumes one line.
func (c *Converter) Step(lines []string, cursor int) Block {
	if cursor < 0 || cursor >= len(lines) {
		return Block{Kind: BlockNone, Consumed: 1}
	}

	trimmed := strings.TrimSpace(lines[cursor])
	kind, style := classify(trimmed)

	switch kind {
	case BlockHeading:
		return c.heading(trimmed)
	case BlockList:
		return c.list(lines, cursor, style)
	default:
		return c.paragraph(lines, cursor)
	}
}

func (c *Converter) debug(msg string, keyvals ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, keyvals...)
}
