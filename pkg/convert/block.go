package convert

import "strings"

// BlockKind identifies which handler a line is dispatched to.
type BlockKind int

const (
	// BlockNone is produced when a step consumes a line without emitting anything
	// (blank lines and other unclassifiable input).
	BlockNone BlockKind = iota

	// BlockHeading is a single `#`-prefixed line.
	BlockHeading

	// BlockList is a run of lines sharing one list marker.
	BlockList

	// BlockParagraph is a run of plain text lines.
	BlockParagraph
)

// String returns the lowercase name of the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockList:
		return "list"
	case BlockParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// Line markers.
const (
	headingMarker = "#"
	markerWidth   = 2
)

// ListStyle pairs a line marker with the HTML tag wrapping its items.
type ListStyle struct {
	Marker string
	Tag    string
}

// The `- ` marker opens an unordered list and `* ` opens an ordered list.
// This is the converter's contract even though CommonMark treats `*` as a bullet.
//
//nolint:gochecknoglobals // Read-only marker table.
var (
	UnorderedList = ListStyle{Marker: "- ", Tag: "ul"}
	OrderedList   = ListStyle{Marker: "* ", Tag: "ol"}
)

// listStyles is the order in which list markers are tested.
//
//nolint:gochecknoglobals // Read-only marker table.
var listStyles = []ListStyle{UnorderedList, OrderedList}

// Block is the outcome of one classifier step.
type Block struct {
	// Kind is the handler that produced the block.
	Kind BlockKind

	// Fragments are the HTML strings emitted, in order. Empty for BlockNone.
	Fragments []string

	// Consumed is the number of source lines the step used. Always at least 1.
	Consumed int
}

// classify decides which handler owns a trimmed line.
// The returned ListStyle is only meaningful for BlockList.
func classify(trimmed string) (BlockKind, ListStyle) {
	if strings.HasPrefix(trimmed, headingMarker) {
		return BlockHeading, ListStyle{}
	}
	for _, style := range listStyles {
		if strings.HasPrefix(trimmed, style.Marker) {
			return BlockList, style
		}
	}
	return BlockParagraph, ListStyle{}
}

// isMarkerLine reports whether a trimmed line starts a heading or a list.
func isMarkerLine(trimmed string) bool {
	kind, _ := classify(trimmed)
	return kind != BlockParagraph
}
