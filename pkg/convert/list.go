package convert

import "strings"

// list collects the run of lines starting at cursor that carry style's marker.
// Adjacent runs with a different marker are left for the next step, so an
// unordered and an ordered list are never merged.
func (c *Converter) list(lines []string, cursor int, style ListStyle) Block {
	fragments := []string{"<" + style.Tag + ">"}

	consumed := 0
	for _, line := range lines[cursor:] {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, style.Marker) {
			break
		}

		item := strings.TrimSpace(trimmed[markerWidth:])
		c.debug("list item", "tag", style.Tag, "item", item)

		fragments = append(fragments, "<li>"+item+"</li>")
		consumed++
	}

	fragments = append(fragments, "</"+style.Tag+">")

	// The classifier only dispatches here on a marker line, but an empty run
	// must still move the cursor.
	if consumed == 0 {
		return Block{Kind: BlockNone, Consumed: 1}
	}

	return Block{Kind: BlockList, Fragments: fragments, Consumed: consumed}
}
