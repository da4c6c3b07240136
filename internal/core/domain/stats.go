package domain

// Stats summarises the shape of a parsed tree.
type Stats struct {
	Elements   int
	TextNodes  int
	Comments   int
	Attributes int
	MaxDepth   int
}

// TotalNodes returns the number of nodes of any kind.
func (s Stats) TotalNodes() int {
	return s.Elements + s.TextNodes + s.Comments
}

// CollectStats walks the document and tallies node counts and depth.
// MaxDepth is the deepest level holding a node; an empty document has
// depth 0.
func CollectStats(doc Document) Stats {
	var stats Stats
	Walk(doc, func(n Node, depth int) bool {
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
		switch n := n.(type) {
		case Element:
			stats.Elements++
			stats.Attributes += n.Attrs.Len()
		case Text:
			stats.TextNodes++
		case Comment:
			stats.Comments++
		}
		return true
	})
	return stats
}
