package domain

// Walk traverses the document depth first, calling fn for every node
// together with its depth. Top-level nodes are at depth 0. When fn
// returns false the node's children are skipped.
func Walk(doc Document, fn func(n Node, depth int) bool) {
	walkNodes(doc, 0, fn)
}

func walkNodes(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, n := range nodes {
		if !fn(n, depth) {
			continue
		}
		if el, ok := n.(Element); ok {
			walkNodes(el.Children, depth+1, fn)
		}
	}
}
