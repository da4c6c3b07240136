package driven

import "github.com/custodia-labs/treeml-cli/internal/core/domain"

// TreeParser scans markup text into a node tree.
type TreeParser interface {
	// Parse scans input with the relaxed scanner. It is total:
	// malformed input degrades into best-effort nodes, never an error.
	Parse(input string) domain.Document

	// ParseStrict parses input with the HTML5 fragment algorithm. This
	// is the opt-in strict variant and the only parse path that can
	// fail.
	ParseStrict(input string) (domain.Document, error)
}

// TreeSerialiser renders a node tree back into markup text. Both
// methods are total; unknown node kinds render as the empty string.
type TreeSerialiser interface {
	// Serialise renders the document nodes in order, concatenated
	// without separators.
	Serialise(doc domain.Document) string

	// SerialiseNode renders a single node.
	SerialiseNode(n domain.Node) string
}
