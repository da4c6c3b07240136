package domain

// Node is one node of a parsed markup tree. The sum is closed: Text,
// Comment and Element are the only implementations, so a serialiser can
// dispatch exhaustively and treat anything else as empty output.
type Node interface {
	node()
}

// Text is a run of character data between tags. Content is trimmed of
// surrounding whitespace and non-empty, except inside raw-text elements
// where the interior is kept verbatim, whitespace included.
type Text struct {
	Content string
}

// Comment is the trimmed interior of a comment block, without the
// delimiters.
type Comment struct {
	Content string
}

// Element is a tag with its attributes and children. Tag is always
// lowercase and matches [a-zA-Z0-9_-]+. Void elements have no children.
type Element struct {
	Tag      string
	Attrs    Attributes
	Children []Node
}

func (Text) node()    {}
func (Comment) node() {}
func (Element) node() {}

// Document is the ordered sequence of top-level sibling nodes produced
// by one parse. A fragment may have any number of top-level siblings,
// so a parse result is always a sequence rather than a single root.
type Document []Node
