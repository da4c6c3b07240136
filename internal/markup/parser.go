package markup

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.TreeParser = (*Parser)(nil)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// tagNamePattern matches the leading tag-name token of a tag interior.
var tagNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+`)

// Option configures how a Parser or Serialiser classifies tags.
type Option func(*config)

type config struct {
	dialect domain.Dialect
}

// WithDialect replaces the dialect wholesale.
func WithDialect(d domain.Dialect) Option {
	return func(c *config) {
		c.dialect = d
	}
}

// WithVoidTags adds void tags on top of the current dialect.
func WithVoidTags(tags ...string) Option {
	return func(c *config) {
		c.dialect = c.dialect.WithVoidTags(tags...)
	}
}

// WithRawTextTags adds raw-text tags on top of the current dialect.
func WithRawTextTags(tags ...string) Option {
	return func(c *config) {
		c.dialect = c.dialect.WithRawTextTags(tags...)
	}
}

func newConfig(opts []Option) config {
	cfg := config{dialect: domain.DefaultDialect()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Parser scans markup text into a node tree.
type Parser struct {
	dialect domain.Dialect
}

// NewParser creates a parser. Without options it scans the relaxed
// HTML subset dialect.
func NewParser(opts ...Option) *Parser {
	return &Parser{dialect: newConfig(opts).dialect}
}

// Parse scans input into its top-level nodes. It never fails; any
// input produces a best-effort tree.
func (p *Parser) Parse(input string) domain.Document {
	return domain.Document(p.parseNodes(input))
}

// parseNodes is one left-to-right scan over src. The cursor is local
// to the call, so the recursive invocations on element interiors are
// independent of each other.
func (p *Parser) parseNodes(src string) []domain.Node {
	var nodes []domain.Node
	pos := 0
	for pos < len(src) {
		offset := strings.Index(src[pos:], "<")
		if offset < 0 {
			if text := strings.TrimSpace(src[pos:]); text != "" {
				nodes = append(nodes, domain.Text{Content: text})
			}
			break
		}

		open := pos + offset
		if text := strings.TrimSpace(src[pos:open]); text != "" {
			nodes = append(nodes, domain.Text{Content: text})
		}

		switch {
		case strings.HasPrefix(src[open:], commentOpen):
			comment, next, ok := scanComment(src, open)
			if !ok {
				// Unterminated comment: drop it and let the rest of
				// the input rejoin the text stream.
				pos = open + 1
				continue
			}
			nodes = append(nodes, comment)
			pos = next

		case open+1 < len(src) && src[open+1] == '/':
			// A closing tag at this level has no matching opener.
			// Skip the '<' only.
			pos = open + 1

		default:
			node, next, ok := p.scanElement(src, open)
			if next < 0 {
				// No '>' ahead: the document is truncated here and
				// the remainder is discarded.
				return nodes
			}
			if ok {
				nodes = append(nodes, node)
			}
			pos = next
		}
	}
	return nodes
}

// scanComment reads a comment starting at open, which must point at the
// comment-open marker. ok is false when the comment never closes.
func scanComment(src string, open int) (domain.Comment, int, bool) {
	start := open + len(commentOpen)
	end := strings.Index(src[start:], commentClose)
	if end < 0 {
		return domain.Comment{}, 0, false
	}
	content := strings.TrimSpace(src[start : start+end])
	return domain.Comment{Content: content}, start + end + len(commentClose), true
}

// scanElement reads an opening tag starting at open and, unless the
// element is void or unclosed, its whole span up to the matching
// closing tag. It returns the element, the cursor position after the
// consumed span, and whether a node was produced. A negative position
// means no '>' exists ahead and scanning must stop.
func (p *Parser) scanElement(src string, open int) (domain.Node, int, bool) {
	gt := strings.Index(src[open:], ">")
	if gt < 0 {
		return nil, -1, false
	}
	gt += open

	interior := src[open+1 : gt]
	name := tagNamePattern.FindString(interior)
	if name == "" {
		// Not a tag after all. Skip the '<' and no node is emitted.
		return nil, open + 1, false
	}
	name = strings.ToLower(name)
	attrs := ExtractAttributes(interior[len(name):])

	selfClosed := strings.HasSuffix(strings.TrimSpace(interior), "/")
	if selfClosed || p.dialect.IsVoid(name) {
		return domain.Element{Tag: name, Attrs: attrs}, gt + 1, true
	}

	end := indexClosingTag(src[gt+1:], name)
	if end < 0 {
		// No closing tag anywhere ahead: treat as self-closing.
		return domain.Element{Tag: name, Attrs: attrs}, gt + 1, true
	}

	inner := src[gt+1 : gt+1+end]
	var children []domain.Node
	if p.dialect.IsRawText(name) {
		if strings.TrimSpace(inner) != "" {
			children = []domain.Node{domain.Text{Content: inner}}
		}
	} else {
		children = p.parseNodes(inner)
	}

	after := gt + 1 + end + len("</>") + len(name)
	return domain.Element{Tag: name, Attrs: attrs, Children: children}, after, true
}

// indexClosingTag returns the offset of the first "</name>" in src, or
// -1. The name comparison folds ASCII case byte by byte, so offsets
// stay valid no matter what multi-byte text surrounds the tag.
func indexClosingTag(src, name string) int {
	n := len(name)
	for i := 0; i+n+3 <= len(src); i++ {
		if src[i] != '<' || src[i+1] != '/' || src[i+2+n] != '>' {
			continue
		}
		if strings.EqualFold(src[i+2:i+2+n], name) {
			return i
		}
	}
	return -1
}

// defaultParser backs the package-level convenience functions. It is
// read-only after init.
var defaultParser = NewParser()

// Parse scans input with the default dialect.
func Parse(input string) domain.Document {
	return defaultParser.Parse(input)
}

// ParseStrict parses input with the HTML5 fragment algorithm and the
// default dialect.
func ParseStrict(input string) (domain.Document, error) {
	return defaultParser.ParseStrict(input)
}
