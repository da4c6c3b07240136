package markup

import (
	"strings"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
)

// Ensure Serialiser implements the interface.
var _ driven.TreeSerialiser = (*Serialiser)(nil)

// Serialiser renders node trees back into markup text. It is the
// structural inverse of Parser for well-formed input, up to whitespace
// normalisation and attribute quoting style.
type Serialiser struct {
	dialect domain.Dialect
}

// NewSerialiser creates a serialiser. Without options it renders the
// relaxed HTML subset dialect.
func NewSerialiser(opts ...Option) *Serialiser {
	return &Serialiser{dialect: newConfig(opts).dialect}
}

// Serialise renders the document nodes in order, concatenated without
// separators.
func (s *Serialiser) Serialise(doc domain.Document) string {
	var b strings.Builder
	for _, n := range doc {
		s.writeNode(&b, n)
	}
	return b.String()
}

// SerialiseNode renders a single node.
func (s *Serialiser) SerialiseNode(n domain.Node) string {
	var b strings.Builder
	s.writeNode(&b, n)
	return b.String()
}

// writeNode dispatches over the closed node sum. Anything outside the
// three known kinds contributes nothing.
func (s *Serialiser) writeNode(b *strings.Builder, n domain.Node) {
	switch n := n.(type) {
	case domain.Text:
		b.WriteString(n.Content)

	case domain.Comment:
		b.WriteString("<!-- ")
		b.WriteString(n.Content)
		b.WriteString(" -->")

	case domain.Element:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, attr := range n.Attrs {
			b.WriteByte(' ')
			b.WriteString(attr.Key)
			if attr.Value != "" {
				b.WriteString(`="`)
				b.WriteString(attr.Value)
				b.WriteByte('"')
			}
		}
		b.WriteByte('>')
		if s.dialect.IsVoid(n.Tag) {
			// Void kinds never emit children or a closing tag.
			return
		}
		for _, child := range n.Children {
			s.writeNode(b, child)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

// defaultSerialiser backs the package-level convenience functions. It
// is read-only after init.
var defaultSerialiser = NewSerialiser()

// Serialise renders doc with the default dialect.
func Serialise(doc domain.Document) string {
	return defaultSerialiser.Serialise(doc)
}

// SerialiseNode renders a single node with the default dialect.
func SerialiseNode(n domain.Node) string {
	return defaultSerialiser.SerialiseNode(n)
}
