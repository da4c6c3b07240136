package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// ParseStrict parses input with the HTML5 fragment algorithm instead
// of the relaxed scanner. Standard recovery rules apply before the
// tree is converted, so implied and repaired elements appear in the
// result, and unlike Parse it can return an error. It is never the
// default path.
func (p *Parser) ParseStrict(input string) (domain.Document, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	fragment, err := html.ParseFragment(strings.NewReader(input), context)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	doc := make(domain.Document, 0, len(fragment))
	for _, n := range fragment {
		if node, ok := p.convertStrict(n, ""); ok {
			doc = append(doc, node)
		}
	}
	return doc, nil
}

// convertStrict maps one x/net/html node into the domain tree. Text is
// trimmed and whitespace-only runs dropped, except inside raw-text
// elements where the interior stays verbatim; doctypes and anything
// else outside the node sum are dropped.
func (p *Parser) convertStrict(n *html.Node, parent string) (domain.Node, bool) {
	switch n.Type {
	case html.TextNode:
		if p.dialect.IsRawText(parent) {
			if strings.TrimSpace(n.Data) == "" {
				return nil, false
			}
			return domain.Text{Content: n.Data}, true
		}
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil, false
		}
		return domain.Text{Content: text}, true

	case html.CommentNode:
		return domain.Comment{Content: strings.TrimSpace(n.Data)}, true

	case html.ElementNode:
		el := domain.Element{Tag: strings.ToLower(n.Data)}
		for _, attr := range n.Attr {
			el.Attrs.Set(attr.Key, attr.Val)
		}
		if !p.dialect.IsVoid(el.Tag) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if child, ok := p.convertStrict(c, el.Tag); ok {
					el.Children = append(el.Children, child)
				}
			}
		}
		return el, true

	default:
		return nil, false
	}
}
