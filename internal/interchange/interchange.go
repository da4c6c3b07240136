package interchange

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// Node type tags used in the wire form.
const (
	kindElement = "element"
	kindText    = "text"
	kindComment = "comment"
)

// payload is the wire shape of one node.
type payload struct {
	Type       string            `json:"type"`
	Tag        string            `json:"tag,omitempty"`
	Attributes domain.Attributes `json:"attributes,omitempty"`
	Children   []payload         `json:"children,omitempty"`
	Content    string            `json:"content,omitempty"`
}

// Marshal encodes doc into the JSON interchange form.
func Marshal(doc domain.Document) ([]byte, error) {
	data, err := json.Marshal(encodeNodes(doc))
	if err != nil {
		return nil, fmt.Errorf("encoding tree: %w", err)
	}
	return data, nil
}

// MarshalIndent is Marshal with indentation for human-facing output.
func MarshalIndent(doc domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(encodeNodes(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tree: %w", err)
	}
	return data, nil
}

// Unmarshal decodes the JSON interchange form into a document.
func Unmarshal(data []byte) (domain.Document, error) {
	var payloads []payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	nodes, err := decodeNodes(payloads)
	if err != nil {
		return nil, err
	}
	return domain.Document(nodes), nil
}

func encodeNodes(nodes []domain.Node) []payload {
	out := make([]payload, 0, len(nodes))
	for _, n := range nodes {
		if p, ok := encodeNode(n); ok {
			out = append(out, p)
		}
	}
	return out
}

// encodeNode maps one node to its wire shape. Anything outside the
// node sum is skipped, mirroring how the serialiser treats unknown
// kinds.
func encodeNode(n domain.Node) (payload, bool) {
	switch n := n.(type) {
	case domain.Text:
		return payload{Type: kindText, Content: n.Content}, true
	case domain.Comment:
		return payload{Type: kindComment, Content: n.Content}, true
	case domain.Element:
		return payload{
			Type:       kindElement,
			Tag:        n.Tag,
			Attributes: n.Attrs,
			Children:   encodeNodes(n.Children),
		}, true
	default:
		return payload{}, false
	}
}

func decodeNodes(payloads []payload) ([]domain.Node, error) {
	if len(payloads) == 0 {
		return nil, nil
	}
	nodes := make([]domain.Node, 0, len(payloads))
	for _, p := range payloads {
		n, err := decodeNode(p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(p payload) (domain.Node, error) {
	switch p.Type {
	case kindText:
		return domain.Text{Content: p.Content}, nil

	case kindComment:
		return domain.Comment{Content: p.Content}, nil

	case kindElement:
		if p.Tag == "" {
			return nil, fmt.Errorf("element node without tag: %w", domain.ErrInvalidInput)
		}
		children, err := decodeNodes(p.Children)
		if err != nil {
			return nil, err
		}
		return domain.Element{Tag: p.Tag, Attrs: p.Attributes, Children: children}, nil

	default:
		return nil, fmt.Errorf("unknown node type %q: %w", p.Type, domain.ErrInvalidInput)
	}
}
