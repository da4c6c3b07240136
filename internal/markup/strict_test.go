package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

func TestParseStrict_SimpleFragment(t *testing.T) {
	doc, err := ParseStrict(`<div id="a">hello</div>`)
	require.NoError(t, err)

	assert.Equal(t, domain.Document{
		domain.Element{
			Tag:      "div",
			Attrs:    domain.Attributes{{Key: "id", Value: "a"}},
			Children: []domain.Node{domain.Text{Content: "hello"}},
		},
	}, doc)
}

func TestParseStrict_ImpliedClosing(t *testing.T) {
	// The HTML5 algorithm closes list items implicitly, which the
	// relaxed scanner never does.
	doc, err := ParseStrict("<ul><li>a<li>b</ul>")
	require.NoError(t, err)

	require.Len(t, doc, 1)
	ul := doc[0].(domain.Element)
	require.Len(t, ul.Children, 2)

	first := ul.Children[0].(domain.Element)
	second := ul.Children[1].(domain.Element)
	assert.Equal(t, "li", first.Tag)
	assert.Equal(t, []domain.Node{domain.Text{Content: "a"}}, first.Children)
	assert.Equal(t, "li", second.Tag)
	assert.Equal(t, []domain.Node{domain.Text{Content: "b"}}, second.Children)
}

func TestParseStrict_RawTextPreserved(t *testing.T) {
	doc, err := ParseStrict("<script>if (a < b) { x(); }</script>")
	require.NoError(t, err)

	require.Len(t, doc, 1)
	script := doc[0].(domain.Element)
	require.Len(t, script.Children, 1)
	assert.Equal(t, domain.Text{Content: "if (a < b) { x(); }"}, script.Children[0])
}

func TestParseStrict_VoidElement(t *testing.T) {
	doc, err := ParseStrict(`text<br>more`)
	require.NoError(t, err)

	assert.Equal(t, domain.Document{
		domain.Text{Content: "text"},
		domain.Element{Tag: "br"},
		domain.Text{Content: "more"},
	}, doc)
}

func TestParseStrict_CommentTrimmed(t *testing.T) {
	doc, err := ParseStrict("<!--  note  -->")
	require.NoError(t, err)

	assert.Equal(t, domain.Document{domain.Comment{Content: "note"}}, doc)
}

func TestParseStrict_WhitespaceTextDropped(t *testing.T) {
	doc, err := ParseStrict("<div>   </div>")
	require.NoError(t, err)

	assert.Equal(t, domain.Document{domain.Element{Tag: "div"}}, doc)
}

func TestParseStrict_AttributeOrder(t *testing.T) {
	doc, err := ParseStrict(`<a href="/x" title="t" hidden>link</a>`)
	require.NoError(t, err)

	a := doc[0].(domain.Element)
	assert.Equal(t, domain.Attributes{
		{Key: "href", Value: "/x"},
		{Key: "title", Value: "t"},
		{Key: "hidden", Value: ""},
	}, a.Attrs)
}

func TestParseStrict_SerialisableResult(t *testing.T) {
	doc, err := ParseStrict(`<section><h1>Title</h1><p>body</p></section>`)
	require.NoError(t, err)

	assert.Equal(t, "<section><h1>Title</h1><p>body</p></section>", Serialise(doc))
}
