// Package outline provides the tree outline view component for the TUI.
package outline

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// entry is one node in the outline tree. Children are materialised once
// so expand state survives cursor movement.
type entry struct {
	node     domain.Node
	depth    int
	children []*entry
	expanded bool
}

// View is the tree outline view.
type View struct {
	styles *styles.Styles

	roots   []*entry
	visible []*entry

	cursor       int
	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates an outline over the document. Elements start expanded.
func NewView(s *styles.Styles, doc domain.Document) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		width:  80,
		height: 24,
	}
	v.roots = buildEntries(doc, 0)
	v.visible = v.flatten()
	return v
}

// buildEntries materialises the entry tree for a slice of sibling nodes.
func buildEntries(nodes []domain.Node, depth int) []*entry {
	entries := make([]*entry, 0, len(nodes))
	for _, n := range nodes {
		e := &entry{node: n, depth: depth, expanded: true}
		if el, ok := n.(domain.Element); ok {
			e.children = buildEntries(el.Children, depth+1)
		}
		entries = append(entries, e)
	}
	return entries
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the outline view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.adjustScroll()
			return v, v.selectionChanged()
		}
	case "down", "j":
		if v.cursor < len(v.visible)-1 {
			v.cursor++
			v.adjustScroll()
			return v, v.selectionChanged()
		}
	case "enter", "l":
		return v, v.toggleSelected()
	}

	return v, nil
}

// selectionChanged returns a command announcing the node under the cursor.
func (v *View) selectionChanged() tea.Cmd {
	e := v.selectedEntry()
	if e == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.NodeSelected{Node: e.node, Depth: e.depth}
	}
}

// toggleSelected flips the expand state of the selected element. Leaves
// and non-elements are left alone.
func (v *View) toggleSelected() tea.Cmd {
	e := v.selectedEntry()
	if e == nil || len(e.children) == 0 {
		return nil
	}

	e.expanded = !e.expanded
	v.visible = v.flatten()
	if v.cursor >= len(v.visible) {
		v.cursor = len(v.visible) - 1
	}
	v.adjustScroll()
	return v.selectionChanged()
}

// flatten lists the entries visible under the current expand state, in
// document order.
func (v *View) flatten() []*entry {
	var visible []*entry
	var walk func(entries []*entry)
	walk = func(entries []*entry) {
		for _, e := range entries {
			visible = append(visible, e)
			if e.expanded {
				walk(e.children)
			}
		}
	}
	walk(v.roots)
	return visible
}

func (v *View) selectedEntry() *entry {
	if v.cursor < 0 || v.cursor >= len(v.visible) {
		return nil
	}
	return v.visible[v.cursor]
}

// adjustScroll adjusts the scroll offset to keep the cursor visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	} else if v.cursor >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.cursor - visibleItems + 1
	}
}

// visibleItemCount returns the number of lines available for entries.
func (v *View) visibleItemCount() int {
	// Reserve one line for the scroll indicator.
	available := v.height - 1
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the outline.
func (v *View) View() string {
	var b strings.Builder

	if len(v.visible) == 0 {
		b.WriteString(v.styles.Muted.Render("Empty document."))
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.visible) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderEntry(i, v.visible[i]))
		b.WriteString("\n")
	}

	if len(v.visible) > visibleItems {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visibleItems, len(v.visible)),
			len(v.visible))))
	}

	return b.String()
}

// renderEntry renders one outline line.
func (v *View) renderEntry(index int, e *entry) string {
	indicator := "  "
	if index == v.cursor {
		indicator = "> "
	}

	indent := strings.Repeat("  ", e.depth)

	glyph := "  "
	if len(e.children) > 0 {
		glyph = "▸ "
		if e.expanded {
			glyph = "▾ "
		}
	}

	avail := v.width - len(indicator) - len(indent) - 2
	if index == v.cursor {
		return v.styles.Selected.Render(indicator + indent + glyph + v.plainLabel(e.node, avail))
	}
	return indicator + indent + glyph + v.styledLabel(e.node, avail)
}

// plainLabel renders a node label without colours, for the cursor line.
func (v *View) plainLabel(n domain.Node, max int) string {
	switch n := n.(type) {
	case domain.Element:
		return "<" + n.Tag + ">" + truncate(attrSummary(n), max-len(n.Tag)-2)
	case domain.Text:
		return `"` + truncate(n.Content, max-2) + `"`
	case domain.Comment:
		return "<!-- " + truncate(n.Content, max-9) + " -->"
	}
	return ""
}

// styledLabel renders a node label with the kind colours.
func (v *View) styledLabel(n domain.Node, max int) string {
	switch n := n.(type) {
	case domain.Element:
		head := "<" + n.Tag + ">"
		attrs := truncate(attrSummary(n), max-len(head))
		return v.styles.Tag.Render(head) + v.styles.Attr.Render(attrs)
	case domain.Text:
		return v.styles.Text.Render(`"` + truncate(n.Content, max-2) + `"`)
	case domain.Comment:
		return v.styles.Comment.Render("<!-- " + truncate(n.Content, max-9) + " -->")
	}
	return ""
}

// attrSummary renders an element's attributes as one leading-space string.
func attrSummary(el domain.Element) string {
	var b strings.Builder
	for _, attr := range el.Attrs {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		if attr.Value != "" {
			b.WriteString(`="`)
			b.WriteString(attr.Value)
			b.WriteString(`"`)
		}
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.adjustScroll()
}

// SelectedIndex returns the cursor position in the visible list.
func (v *View) SelectedIndex() int {
	return v.cursor
}

// SelectedNode returns the node under the cursor, or nil for an empty
// document.
func (v *View) SelectedNode() domain.Node {
	e := v.selectedEntry()
	if e == nil {
		return nil
	}
	return e.node
}

// SelectedDepth returns the depth of the node under the cursor.
func (v *View) SelectedDepth() int {
	e := v.selectedEntry()
	if e == nil {
		return 0
	}
	return e.depth
}

// VisibleCount returns how many entries the current expand state shows.
func (v *View) VisibleCount() int {
	return len(v.visible)
}

// truncate shortens s to at most max runes, marking the cut.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
