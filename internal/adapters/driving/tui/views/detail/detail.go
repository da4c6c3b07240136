// Package detail provides the node detail view component for the TUI.
package detail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/markup"
)

// View is the node detail view. It shows the fields of the node
// selected in the outline, plus its serialised markup.
type View struct {
	styles *styles.Styles

	node  domain.Node
	depth int

	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates a detail view with no node selected.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
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
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	}

	return v, nil
}

// SetNode sets the node to display and resets the scroll position.
func (v *View) SetNode(n domain.Node, depth int) {
	v.node = n
	v.depth = depth
	v.scrollOffset = 0
}

// View renders the detail view.
func (v *View) View() string {
	if v.node == nil {
		return v.styles.Muted.Render("No node selected.")
	}

	lines := v.buildContent()

	visibleLines := v.visibleLineCount()
	start := v.scrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := minInt(start+visibleLines, len(lines))

	var b strings.Builder
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(lines) > visibleLines {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]", start+1, end, len(lines))))
	}

	return b.String()
}

// buildContent renders the node fields into displayable lines.
func (v *View) buildContent() []string {
	var lines []string

	switch n := v.node.(type) {
	case domain.Element:
		lines = append(lines, v.formatField("Kind", "element"))
		lines = append(lines, v.formatField("Tag", n.Tag))
		lines = append(lines, v.formatField("Depth", fmt.Sprintf("%d", v.depth)))
		lines = append(lines, v.formatField("Children", fmt.Sprintf("%d", len(n.Children))))
		lines = append(lines, v.formatField("Attributes", fmt.Sprintf("%d", len(n.Attrs))))
		if len(n.Attrs) > 0 {
			lines = append(lines, "")
			lines = append(lines, v.styles.Subtitle.Render("Attributes:"))
			for _, attr := range n.Attrs {
				value := attr.Value
				if value == "" {
					lines = append(lines, "  "+v.styles.Attr.Render(attr.Key))
					continue
				}
				lines = append(lines, "  "+v.styles.Attr.Render(attr.Key)+": "+truncate(value, 50))
			}
		}
		lines = append(lines, "")
		lines = append(lines, v.styles.Subtitle.Render("Markup:"))
		lines = append(lines, v.wrapIndented(markup.SerialiseNode(n))...)

	case domain.Text:
		lines = append(lines, v.formatField("Kind", "text"))
		lines = append(lines, v.formatField("Depth", fmt.Sprintf("%d", v.depth)))
		lines = append(lines, v.formatField("Length", fmt.Sprintf("%d", len(n.Content))))
		lines = append(lines, "")
		lines = append(lines, v.styles.Subtitle.Render("Content:"))
		lines = append(lines, v.wrapIndented(n.Content)...)

	case domain.Comment:
		lines = append(lines, v.formatField("Kind", "comment"))
		lines = append(lines, v.formatField("Depth", fmt.Sprintf("%d", v.depth)))
		lines = append(lines, v.formatField("Length", fmt.Sprintf("%d", len(n.Content))))
		lines = append(lines, "")
		lines = append(lines, v.styles.Subtitle.Render("Content:"))
		lines = append(lines, v.wrapIndented(n.Content)...)
	}

	return lines
}

// formatField renders one labelled field line.
func (v *View) formatField(label, value string) string {
	return v.styles.Muted.Render(fmt.Sprintf("%-12s", label+":")) + v.styles.Normal.Render(value)
}

// wrapIndented wraps text to the view width with a two-space indent.
func (v *View) wrapIndented(text string) []string {
	width := v.width - 4
	if width < 20 {
		width = 20
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		if len(runes) == 0 {
			lines = append(lines, "")
			continue
		}
		for len(runes) > width {
			lines = append(lines, "  "+string(runes[:width]))
			runes = runes[width:]
		}
		lines = append(lines, "  "+string(runes))
	}
	return lines
}

// visibleLineCount returns the number of lines available for content.
func (v *View) visibleLineCount() int {
	// Reserve one line for the scroll indicator.
	available := v.height - 1
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the furthest the content can scroll.
func (v *View) maxScrollOffset() int {
	max := len(v.buildContent()) - v.visibleLineCount()
	if max < 0 {
		return 0
	}
	return max
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Node returns the node being displayed, or nil.
func (v *View) Node() domain.Node {
	return v.node
}

// Depth returns the outline depth of the displayed node.
func (v *View) Depth() int {
	return v.depth
}

// ScrollOffset returns the current scroll position.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
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
