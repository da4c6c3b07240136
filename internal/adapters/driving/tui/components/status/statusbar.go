// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/styles"
)

// Bar displays the document name, cursor position and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	name     string
	position int
	total    int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	bar := s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)

	return bar
}

// renderLeft renders the document name and cursor position.
func (s *Bar) renderLeft() string {
	if s.total == 0 {
		return s.styles.Normal.Render(s.name) + s.styles.Muted.Render(" empty document")
	}
	return s.styles.Normal.Render(s.name) + s.styles.Muted.Render(fmt.Sprintf(" %d/%d", s.position, s.total))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.BrowseHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hint := fmt.Sprintf("%s: %s", h.Key, h.Desc)
		hints = append(hints, hint)
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetName sets the document name.
func (s *Bar) SetName(name string) {
	s.name = name
}

// Name returns the document name.
func (s *Bar) Name() string {
	return s.name
}

// SetPosition sets the one-based cursor position and the visible total.
func (s *Bar) SetPosition(position, total int) {
	s.position = position
	s.total = total
}

// Position returns the current cursor position.
func (s *Bar) Position() int {
	return s.position
}

// Total returns the visible node count.
func (s *Bar) Total() int {
	return s.total
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
