// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// NodeSelected is sent when the outline cursor moves to a different node.
type NodeSelected struct {
	Node  domain.Node
	Depth int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowse is the two pane outline and detail view.
	ViewBrowse ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowse:
		return "browse"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
