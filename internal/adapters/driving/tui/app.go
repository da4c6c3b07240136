// Package tui provides the interactive terminal UI for browsing a
// parsed node tree.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/views/outline"
	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// focusArea identifies which pane receives key input.
type focusArea int

const (
	focusOutline focusArea = iota
	focusDetail
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// outlineView is the tree outline pane.
	outlineView *outline.View

	// detailView is the node detail pane.
	detailView *detail.View

	// statusBar is the bottom status line.
	statusBar *status.Bar

	// name is the displayed input name.
	name string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// focus tracks which pane receives key input.
	focus focusArea

	// width and height are terminal dimensions.
	width  int
	height int

	// outlineWidth, detailWidth and paneHeight are the computed pane
	// dimensions, refreshed by layout.
	outlineWidth int
	detailWidth  int
	paneHeight   int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application over the parsed document. The
// name labels the input in the title and status bar.
func NewApp(doc domain.Document, name string) *App {
	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()
	outlineView := outline.NewView(s, doc)
	detailView := detail.NewView(s)
	statusBar := status.NewBar(s, keys)

	statusBar.SetName(name)

	a := &App{
		styles:      s,
		keys:        keys,
		outlineView: outlineView,
		detailView:  detailView,
		statusBar:   statusBar,
		name:        name,
		currentView: messages.ViewBrowse,
		focus:       focusOutline,
	}

	// Seed the detail pane from the initial cursor position.
	if n := outlineView.SelectedNode(); n != nil {
		detailView.SetNode(n, outlineView.SelectedDepth())
	}
	a.syncStatus()

	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("treeml - "+a.name),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.NodeSelected:
		a.detailView.SetNode(msg.Node, msg.Depth)
		a.syncStatus()
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil
	}

	return a, nil
}

// handleKeyMsg routes key presses to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Global quit with ctrl+c
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		switch {
		case keymap.Matches(keyStr, a.keys.Back), keymap.Matches(keyStr, a.keys.Help):
			a.currentView = messages.ViewBrowse
		case keymap.Matches(keyStr, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case keymap.Matches(keyStr, a.keys.Quit), keymap.Matches(keyStr, a.keys.Back):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keys.Help):
		a.currentView = messages.ViewHelp
		return a, nil

	case keymap.Matches(keyStr, a.keys.SwitchPane):
		if a.focus == focusOutline {
			a.focus = focusDetail
		} else {
			a.focus = focusOutline
		}
		return a, nil
	}

	// Forward remaining keys to the focused pane
	var cmd tea.Cmd
	if a.focus == focusOutline {
		a.outlineView, cmd = a.outlineView.Update(msg)
		a.syncStatus()
	} else {
		a.detailView, cmd = a.detailView.Update(msg)
	}
	return a, cmd
}

// syncStatus refreshes the status bar from the outline cursor.
func (a *App) syncStatus() {
	a.statusBar.SetPosition(a.outlineView.SelectedIndex()+1, a.outlineView.VisibleCount())
}

// layout recomputes the pane dimensions from the terminal size.
func (a *App) layout() {
	// One line each for the title and the status bar, two for the
	// pane borders.
	paneHeight := a.height - 2 - 2
	if paneHeight < 3 {
		paneHeight = 3
	}

	outlineWidth := a.width / 2
	detailWidth := a.width - outlineWidth

	a.outlineWidth = outlineWidth
	a.detailWidth = detailWidth
	a.paneHeight = paneHeight

	// Borders consume two columns per pane.
	a.outlineView.SetDimensions(outlineWidth-2, paneHeight)
	a.detailView.SetDimensions(detailWidth-2, paneHeight)
	a.statusBar.SetWidth(a.width)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}

	return a.viewBrowse()
}

// viewBrowse renders the outline and detail panes with the status bar.
func (a *App) viewBrowse() string {
	title := a.styles.Title.Render("treeml") + " " + a.styles.Muted.Render(a.name)

	outlineStyle := a.styles.Border
	detailStyle := a.styles.Border
	if a.focus == focusOutline {
		outlineStyle = a.styles.FocusedBorder
	} else {
		detailStyle = a.styles.FocusedBorder
	}

	outlinePane := outlineStyle.Width(a.outlineWidth - 2).Height(a.paneHeight).Render(a.outlineView.View())
	detailPane := detailStyle.Width(a.detailWidth - 2).Height(a.paneHeight).Render(a.detailView.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, outlinePane, detailPane)

	return lipgloss.JoinVertical(lipgloss.Left, title, panes, a.statusBar.View())
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Outline:
  j/k, ↑/↓    Move the cursor
  enter/l     Expand or collapse the selected element
  tab         Switch to the detail pane

Detail:
  j/k, ↑/↓    Scroll
  tab         Switch to the outline pane

General:
  ?           Toggle help
  q, esc      Quit
  ctrl+c      Quit

[esc] back to browsing`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Name returns the displayed input name.
func (a *App) Name() string {
	return a.name
}

// SelectedNode returns the node under the outline cursor.
func (a *App) SelectedNode() domain.Node {
	return a.outlineView.SelectedNode()
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}
