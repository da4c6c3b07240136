package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/treeml-cli/internal/core/domain"
)

// testDocument builds a small tree:
//
//	<div id="root">
//	  <p>hello</p>
//	  <!-- note -->
//	</div>
//	<br>
func testDocument() domain.Document {
	return domain.Document{
		domain.Element{
			Tag:   "div",
			Attrs: domain.Attributes{{Key: "id", Value: "root"}},
			Children: []domain.Node{
				domain.Element{Tag: "p", Children: []domain.Node{domain.Text{Content: "hello"}}},
				domain.Comment{Content: "note"},
			},
		},
		domain.Element{Tag: "br"},
	}
}

// goToHelpView navigates the app from browse to help view for testing.
func goToHelpView(app *App) {
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})
}

func TestNewApp(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	require.NotNil(t, app)
	assert.Equal(t, messages.ViewBrowse, app.CurrentView())
	assert.Equal(t, "index.html", app.Name())
	assert.False(t, app.Ready())
}

func TestNewApp_SeedsDetailFromSelection(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	node := app.detailView.Node()
	require.NotNil(t, node)
	el, ok := node.(domain.Element)
	require.True(t, ok)
	assert.Equal(t, "div", el.Tag)
}

func TestNewApp_SyncsStatusBar(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	assert.Equal(t, "index.html", app.statusBar.Name())
	assert.Equal(t, 1, app.statusBar.Position())
	assert.Equal(t, 5, app.statusBar.Total())
}

func TestNewApp_EmptyDocument(t *testing.T) {
	app := NewApp(domain.Document{}, "empty.html")

	require.NotNil(t, app)
	assert.Nil(t, app.SelectedNode())
	assert.Equal(t, 0, app.statusBar.Total())
}

func TestApp_Init(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_KeyMsg_Quit(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	// Quit returns tea.Quit
	assert.NotNil(t, cmd)
}

func TestApp_Update_KeyMsg_CtrlC(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.NotNil(t, cmd)
}

func TestApp_Update_KeyMsg_EscapeQuits(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.NotNil(t, cmd)
}

func TestApp_Update_KeyMsg_QuestionMark(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	app.Update(msg)

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestApp_Update_KeyMsg_InHelpView_Escape(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	goToHelpView(app)

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewBrowse, app.CurrentView())
}

func TestApp_Update_KeyMsg_InHelpView_QuestionMark(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	goToHelpView(app)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	app.Update(msg)

	assert.Equal(t, messages.ViewBrowse, app.CurrentView())
}

func TestApp_Update_KeyMsg_InHelpView_Quit(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	goToHelpView(app)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	_, cmd := app.Update(msg)

	assert.NotNil(t, cmd)
}

func TestApp_Update_KeyMsg_InHelpView_OtherKey(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	goToHelpView(app)

	msg := tea.KeyMsg{Type: tea.KeyDown}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestApp_Update_KeyMsg_Tab_SwitchesFocus(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	assert.Equal(t, focusOutline, app.focus)

	msg := tea.KeyMsg{Type: tea.KeyTab}
	app.Update(msg)
	assert.Equal(t, focusDetail, app.focus)

	app.Update(msg)
	assert.Equal(t, focusOutline, app.focus)
}

func TestApp_Update_KeyMsg_NavigationForwardedToOutline(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	_, cmd := app.Update(msg)

	node := app.SelectedNode()
	require.NotNil(t, node)
	el, ok := node.(domain.Element)
	require.True(t, ok)
	assert.Equal(t, "p", el.Tag)

	// Status bar follows the cursor
	assert.Equal(t, 2, app.statusBar.Position())

	// The outline emits a selection command
	require.NotNil(t, cmd)
	result := cmd()
	selected, ok := result.(messages.NodeSelected)
	require.True(t, ok)
	assert.Equal(t, 1, selected.Depth)
}

func TestApp_Update_NodeSelected_UpdatesDetail(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	msg := messages.NodeSelected{Node: domain.Text{Content: "hello"}, Depth: 2}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)

	text, ok := app.detailView.Node().(domain.Text)
	require.True(t, ok)
	assert.Equal(t, "hello", text.Content)
	assert.Equal(t, 2, app.detailView.Depth())
}

func TestApp_Update_KeyMsg_ScrollForwardedToDetail(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 10)

	// Focus the detail pane, then scroll
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	assert.Equal(t, 1, app.detailView.ScrollOffset())
}

func TestApp_Update_KeyMsg_CollapseUpdatesStatus(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	app.Update(msg)

	assert.Equal(t, 2, app.statusBar.Total())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	msg := messages.ViewChanged{View: messages.ViewHelp}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestApp_View_NotReady(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	view := app.View()

	assert.Contains(t, view, "Initialising")
}

func TestApp_View_BrowseView(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	app.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "treeml")
	assert.Contains(t, view, "index.html")
	assert.Contains(t, view, "<div>")
}

func TestApp_View_HelpView(t *testing.T) {
	app := NewApp(testDocument(), "index.html")
	goToHelpView(app)

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Outline")
	assert.Contains(t, view, "Detail")
}

func TestApp_View_EmptyDocument(t *testing.T) {
	app := NewApp(domain.Document{}, "empty.html")
	app.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "Empty document.")
	assert.Contains(t, view, "No node selected.")
}

func TestApp_SetDimensions(t *testing.T) {
	app := NewApp(testDocument(), "index.html")

	assert.False(t, app.Ready())

	app.SetDimensions(100, 50)

	assert.True(t, app.Ready())
}
