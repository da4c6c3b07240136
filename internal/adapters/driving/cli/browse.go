package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

var browseStrict bool

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse a parsed node tree interactively",
	Long: `Launch the interactive terminal UI for exploring a parsed tree.

Reads the named file, or stdin when no file (or "-") is given. The
outline pane shows the tree; the detail pane shows the selected node.

Controls:
  ↑/k, ↓/j - Move the cursor
  Enter/l  - Expand / collapse the selected element
  Tab      - Switch between outline and detail
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseStrict, "strict", false, "use the HTML5 fragment parser")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := convertService.Convert(cmd.Context(), input, driving.ConvertOptions{Strict: browseStrict})
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	app := tui.NewApp(result.Document, inputName(args))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
