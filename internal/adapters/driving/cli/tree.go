package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

var treeStrict bool

var (
	treeTagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	treeAttrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	treeTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	treeCommentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print an outline of the parsed node tree",
	Long: `Parses markup and prints an indented outline of the resulting
tree, followed by a summary of node counts and depth.

Examples:
  treeml tree page.html
  cat page.html | treeml tree`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeStrict, "strict", false, "use the HTML5 fragment parser")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := convertService.Convert(cmd.Context(), input, driving.ConvertOptions{Strict: treeStrict})
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	width := 80
	styled := false
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		styled = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	cmd.Print(renderOutline(result.Document, width, styled))
	cmd.Println(summariseStats(result.Stats))
	return nil
}

// renderOutline produces one line per node, indented two spaces per
// level. Text content is truncated to the terminal width.
func renderOutline(doc domain.Document, width int, styled bool) string {
	var b strings.Builder
	domain.Walk(doc, func(n domain.Node, depth int) bool {
		indent := strings.Repeat("  ", depth)
		b.WriteString(indent)
		b.WriteString(outlineLine(n, width-len(indent), styled))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

func outlineLine(n domain.Node, width int, styled bool) string {
	switch n := n.(type) {
	case domain.Element:
		line := "<" + n.Tag + ">"
		if styled {
			line = treeTagStyle.Render(line)
		}
		for _, attr := range n.Attrs {
			part := " " + attr.Key
			if attr.Value != "" {
				part += `="` + attr.Value + `"`
			}
			if styled {
				part = treeAttrStyle.Render(part)
			}
			line += part
		}
		return line

	case domain.Text:
		line := `"` + truncate(n.Content, width-2) + `"`
		if styled {
			return treeTextStyle.Render(line)
		}
		return line

	case domain.Comment:
		line := "<!-- " + truncate(n.Content, width-9) + " -->"
		if styled {
			return treeCommentStyle.Render(line)
		}
		return line
	}
	return ""
}

// summariseStats renders the one line footer under the outline.
func summariseStats(stats domain.Stats) string {
	return fmt.Sprintf("%d nodes (%d elements, %d text, %d comments), %d attributes, depth %d",
		stats.TotalNodes(), stats.Elements, stats.TextNodes, stats.Comments,
		stats.Attributes, stats.MaxDepth)
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
