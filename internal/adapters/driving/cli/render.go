package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file.json]",
	Short: "Render a JSON node tree back into markup",
	Long: `Reads a JSON node tree (as produced by convert) and prints the
serialised markup.

Reads the named file, or stdin when no file (or "-") is given.

Examples:
  treeml render tree.json
  treeml convert page.html | treeml render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	markup, err := convertService.Render(cmd.Context(), []byte(input))
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	cmd.Println(markup)
	return nil
}
