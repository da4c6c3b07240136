package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
)

var (
	convertStrict bool
	convertIndent bool
	convertSave   bool
	convertName   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert markup into a JSON node tree",
	Long: `Parses markup and prints the node tree as JSON.

Reads the named file, or stdin when no file (or "-") is given. The
default parser never fails; --strict switches to the HTML5 fragment
parser, which reports errors instead of degrading.

Examples:
  # Convert a file
  treeml convert page.html

  # Convert from stdin, indented
  cat page.html | treeml convert --indent

  # Convert and keep a copy in the archive
  treeml convert page.html --save --name landing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "use the HTML5 fragment parser")
	convertCmd.Flags().BoolVarP(&convertIndent, "indent", "i", false, "indent the JSON output")
	convertCmd.Flags().BoolVar(&convertSave, "save", false, "store the conversion in the archive")
	convertCmd.Flags().StringVar(&convertName, "name", "", "archive name for the conversion (defaults to the input name)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	name := convertName
	if name == "" {
		name = inputName(args)
	}

	result, err := convertService.Convert(cmd.Context(), input, driving.ConvertOptions{
		Name:   name,
		Strict: convertStrict,
		Pretty: convertIndent,
		Save:   convertSave,
	})
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	cmd.Println(string(result.JSON))

	if result.RecordID != "" {
		cmd.PrintErrf("archived as %s\n", result.RecordID)
	}
	return nil
}
