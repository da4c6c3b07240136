package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
	"github.com/custodia-labs/treeml-cli/internal/markup"
)

var (
	fmtStrict   bool
	fmtCollapse bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat markup through a parse and serialise cycle",
	Long: `Parses markup and serialises it straight back, producing the
canonical form: lowercased tags, double-quoted attribute values,
trimmed text and uniform comment padding.

The output of fmt is a fixed point: running it twice gives the same
result.

Examples:
  treeml fmt page.html
  cat page.html | treeml fmt --collapse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtStrict, "strict", false, "use the HTML5 fragment parser")
	fmtCmd.Flags().BoolVar(&fmtCollapse, "collapse", false, "also collapse whitespace runs inside text")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := convertService.Format(cmd.Context(), input, driving.ConvertOptions{Strict: fmtStrict})
	if err != nil {
		return fmt.Errorf("formatting: %w", err)
	}

	if fmtCollapse {
		out = markup.Normalise(out)
	}

	cmd.Println(out)
	return nil
}
