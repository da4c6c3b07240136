// Package cli implements the treeml command line interface using cobra.
// Commands are thin adapters: they read input, call a driving port and
// print the result. Services are injected once at startup via
// SetServices.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
	"github.com/custodia-labs/treeml-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	convertService driving.ConvertService
	archiveService driving.ArchiveService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "treeml",
	Short: "Convert markup into node trees and back",
	Long: `treeml parses a forgiving HTML subset into a JSON node tree and
renders trees back into markup.

The parser never fails: malformed input degrades to text nodes or is
skipped, so every invocation produces a tree. Conversions can be
archived and replayed, directories can be watched and converted on
change, and the tree structure can be inspected interactively.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the driving ports used by the commands.
func SetServices(convert driving.ConvertService, archive driving.ArchiveService) {
	convertService = convert
	archiveService = archive
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput returns the markup to operate on: the named file, or stdin
// when no argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// inputName returns a human label for the input used in archive names.
func inputName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}
