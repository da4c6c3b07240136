package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	archiveShowTree   bool
	archiveShowSource bool
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived conversions",
	Long: `Commands for the conversion archive.

Conversions stored with "treeml convert --save" can be listed,
inspected and removed.`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived conversions",
	RunE:  runArchiveList,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an archived conversion",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an archived conversion",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveDelete,
}

func init() {
	archiveShowCmd.Flags().BoolVar(&archiveShowTree, "tree", false, "print only the JSON tree")
	archiveShowCmd.Flags().BoolVar(&archiveShowSource, "source", false, "print only the original markup")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveDeleteCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchiveList(cmd *cobra.Command, _ []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	records, err := archiveService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing archive: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No archived conversions.")
		return nil
	}

	cmd.Println("Archived conversions:")
	cmd.Println()
	for i := range records {
		rec := &records[i]
		cmd.Printf("  [%d] %s (%s)\n", i+1, rec.Name, rec.ID)
		cmd.Printf("      created %s, %d nodes, depth %d\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Stats.TotalNodes(), rec.Stats.MaxDepth)
	}
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	rec, err := archiveService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("showing record: %w", err)
	}

	switch {
	case archiveShowSource:
		cmd.Println(rec.Source)
	case archiveShowTree:
		cmd.Println(rec.Tree)
	default:
		cmd.Printf("Record:  %s\n", rec.ID)
		cmd.Printf("Name:    %s\n", rec.Name)
		cmd.Printf("Created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("Stats:   %s\n", summariseStats(rec.Stats))
		cmd.Println()
		cmd.Println(rec.Tree)
	}
	return nil
}

func runArchiveDelete(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}

	if err := archiveService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	cmd.Printf("deleted %s\n", args[0])
	return nil
}
