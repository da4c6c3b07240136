package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/treeml-cli/internal/core/ports/driving"
	"github.com/custodia-labs/treeml-cli/internal/logger"
)

var (
	watchStrict bool
	watchIndent bool
)

// watchLimiter paces conversions; editors fire several events per save.
var watchLimiter = rate.NewLimiter(rate.Limit(10), 1)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and convert markup files on change",
	Long: `Watches a directory for changes to .html and .htm files and writes
the JSON node tree next to each changed file.

A change to page.html produces page.json in the same directory.
Conversion failures are reported and watching continues. Stop with
Ctrl-C.

Examples:
  treeml watch ./site
  treeml watch ./site --indent`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchStrict, "strict", false, "use the HTML5 fragment parser")
	watchCmd.Flags().BoolVarP(&watchIndent, "indent", "i", false, "indent the JSON output files")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("watching %s for markup changes\n", dir)
	logger.Info("watching %s", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldConvert(event) {
				continue
			}
			if err := watchLimiter.Wait(ctx); err != nil {
				return nil
			}
			if err := convertFile(ctx, event.Name); err != nil {
				logger.Error("converting %s: %v", event.Name, err)
				continue
			}
			cmd.Printf("converted %s\n", event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// shouldConvert filters watch events down to content changes of
// visible markup files.
func shouldConvert(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return isMarkupFile(event.Name)
}

func isMarkupFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// convertFile converts one markup file and writes the JSON tree next
// to it.
func convertFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	result, err := convertService.Convert(ctx, string(data), driving.ConvertOptions{
		Strict: watchStrict,
		Pretty: watchIndent,
	})
	if err != nil {
		return err
	}

	target := outputPath(path)
	if err := os.WriteFile(target, append(result.JSON, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	logger.Debug("wrote %s (%d nodes)", target, result.Stats.TotalNodes())
	return nil
}

// outputPath maps page.html to page.json in the same directory.
func outputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}
