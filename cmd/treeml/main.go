package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/treeml-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/treeml-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
	"github.com/custodia-labs/treeml-cli/internal/core/services"
	"github.com/custodia-labs/treeml-cli/internal/markup"
)

// version is injected at build time via ldflags.
var version = ""

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run assembles the adapters and services, then hands over to the CLI.
func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	cfg, err := configStore.Load(context.Background())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dialect := cfg.Dialect()
	parser := markup.NewParser(markup.WithDialect(dialect))
	serialiser := markup.NewSerialiser(markup.WithDialect(dialect))

	// Conversions work without the archive; saving then reports it
	// as disabled.
	var records driven.RecordStore
	if cfg.Archive.Enabled {
		store, err := sqlite.NewStore(cfg.Archive.Path)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer store.Close()
		records = store.RecordStore()
	}

	convertService := services.NewConvertService(
		parser, serialiser, records,
		services.WithStrictDefault(cfg.Strict),
		services.WithPrettyDefault(cfg.PrettyJSON),
	)
	archiveService := services.NewArchiveService(records)

	cli.SetVersion(version)
	cli.SetServices(convertService, archiveService)

	return cli.Execute()
}
