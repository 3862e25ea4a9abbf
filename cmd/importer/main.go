package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"bookshelf/config"
	"bookshelf/internal/app"
	logs "bookshelf/internal/infra/log"
	"bookshelf/internal/usecase"
)

// Supported subcommands:
// - import: Import or refresh one work by its catalog key
// - search: Search the external catalog and import every result
// - find:   Search the local catalog

func main() {
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importKey := importCmd.String("key", "", "Work key, e.g. /works/OL27448W or OL27448W")

	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	searchQuery := searchCmd.String("q", "", "Search query")
	searchLimit := searchCmd.Int("limit", 0, "Maximum results to import (0 uses catalog.searchLimit)")

	findCmd := flag.NewFlagSet("find", flag.ExitOnError)
	findQuery := findCmd.String("q", "", "Title or author fragment")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var run func(ctx context.Context, catalog usecase.CatalogUsecase) error
	switch os.Args[1] {
	case "import":
		_ = importCmd.Parse(os.Args[2:])
		run = func(ctx context.Context, catalog usecase.CatalogUsecase) error {
			book, err := catalog.ImportBook(ctx, *importKey)
			if err != nil {
				return err
			}
			printBooks(book)

			return nil
		}
	case "search":
		_ = searchCmd.Parse(os.Args[2:])
		run = func(ctx context.Context, catalog usecase.CatalogUsecase) error {
			books, err := catalog.ImportSearch(ctx, *searchQuery, *searchLimit)
			if err != nil {
				return err
			}
			printBooks(books...)

			return nil
		}
	case "find":
		_ = findCmd.Parse(os.Args[2:])
		run = func(ctx context.Context, catalog usecase.CatalogUsecase) error {
			books, err := catalog.Search(ctx, *findQuery)
			if err != nil {
				return err
			}
			printBooks(books...)

			return nil
		}
	default:
		printUsage()
		os.Exit(1)
	}

	if err := execute(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute builds the catalog, runs one command and releases the storage again.
func execute(ctx context.Context, run func(context.Context, usecase.CatalogUsecase) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(cfg)
	if err != nil {
		return err
	}

	container, err := app.New(ctx, cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to build importer")
	}

	runErr := run(ctx, container.Catalog)
	if err := container.Close(); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to close importer")
	}

	return runErr
}

func printUsage() {
	fmt.Println("Usage: importer <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  import  Import or refresh one work (-key)")
	fmt.Println("  search  Search the external catalog and import the results (-q, -limit)")
	fmt.Println("  find    Search the local catalog (-q)")
}
