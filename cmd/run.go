package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/app"
	"github.com/abhisek/academy/internal/catalog"
	"github.com/abhisek/academy/internal/logger"
	"github.com/abhisek/academy/internal/store"
)

// loadCatalog returns the catalog named by --catalog, or the built-in one.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	return readCatalogFile(path)
}

func readCatalogFile(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := catalog.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// openStore builds the logger and the session store shared by all commands.
func openStore(cmd *cobra.Command) (*store.Store, *logger.Logger, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	cat, err := loadCatalog(cmd)
	if err != nil {
		log.Error("catalog load failed", "err", err)
		log.Sync()
		return nil, nil, err
	}
	log.Debug("catalog loaded", "version", cat.Version(), "lessons", cat.Total())
	return store.New(cat, log), log, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, log, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	lessonID, _ := cmd.Flags().GetString("lesson")
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	if err := app.Run(app.Options{
		Store:       st,
		Logger:      log,
		StartLesson: lessonID,
		SkipWelcome: noSplash,
	}); err != nil {
		log.Error("tui exited with error", "err", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
