package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/moodlist/moodlist/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	if level, err := log.ParseLevel(config.Logging.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  openStore(config, logger),
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "moodlist",
		Usage:    "Manage per-account mood playlists",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

// openStore builds the catalog backend the configuration names. A database
// that cannot be opened degrades to the file backend with a warning instead
// of aborting.
func openStore(config *shared.Config, logger *log.Logger) store.Store {
	if config.Storage.Backend == shared.BackendSQLite {
		db, err := shared.NewDatabase(config.Storage.Database.Path)
		if err == nil {
			shared.ConfigureDatabase(db, config.Storage.Database.MaxOpenConns, config.Storage.Database.MaxIdleConns)
			return store.NewSQLiteStore(db, logger)
		}
		logger.Warn("failed to open database, falling back to file storage", "error", err)
	}
	return store.NewFileStore(config.Storage.File.Path, logger)
}
