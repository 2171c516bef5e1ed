package main

import (
	"context"
	"fmt"
	"os"

	"github.com/moodlist/moodlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter config file and prepares the storage backend.
//
// The file backend needs no preparation, so the database is only touched
// when the config selects sqlite or --force-db is set.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.config = config

	if config.Storage.Backend != shared.BackendSQLite && !cmd.Bool("force-db") {
		r.writePlain("✓ Setup complete, %s backend needs no database\n", config.Storage.Backend)
		return nil
	}

	r.logger.Info("initializing database", "path", config.Storage.Database.Path)

	db, err := shared.NewDatabase(config.Storage.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Storage.Database.MaxOpenConns, config.Storage.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.writePlain("✓ Database ready at %s\n", config.Storage.Database.Path)
	return nil
}
