package main

import (
	"context"
	"errors"

	"github.com/moodlist/moodlist/internal/backup"
	"github.com/moodlist/moodlist/internal/export"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Export writes the signed-in account's playlists to a file in the
// requested format.
//
// A bad format is a usage error and aborts the command. A failed write is
// reported in-band so a half-finished session is not torn down by a full
// disk or a bad path.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	format := cmd.String("format")
	output := cmd.String("output")

	path, err := export.Write(profile, format, output, r.config.Export.Dir)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidArgument) {
			return err
		}
		r.logger.Warn("export failed", "format", format, "error", err)
		r.writePlain("✗ Export failed: %v\n", err)
		return nil
	}

	r.writePlain("✓ Exported playlists to %s\n", path)
	return nil
}

// Backup exports every account in the catalog to its own JSON file.
func (r *Runner) Backup(ctx context.Context, cmd *cli.Command) error {
	opts := backup.Opts{
		OutputDir:  cmd.String("dir"),
		NumWorkers: int(cmd.Int("workers")),
	}

	r.logger.Info("starting catalog backup", "dir", opts.OutputDir, "workers", opts.NumWorkers)

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan backup.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case backup.ScanCatalog:
				r.writePlain("📦 %s\n", update.Message)
			case backup.ExportAccount:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Run(ctx, progressCh, opts)
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Backup complete")
	r.writePlain("Accounts: %d\n", result.TotalAccounts)
	r.writePlain("Exported: %d\n", result.SuccessfulExports)
	r.writePlain("Failed: %d\n", result.FailedExports)

	if result.FailedExports > 0 {
		r.writePlain("\nFailed accounts:\n")
		for _, account := range result.Results {
			if !account.Success {
				r.writePlain("  - %s: %s\n", account.Username, account.Error)
			}
		}
	}

	r.writePlain("Manifest: %s\n", result.ManifestPath)
	return nil
}
