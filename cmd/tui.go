package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodlist/moodlist/internal/session"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/moodlist/moodlist/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive menu for managing one account's playlists.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.store == nil {
		return fmt.Errorf("%w: store not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Logging.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger = shared.WithLogger(fileLogger, "session", shared.SessionID())
	r.SetLogger(fileLogger)

	sess := session.Open(r.store, session.Opts{
		Defaults: r.config.Defaults,
		Logger:   fileLogger,
		Rand:     r.rng,
	})
	defer sess.Close()

	model := ui.NewModel(sess, r.config.Export.Dir)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	sess.Save()
	return nil
}
