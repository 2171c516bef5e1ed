package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// positionToIndex converts a 1-based display position to a playlist index.
// Negative positions count from the end, so -1 is the last song.
func positionToIndex(position int) (int, error) {
	if position == 0 {
		return 0, fmt.Errorf("%w: position 0, songs are numbered from 1", shared.ErrInvalidFlag)
	}
	if position > 0 {
		return position - 1, nil
	}
	return position, nil
}

// SongAdd appends a song to a mood's playlist.
func (r *Runner) SongAdd(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	mood := cmd.StringArg("mood")
	title := cmd.StringArg("title")

	if err := profile.AddSong(mood, title); err != nil {
		return err
	}
	sess.Save()

	r.writePlain("✓ Added %q to %q\n", strings.TrimSpace(title), library.Normalize(mood))
	return nil
}

// SongDelete removes a song by display position.
func (r *Runner) SongDelete(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	index, err := positionToIndex(int(cmd.Int("at")))
	if err != nil {
		return err
	}

	removed, err := profile.DeleteSong(cmd.StringArg("mood"), index)
	if err != nil {
		return err
	}
	sess.Save()

	r.writePlain("✓ Removed %q\n", removed)
	return nil
}

// SongRename retitles a song by display position.
func (r *Runner) SongRename(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	index, err := positionToIndex(int(cmd.Int("at")))
	if err != nil {
		return err
	}

	title := cmd.StringArg("title")
	old, err := profile.RenameSong(cmd.StringArg("mood"), index, title)
	if err != nil {
		return err
	}
	sess.Save()

	r.writePlain("✓ Renamed %q to %q\n", old, strings.TrimSpace(title))
	return nil
}
