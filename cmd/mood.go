package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/moodlist/moodlist/internal/library"
	"github.com/urfave/cli/v3"
)

// MoodList shows every mood with its songs, marking the favorite.
func (r *Runner) MoodList(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if cmd.Bool("json") {
		return r.writeJSON(profile.Playlists(), true)
	}

	moods := profile.MoodNames()
	if len(moods) == 0 {
		r.writePlain("No moods yet\n")
		return nil
	}

	playlists := profile.Playlists()
	favorite := profile.FavoriteMood()
	for _, mood := range moods {
		marker := ""
		if mood == favorite {
			marker = " ★"
		}
		r.writePlain("%s%s\n", mood, marker)
		songs := playlists[mood]
		if len(songs) == 0 {
			r.writePlain("  (empty)\n")
		}
		for i, song := range songs {
			r.writePlain("  %d. %s\n", i+1, song)
		}
	}
	return nil
}

// MoodCreate adds an empty playlist under a new mood name.
func (r *Runner) MoodCreate(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	name := cmd.StringArg("name")
	if err := profile.CreateMood(name); err != nil {
		return err
	}
	sess.Save()

	r.writePlain("✓ Created mood %q\n", library.Normalize(name))
	return nil
}

// MoodRename renames a mood and re-points a favorite that referenced the old
// name.
func (r *Runner) MoodRename(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	oldName := cmd.StringArg("old")
	newName := cmd.StringArg("new")

	if err := profile.RenameMood(oldName, newName); err != nil {
		return err
	}
	if profile.FavoriteMood() == library.Normalize(oldName) {
		if err := profile.SetFavoriteMood(newName); err != nil {
			return err
		}
	}
	sess.Save()

	r.writePlain("✓ Renamed %q to %q\n", library.Normalize(oldName), library.Normalize(newName))
	return nil
}

// MoodClear empties every playlist after confirmation.
func (r *Runner) MoodClear(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if !cmd.Bool("yes") {
		var confirmed bool
		if err := huh.NewConfirm().Title("Clear every playlist?").Value(&confirmed).Run(); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			r.writePlain("Aborted\n")
			return nil
		}
	}

	profile.ClearAllMoods()
	sess.Save()

	r.writePlain("✓ Cleared %d playlists\n", len(profile.MoodNames()))
	return nil
}
