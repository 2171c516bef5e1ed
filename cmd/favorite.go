package main

import (
	"context"

	"github.com/moodlist/moodlist/internal/library"
	"github.com/urfave/cli/v3"
)

// FavoriteShow prints the favorite mood's songs, or a note when the
// reference is unset or points at a mood that no longer exists.
func (r *Runner) FavoriteShow(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	songs, ok := profile.FavoriteSongs()
	if !ok {
		r.writePlain("No favorite mood set\n")
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"mood":  profile.FavoriteMood(),
			"songs": songs,
		}, true)
	}

	r.writePlain("%s ★\n", profile.FavoriteMood())
	if len(songs) == 0 {
		r.writePlain("  (empty)\n")
	}
	for i, song := range songs {
		r.writePlain("  %d. %s\n", i+1, song)
	}
	return nil
}

// FavoriteSet points the favorite reference at an existing mood.
func (r *Runner) FavoriteSet(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	mood := cmd.StringArg("mood")
	if err := profile.SetFavoriteMood(mood); err != nil {
		return err
	}
	sess.Save()

	r.writePlain("✓ Favorite set to %q\n", library.Normalize(mood))
	return nil
}

// FavoriteClear drops the favorite reference.
func (r *Runner) FavoriteClear(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	profile.ClearFavoriteMood()
	sess.Save()

	r.writePlain("✓ Favorite cleared\n")
	return nil
}
