package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Search prints every song whose title contains the keyword. An empty
// keyword matches the whole collection.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	hits := profile.SearchSong(cmd.StringArg("keyword"))

	if cmd.Bool("json") {
		return r.writeJSON(hits, true)
	}

	if len(hits) == 0 {
		r.writePlain("No matches\n")
		return nil
	}
	for _, hit := range hits {
		r.writePlain("%s / %s\n", hit.Mood, hit.Song)
	}
	return nil
}

// Surprise picks one random song, scoped to a mood when --mood is given.
func (r *Runner) Surprise(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	pick, err := profile.SurpriseMe(cmd.String("mood"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(pick, true)
	}

	r.writePlain("♪ %s (%s)\n", pick.Song, pick.Mood)
	return nil
}

// Stats summarizes the collection: totals plus longest and shortest playlists.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	sess, profile, _, err := r.openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	stats := profile.Statistics()

	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}

	if stats.Moods == 0 {
		r.writePlain("No moods yet\n")
		return nil
	}

	r.writePlainHeader("Collection statistics")
	r.writePlain("Total songs: %d\n", stats.TotalSongs)
	r.writePlain("Moods: %d\n", stats.Moods)
	r.writePlain("Longest: %s (%d)\n", stats.Longest.Mood, stats.Longest.Count)
	r.writePlain("Shortest: %s (%d)\n", stats.Shortest.Mood, stats.Shortest.Count)
	return nil
}
