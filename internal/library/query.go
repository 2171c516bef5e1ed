package library

import (
	"fmt"
	"strings"

	"github.com/moodlist/moodlist/internal/shared"
)

// SearchHit is one (mood, song) match returned by [Profile.SearchSong].
type SearchHit struct {
	Mood string `json:"mood"`
	Song string `json:"song"`
}

// SurprisePick is the (mood, song) pair returned by [Profile.SurpriseMe].
type SurprisePick struct {
	Mood string `json:"mood"`
	Song string `json:"song"`
}

// MoodCount pairs a mood with its playlist length.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// Stats summarizes the whole collection. Longest and Shortest are zero
// values when no moods exist; ties go to the first mood in sorted order.
type Stats struct {
	TotalSongs int       `json:"total_songs"`
	Moods      int       `json:"num_moods"`
	Longest    MoodCount `json:"longest_playlist"`
	Shortest   MoodCount `json:"shortest_playlist"`
}

// SearchSong returns every song whose title contains the keyword,
// case-insensitively, across all moods. An empty keyword matches every song.
func (p *Profile) SearchSong(keyword string) []SearchHit {
	kw := Normalize(keyword)

	var hits []SearchHit
	for _, mood := range p.MoodNames() {
		for _, song := range p.moods[mood] {
			if strings.Contains(strings.ToLower(song), kw) {
				hits = append(hits, SearchHit{Mood: mood, Song: song})
			}
		}
	}
	return hits
}

// SurpriseMe returns one random pick. With a mood given, the pick is uniform
// over that playlist; with mood empty, it is uniform over every song of
// every mood, so a ten-song mood is ten times likelier than a one-song mood.
func (p *Profile) SurpriseMe(mood string) (SurprisePick, error) {
	if strings.TrimSpace(mood) != "" {
		key := Normalize(mood)
		songs, ok := p.moods[key]
		if !ok {
			return SurprisePick{}, fmt.Errorf("%w: %q", shared.ErrMoodNotFound, key)
		}
		if len(songs) == 0 {
			return SurprisePick{}, fmt.Errorf("%w: playlist %q is empty", shared.ErrInvalidInput, key)
		}
		return SurprisePick{Mood: key, Song: songs[p.rng.Intn(len(songs))]}, nil
	}

	var pool []SurprisePick
	for _, m := range p.MoodNames() {
		for _, song := range p.moods[m] {
			pool = append(pool, SurprisePick{Mood: m, Song: song})
		}
	}
	if len(pool) == 0 {
		return SurprisePick{}, fmt.Errorf("%w: no songs available in any playlist", shared.ErrInvalidInput)
	}
	return pool[p.rng.Intn(len(pool))], nil
}

// Statistics returns totals plus the longest and shortest playlists.
func (p *Profile) Statistics() Stats {
	stats := Stats{Moods: len(p.moods)}

	first := true
	for _, mood := range p.MoodNames() {
		count := len(p.moods[mood])
		stats.TotalSongs += count

		if first || count > stats.Longest.Count {
			stats.Longest = MoodCount{Mood: mood, Count: count}
		}
		if first || count < stats.Shortest.Count {
			stats.Shortest = MoodCount{Mood: mood, Count: count}
		}
		first = false
	}
	return stats
}
