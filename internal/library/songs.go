package library

import (
	"fmt"
	"strings"

	"github.com/moodlist/moodlist/internal/shared"
)

// AddSong appends a song to a mood's playlist. The title keeps its original
// casing; only the duplicate check is case-insensitive.
func (p *Profile) AddSong(mood, song string) error {
	key := Normalize(mood)
	songs, ok := p.moods[key]
	if !ok {
		return fmt.Errorf("%w: %q", shared.ErrMoodNotFound, key)
	}

	title := strings.TrimSpace(song)
	if title == "" {
		return fmt.Errorf("%w: song name cannot be empty", shared.ErrInvalidInput)
	}
	for _, existing := range songs {
		if strings.EqualFold(existing, title) {
			return fmt.Errorf("%w: song %q already exists in %q", shared.ErrInvalidInput, title, key)
		}
	}

	p.moods[key] = append(songs, title)
	return nil
}

// DeleteSong removes the song at index and returns its title. Negative
// indices count from the end of the playlist, so -1 removes the last song.
func (p *Profile) DeleteSong(mood string, index int) (string, error) {
	key := Normalize(mood)
	songs, ok := p.moods[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", shared.ErrMoodNotFound, key)
	}

	i := index
	if i < 0 {
		i += len(songs)
	}
	if i < 0 || i >= len(songs) {
		return "", fmt.Errorf("%w: index %d in a playlist of %d songs", shared.ErrIndexOutOfRange, index, len(songs))
	}

	removed := songs[i]
	p.moods[key] = append(songs[:i], songs[i+1:]...)
	return removed, nil
}

// RenameSong replaces the title at index in place and returns the old title.
// Unlike [Profile.DeleteSong] the index must be non-negative.
func (p *Profile) RenameSong(mood string, index int, newName string) (string, error) {
	key := Normalize(mood)
	songs, ok := p.moods[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", shared.ErrMoodNotFound, key)
	}
	if len(songs) == 0 {
		return "", fmt.Errorf("%w: playlist %q is empty", shared.ErrInvalidInput, key)
	}
	if index < 0 || index >= len(songs) {
		return "", fmt.Errorf("%w: index %d in a playlist of %d songs", shared.ErrIndexOutOfRange, index, len(songs))
	}

	title := strings.TrimSpace(newName)
	if title == "" {
		return "", fmt.Errorf("%w: new song name cannot be empty", shared.ErrInvalidInput)
	}
	for i, existing := range songs {
		if i != index && strings.EqualFold(existing, title) {
			return "", fmt.Errorf("%w: song %q already exists in %q", shared.ErrInvalidInput, title, key)
		}
	}

	old := songs[index]
	songs[index] = title
	return old, nil
}
