package library

import (
	"fmt"

	"github.com/moodlist/moodlist/internal/shared"
)

// CreateMood inserts a new, empty mood.
func (p *Profile) CreateMood(name string) error {
	key := Normalize(name)
	if key == "" {
		return fmt.Errorf("%w: mood name cannot be empty", shared.ErrInvalidInput)
	}
	if _, ok := p.moods[key]; ok {
		return fmt.Errorf("%w: mood %q already exists", shared.ErrInvalidInput, key)
	}

	p.moods[key] = []string{}
	return nil
}

// RenameMood moves a mood's playlist to a new key.
//
// A favorite reference to the old name goes stale; the shells decide whether
// to re-point it.
func (p *Profile) RenameMood(oldName, newName string) error {
	oldKey := Normalize(oldName)
	songs, ok := p.moods[oldKey]
	if !ok {
		return fmt.Errorf("%w: %q", shared.ErrMoodNotFound, oldKey)
	}

	newKey := Normalize(newName)
	if newKey == "" {
		return fmt.Errorf("%w: new mood name cannot be empty", shared.ErrInvalidInput)
	}
	if newKey == oldKey {
		return fmt.Errorf("%w: new mood name is the same as the old name", shared.ErrInvalidInput)
	}
	if _, ok := p.moods[newKey]; ok {
		return fmt.Errorf("%w: mood %q already exists", shared.ErrInvalidInput, newKey)
	}

	p.moods[newKey] = songs
	delete(p.moods, oldKey)
	return nil
}

// ClearAllMoods empties every playlist while keeping the mood keys, the
// favorite reference, and the password untouched.
func (p *Profile) ClearAllMoods() {
	for key := range p.moods {
		p.moods[key] = []string{}
	}
}

// SetFavoriteMood points the favorite reference at an existing mood.
func (p *Profile) SetFavoriteMood(mood string) error {
	key := Normalize(mood)
	if _, ok := p.moods[key]; !ok {
		return fmt.Errorf("%w: %q", shared.ErrMoodNotFound, key)
	}

	p.favorite = key
	return nil
}

// ClearFavoriteMood unsets the favorite reference.
func (p *Profile) ClearFavoriteMood() {
	p.favorite = ""
}

// FavoriteMood returns the favorite reference, which may name a mood that no
// longer exists. Empty means unset.
func (p *Profile) FavoriteMood() string {
	return p.favorite
}

// FavoriteSongs returns a copy of the favorite mood's playlist. The second
// return is false when no favorite is set or the reference has gone stale.
func (p *Profile) FavoriteSongs() ([]string, bool) {
	if p.favorite == "" {
		return nil, false
	}
	songs, ok := p.moods[p.favorite]
	if !ok {
		return nil, false
	}
	return append([]string{}, songs...), true
}
