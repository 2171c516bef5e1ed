package library

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/moodlist/moodlist/internal/shared"
)

// Normalize trims surrounding whitespace and lower-cases a mood name. Every
// operation applies it before lookup or storage, which is what makes mood
// keys case-insensitively unique.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CloneMoods deep-copies a mood mapping. Handing the same backing slices to
// two profiles would let one account's edits leak into another, so every
// boundary crossing goes through a clone.
func CloneMoods(moods map[string][]string) map[string][]string {
	cloned := make(map[string][]string, len(moods))
	for mood, songs := range moods {
		cloned[mood] = append([]string{}, songs...)
	}
	return cloned
}

// Profile is one account's in-memory state for the duration of a session.
type Profile struct {
	username string
	password string
	moods    map[string][]string
	favorite string
	rng      *rand.Rand
}

// ProfileOpts contains configuration options for creating a Profile.
type ProfileOpts struct {
	Username string
	Password string
	Moods    map[string][]string // deep-copied on construction
	Favorite string
	Rand     *rand.Rand // random source for surprise picks; seeded from the clock when nil
}

// NewProfile creates a Profile from the provided options.
func NewProfile(opts ProfileOpts) *Profile {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Profile{
		username: opts.Username,
		password: opts.Password,
		moods:    CloneMoods(opts.Moods),
		favorite: opts.Favorite,
		rng:      opts.Rand,
	}
}

// Username returns the immutable identity key of the account.
func (p *Profile) Username() string {
	return p.username
}

// Password returns the current plaintext credential.
func (p *Profile) Password() string {
	return p.password
}

// UpdatePassword replaces the credential after verifying the current one and
// the confirmation of the new one.
func (p *Profile) UpdatePassword(current, next, confirm string) error {
	if current != p.password {
		return fmt.Errorf("%w: current password does not match", shared.ErrBadCredentials)
	}
	if strings.TrimSpace(next) == "" {
		return fmt.Errorf("%w: new password cannot be empty", shared.ErrInvalidInput)
	}
	if next != confirm {
		return fmt.Errorf("%w: password confirmation does not match", shared.ErrInvalidInput)
	}

	p.password = next
	return nil
}

// MoodNames returns every mood key in sorted order. Sorting is what makes
// search results, statistics ties, and exports deterministic.
func (p *Profile) MoodNames() []string {
	names := make([]string, 0, len(p.moods))
	for mood := range p.moods {
		names = append(names, mood)
	}
	sort.Strings(names)
	return names
}

// Songs returns a copy of one mood's playlist.
func (p *Profile) Songs(mood string) ([]string, error) {
	key := Normalize(mood)
	songs, ok := p.moods[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrMoodNotFound, key)
	}
	return append([]string{}, songs...), nil
}

// Playlists returns a deep copy of the full mood mapping.
func (p *Profile) Playlists() map[string][]string {
	return CloneMoods(p.moods)
}
