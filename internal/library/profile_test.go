package library

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/moodlist/moodlist/internal/shared"
)

func testProfile(t *testing.T) *Profile {
	t.Helper()
	return NewProfile(ProfileOpts{
		Username: "alice",
		Password: "pw1",
		Moods: map[string][]string{
			"happy":     {"Happy - Pharrell Williams", "Uptown Funk - Bruno Mars"},
			"sad":       {"Someone Like You - Adele"},
			"energetic": {},
		},
		Favorite: "happy",
		Rand:     rand.New(rand.NewSource(1)),
	})
}

func TestNewProfile(t *testing.T) {
	t.Run("nil moods default to empty", func(t *testing.T) {
		p := NewProfile(ProfileOpts{Username: "alice", Password: "pw1"})
		if names := p.MoodNames(); len(names) != 0 {
			t.Errorf("expected no moods, got %v", names)
		}
	})

	t.Run("nil rand is seeded", func(t *testing.T) {
		p := NewProfile(ProfileOpts{
			Username: "alice",
			Moods:    map[string][]string{"happy": {"Song A"}},
		})
		if _, err := p.SurpriseMe("happy"); err != nil {
			t.Errorf("expected pick with default rand, got %v", err)
		}
	})

	t.Run("moods are deep copied", func(t *testing.T) {
		template := map[string][]string{"happy": {"Song A"}}
		p := NewProfile(ProfileOpts{Username: "alice", Moods: template})

		template["happy"][0] = "mutated"
		songs, err := p.Songs("happy")
		if err != nil {
			t.Fatalf("Songs failed: %v", err)
		}
		if songs[0] != "Song A" {
			t.Error("profile shares backing array with the template")
		}
	})
}

func TestPlaylistsIsolation(t *testing.T) {
	p := testProfile(t)

	snapshot := p.Playlists()
	snapshot["happy"][0] = "mutated"
	delete(snapshot, "sad")

	songs, err := p.Songs("happy")
	if err != nil {
		t.Fatalf("Songs failed: %v", err)
	}
	if songs[0] != "Happy - Pharrell Williams" {
		t.Error("Playlists copy shares state with the profile")
	}
	if _, err := p.Songs("sad"); err != nil {
		t.Error("deleting from the copy removed a profile mood")
	}
}

func TestSongs(t *testing.T) {
	p := testProfile(t)

	t.Run("normalizes lookup", func(t *testing.T) {
		songs, err := p.Songs("  HAPPY ")
		if err != nil {
			t.Fatalf("Songs failed: %v", err)
		}
		if len(songs) != 2 {
			t.Errorf("expected 2 songs, got %d", len(songs))
		}
	})

	t.Run("unknown mood", func(t *testing.T) {
		_, err := p.Songs("jazz")
		if !errors.Is(err, shared.ErrMoodNotFound) {
			t.Errorf("expected ErrMoodNotFound, got %v", err)
		}
	})
}

func TestUpdatePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		wantErr error
	}{
		{name: "success", current: "pw1", next: "pw2", confirm: "pw2"},
		{name: "wrong current", current: "nope", next: "pw2", confirm: "pw2", wantErr: shared.ErrBadCredentials},
		{name: "empty new", current: "pw1", next: "   ", confirm: "   ", wantErr: shared.ErrInvalidInput},
		{name: "confirmation mismatch", current: "pw1", next: "pw2", confirm: "pw3", wantErr: shared.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile(t)
			err := p.UpdatePassword(tt.current, tt.next, tt.confirm)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if p.Password() != "pw1" {
					t.Error("failed update must not change the password")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdatePassword failed: %v", err)
			}
			if p.Password() != "pw2" {
				t.Errorf("expected new password, got %q", p.Password())
			}
		})
	}
}
