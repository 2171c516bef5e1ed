package session

import (
	"errors"
	"io"
	"testing"

	"github.com/moodlist/moodlist/internal/shared"
	"github.com/moodlist/moodlist/internal/store"
	th "github.com/moodlist/moodlist/internal/testing"
)

var testDefaults = map[string][]string{
	"happy": {"Happy - Pharrell Williams"},
	"sad":   {"Fix You - Coldplay"},
}

func openSession(t *testing.T, mem *th.MemStore) *Session {
	t.Helper()
	return Open(mem, Opts{Defaults: testDefaults, Logger: shared.NewLogger(io.Discard)})
}

func TestLoginCreatesAccount(t *testing.T) {
	mem := th.NewMemStore(nil)
	s := openSession(t, mem)

	profile, outcome, err := s.Login("alice", "pw1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Errorf("expected OutcomeCreated, got %v", outcome)
	}
	if profile.Username() != "alice" {
		t.Errorf("expected username alice, got %q", profile.Username())
	}

	t.Run("persists immediately", func(t *testing.T) {
		if mem.SaveCalls != 1 {
			t.Errorf("expected 1 save, got %d", mem.SaveCalls)
		}
		rec, ok := mem.Catalog["alice"]
		if !ok {
			t.Fatal("expected stored record for alice")
		}
		if *rec.Password != "pw1" {
			t.Errorf("expected stored password pw1, got %q", *rec.Password)
		}
		if len(rec.Playlists) != len(testDefaults) {
			t.Errorf("expected default moods persisted, got %v", rec.Playlists)
		}
	})

	t.Run("receives a deep copy of the defaults", func(t *testing.T) {
		if err := profile.AddSong("happy", "Another Song"); err != nil {
			t.Fatalf("AddSong failed: %v", err)
		}
		if len(testDefaults["happy"]) != 1 {
			t.Error("profile mutation leaked into the default template")
		}

		other, _, err := s.Login("bob", "pw2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		songs, _ := other.Songs("happy")
		if len(songs) != 1 {
			t.Errorf("second account saw another account's songs: %v", songs)
		}
	})
}

func TestLoginExistingAccount(t *testing.T) {
	catalog := store.Catalog{
		"alice": store.NewRecord("pw1", map[string][]string{"happy": {"Song A"}}, "happy"),
	}

	t.Run("password match succeeds", func(t *testing.T) {
		mem := th.NewMemStore(catalog)
		s := openSession(t, mem)

		profile, outcome, err := s.Login("alice", "pw1")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if outcome != OutcomeLoggedIn {
			t.Errorf("expected OutcomeLoggedIn, got %v", outcome)
		}
		if profile.FavoriteMood() != "happy" {
			t.Errorf("expected favorite restored, got %q", profile.FavoriteMood())
		}
		songs, _ := profile.Songs("happy")
		if len(songs) != 1 || songs[0] != "Song A" {
			t.Errorf("expected stored songs, got %v", songs)
		}
		if mem.SaveCalls != 0 {
			t.Errorf("plain login must not persist, got %d saves", mem.SaveCalls)
		}
	})

	t.Run("password mismatch rejects without changes", func(t *testing.T) {
		mem := th.NewMemStore(catalog)
		s := openSession(t, mem)

		_, _, err := s.Login("alice", "wrong")
		if !errors.Is(err, shared.ErrBadCredentials) {
			t.Fatalf("expected ErrBadCredentials, got %v", err)
		}
		if mem.SaveCalls != 0 {
			t.Error("rejection must not persist")
		}
		if *mem.Catalog["alice"].Password != "pw1" {
			t.Error("rejection must not mutate the catalog")
		}
	})

	t.Run("empty username rejected", func(t *testing.T) {
		mem := th.NewMemStore(catalog)
		s := openSession(t, mem)

		if _, _, err := s.Login("   ", "pw1"); !errors.Is(err, shared.ErrEmptyUsername) {
			t.Errorf("expected ErrEmptyUsername, got %v", err)
		}
	})
}

func TestLoginRepairsMalformedRecord(t *testing.T) {
	mem := th.NewMemStore(store.Catalog{
		"alice": {Playlists: map[string][]string{"happy": {"Song A"}}}, // no password field
	})
	s := openSession(t, mem)

	profile, outcome, err := s.Login("alice", "newpw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if outcome != OutcomeRepaired {
		t.Errorf("expected OutcomeRepaired, got %v", outcome)
	}
	if profile.Password() != "newpw" {
		t.Errorf("expected candidate password adopted, got %q", profile.Password())
	}

	songs, _ := profile.Songs("happy")
	if len(songs) != 1 || songs[0] != "Happy - Pharrell Williams" {
		t.Errorf("expected default template after repair, got %v", songs)
	}

	if mem.SaveCalls != 1 {
		t.Errorf("repair must persist immediately, got %d saves", mem.SaveCalls)
	}
	if err := mem.Catalog["alice"].Validate(); err != nil {
		t.Errorf("repaired record must validate, got %v", err)
	}
}

func TestOpenDegradesOnLoadFailure(t *testing.T) {
	mem := th.NewMemStore(store.Catalog{
		"alice": store.NewRecord("pw1", map[string][]string{}, ""),
	})
	mem.LoadErr = shared.ErrStorage
	s := openSession(t, mem)

	// alice is invisible, so this becomes a create
	_, outcome, err := s.Login("alice", "different")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Errorf("expected OutcomeCreated against an empty catalog, got %v", outcome)
	}
}

func TestSave(t *testing.T) {
	mem := th.NewMemStore(nil)
	s := openSession(t, mem)

	t.Run("without login is a no-op", func(t *testing.T) {
		s.Save()
		if mem.SaveCalls != 0 {
			t.Errorf("expected no saves, got %d", mem.SaveCalls)
		}
	})

	profile, _, err := s.Login("alice", "pw1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	t.Run("flushes profile state", func(t *testing.T) {
		if err := profile.CreateMood("chill"); err != nil {
			t.Fatalf("CreateMood failed: %v", err)
		}
		if err := profile.SetFavoriteMood("chill"); err != nil {
			t.Fatalf("SetFavoriteMood failed: %v", err)
		}
		s.Save()

		rec := mem.Catalog["alice"]
		if _, ok := rec.Playlists["chill"]; !ok {
			t.Error("expected new mood in stored record")
		}
		if rec.FavoriteMood != "chill" {
			t.Errorf("expected favorite persisted, got %q", rec.FavoriteMood)
		}
	})

	t.Run("storage failure keeps memory state", func(t *testing.T) {
		mem.SaveErr = shared.ErrStorage
		if err := profile.CreateMood("road trip"); err != nil {
			t.Fatalf("CreateMood failed: %v", err)
		}
		s.Save()

		if _, err := profile.Songs("road trip"); err != nil {
			t.Error("expected in-memory mood to survive a failed save")
		}
		if _, ok := mem.Catalog["alice"].Playlists["road trip"]; ok {
			t.Error("failed save must not reach the store")
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	mem := th.NewMemStore(store.Catalog{
		"alice": store.NewRecord("pw1", map[string][]string{}, ""),
		"bob":   store.NewRecord("pw2", map[string][]string{}, ""),
	})
	s := openSession(t, mem)

	if err := s.DeleteAccount("bob"); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	if _, ok := mem.Catalog["bob"]; ok {
		t.Error("expected bob removed from the store")
	}
	if _, ok := mem.Catalog["alice"]; !ok {
		t.Error("expected alice to survive")
	}

	t.Run("unknown account", func(t *testing.T) {
		if err := s.DeleteAccount("mallory"); !errors.Is(err, shared.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("empty username", func(t *testing.T) {
		if err := s.DeleteAccount("  "); !errors.Is(err, shared.ErrEmptyUsername) {
			t.Errorf("expected ErrEmptyUsername, got %v", err)
		}
	})
}

func TestClose(t *testing.T) {
	mem := th.NewMemStore(nil)
	s := openSession(t, mem)

	s.Close()
	s.Close()
	if mem.CloseCalls != 1 {
		t.Errorf("expected exactly one store close, got %d", mem.CloseCalls)
	}
}
