package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/moodlist/moodlist/internal/shared"
)

func testFileStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlists.json")
	return NewFileStore(path, shared.NewLogger(io.Discard))
}

func TestFileStoreLoadAll(t *testing.T) {
	t.Run("absent file is first run", func(t *testing.T) {
		s := testFileStore(t)
		catalog, err := s.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if len(catalog) != 0 {
			t.Errorf("expected empty catalog, got %d records", len(catalog))
		}
	})

	t.Run("corrupt top level", func(t *testing.T) {
		s := testFileStore(t)
		if err := os.WriteFile(s.path, []byte(`["not", "a", "catalog"]`), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		_, err := s.LoadAll()
		if err == nil {
			t.Fatal("expected error for corrupt catalog")
		}
		if !errors.Is(err, shared.ErrStorage) {
			t.Errorf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("malformed record body kept for repair", func(t *testing.T) {
		s := testFileStore(t)
		doc := `{
  "alice": {"password": "pw1", "playlists": {"happy": ["Song A"]}},
  "bob": "garbage"
}`
		if err := os.WriteFile(s.path, []byte(doc), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		catalog, err := s.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if len(catalog) != 2 {
			t.Fatalf("expected 2 records, got %d", len(catalog))
		}
		if err := catalog["alice"].Validate(); err != nil {
			t.Errorf("expected alice to be valid, got %v", err)
		}
		if err := catalog["bob"].Validate(); err == nil {
			t.Error("expected bob to fail validation")
		}
	})
}

func TestFileStoreSaveAll(t *testing.T) {
	s := testFileStore(t)
	catalog := Catalog{
		"alice": NewRecord("pw1", map[string][]string{"happy": {"Song A", "Song B"}}, "happy"),
		"bob":   NewRecord("pw2", map[string][]string{}, ""),
	}

	if err := s.SaveAll(catalog); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		loaded, err := s.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if len(loaded) != 2 {
			t.Fatalf("expected 2 records, got %d", len(loaded))
		}

		alice := loaded["alice"]
		if *alice.Password != "pw1" {
			t.Errorf("expected password pw1, got %q", *alice.Password)
		}
		songs := alice.Playlists["happy"]
		if len(songs) != 2 || songs[0] != "Song A" || songs[1] != "Song B" {
			t.Errorf("expected song order preserved, got %v", songs)
		}
		if alice.FavoriteMood != "happy" {
			t.Errorf("expected favorite happy, got %q", alice.FavoriteMood)
		}
	})

	t.Run("no temp residue", func(t *testing.T) {
		if _, err := os.Stat(s.path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected temp file to be renamed away, stat err = %v", err)
		}
	})

	t.Run("save removes absent accounts", func(t *testing.T) {
		delete(catalog, "bob")
		if err := s.SaveAll(catalog); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}
		loaded, err := s.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if _, ok := loaded["bob"]; ok {
			t.Error("expected bob to be gone after save")
		}
	})

	t.Run("unwritable directory", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "missing", "playlists.json"), shared.NewLogger(io.Discard))
		err := s.SaveAll(Catalog{})
		if err == nil {
			t.Fatal("expected write error")
		}
		if !errors.Is(err, shared.ErrStorage) {
			t.Errorf("expected ErrStorage, got %v", err)
		}
	})
}

func TestFileStoreClose(t *testing.T) {
	s := testFileStore(t)
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
