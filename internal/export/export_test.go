package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/shared"
)

func testProfile() *library.Profile {
	return library.NewProfile(library.ProfileOpts{
		Username: "alice",
		Password: "pw1",
		Moods: map[string][]string{
			"happy": {"Song A", "Song B"},
			"sad":   {"Song C"},
			"calm":  {},
		},
	})
}

func TestExporters(t *testing.T) {
	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testProfile())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		want := "calm\n(empty)\n\nhappy\nSong A\nSong B\n\nsad\nSong C\n\n"
		if string(data) != want {
			t.Errorf("text export mismatch\ngot:\n%q\nwant:\n%q", string(data), want)
		}
	})

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testProfile())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "mood,song\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		for _, row := range []string{"happy,Song A", "happy,Song B", "sad,Song C", "calm,"} {
			if !strings.Contains(output, row+"\n") {
				t.Errorf("CSV missing row %q, got: %s", row, output)
			}
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		profile := testProfile()
		data, err := ExportToJSON(profile)
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var decoded map[string][]string
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("export is not valid JSON: %v", err)
		}
		if !reflect.DeepEqual(decoded, profile.Playlists()) {
			t.Errorf("decoded export = %v, want %v", decoded, profile.Playlists())
		}
		if !strings.HasSuffix(string(data), "\n") {
			t.Error("JSON export missing trailing newline")
		}
	})

	t.Run("EmptyProfile", func(t *testing.T) {
		profile := library.NewProfile(library.ProfileOpts{Username: "bob", Password: "pw"})

		text, err := ExportToText(profile)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		if len(text) != 0 {
			t.Errorf("text export of empty profile = %q, want empty", string(text))
		}

		data, err := ExportToCSV(profile)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}
		if string(data) != "mood,song\n" {
			t.Errorf("CSV export of empty profile = %q, want header only", string(data))
		}

		jsonData, err := ExportToJSON(profile)
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}
		if strings.TrimSpace(string(jsonData)) != "{}" {
			t.Errorf("JSON export of empty profile = %q, want {}", string(jsonData))
		}
	})

	t.Run("RenderUnknownFormat", func(t *testing.T) {
		if _, err := Render(testProfile(), "xml"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("Render(xml) error = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestWrite(t *testing.T) {
	t.Run("DefaultFilename", func(t *testing.T) {
		dir := t.TempDir()

		path, err := Write(testProfile(), FormatJSON, "", dir)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if path != filepath.Join(dir, "alice_playlists.json") {
			t.Errorf("Write path = %s, want default filename under %s", path, dir)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("exported file missing: %v", err)
		}
	})

	t.Run("ExplicitPath", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "nested", "out.csv")

		path, err := Write(testProfile(), FormatCSV, target, dir)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if path != target {
			t.Errorf("Write path = %s, want %s", path, target)
		}

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(data), "happy,Song A") {
			t.Errorf("export content missing rows: %s", string(data))
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, err := Write(testProfile(), "xml", "", t.TempDir()); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("Write(xml) error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "taken")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to seed blocking file: %v", err)
		}

		if _, err := Write(testProfile(), FormatText, filepath.Join(blocker, "out.txt"), dir); err == nil {
			t.Error("expected error writing beneath a regular file")
		}
	})
}
