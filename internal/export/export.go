// package export renders an account's mood playlists as plain text, CSV, or JSON documents
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/shared"
)

// Supported format identifiers, matching the file extensions they produce.
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Formats lists every supported format identifier.
func Formats() []string {
	return []string{FormatText, FormatCSV, FormatJSON}
}

// DefaultFilename builds the fallback filename for an account export.
func DefaultFilename(username, format string) string {
	return fmt.Sprintf("%s_playlists.%s", username, format)
}

// ExportToText renders each playlist as a block: the mood name on its own line,
// one line per song or "(empty)" for songless moods, then a blank line.
func ExportToText(p *library.Profile) ([]byte, error) {
	var buf bytes.Buffer
	playlists := p.Playlists()

	for _, mood := range p.MoodNames() {
		buf.WriteString(mood + "\n")
		if songs := playlists[mood]; len(songs) == 0 {
			buf.WriteString("(empty)\n")
		} else {
			for _, song := range songs {
				buf.WriteString(song + "\n")
			}
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToCSV renders the playlists as mood,song rows. A mood with no songs
// still appears as a single row with an empty song column.
func ExportToCSV(p *library.Profile) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"mood", "song"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	playlists := p.Playlists()
	for _, mood := range p.MoodNames() {
		songs := playlists[mood]
		if len(songs) == 0 {
			if err := writer.Write([]string{mood, ""}); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
			continue
		}
		for _, song := range songs {
			if err := writer.Write([]string{mood, song}); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToJSON renders the playlists mapping as an indented JSON document.
func ExportToJSON(p *library.Profile) ([]byte, error) {
	data, err := json.MarshalIndent(p.Playlists(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Render produces the export document for the given format identifier.
func Render(p *library.Profile, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return ExportToText(p)
	case FormatCSV:
		return ExportToCSV(p)
	case FormatJSON:
		return ExportToJSON(p)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
}

// Write renders the profile in the given format and writes it to path.
//
// An empty path defaults to "{username}_playlists.{format}" inside dir, and an
// empty dir means the current directory. Missing parent directories are
// created. Returns the path actually written.
func Write(p *library.Profile, format, path, dir string) (string, error) {
	data, err := Render(p, format)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(dir, DefaultFilename(p.Username(), format))
	}

	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}
