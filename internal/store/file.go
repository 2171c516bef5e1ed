package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/moodlist/moodlist/internal/shared"
)

// FileStore keeps the whole catalog in a single pretty-printed JSON file.
// No file handle is held between calls.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &FileStore{path: path, logger: logger}
}

// LoadAll reads the catalog document. An absent file is the first-run state
// and yields an empty catalog; an unparsable top level is a storage error. A
// record body that fails to decode stays in the catalog as a shape-invalid
// record so login can repair it.
func (s *FileStore) LoadAll() (Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", shared.ErrStorage, s.path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s is not an account catalog: %v", shared.ErrStorage, s.path, err)
	}

	catalog := make(Catalog, len(raw))
	for username, body := range raw {
		rec, err := DecodeRecord(body)
		if err != nil {
			s.logger.Warn("undecodable account record, login will repair it", "username", username, "error", err)
			catalog[username] = Record{}
			continue
		}
		catalog[username] = rec
	}
	return catalog, nil
}

// SaveAll rewrites the document wholesale. The write goes to a temp file
// first and is renamed into place so a failure never truncates the previous
// catalog.
func (s *FileStore) SaveAll(records Catalog) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode catalog: %v", shared.ErrStorage, err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", shared.ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", shared.ErrStorage, s.path, err)
	}
	return nil
}

// Close is a no-op; the file is never held open between calls.
func (s *FileStore) Close() error {
	return nil
}
