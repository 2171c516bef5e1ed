package store

import (
	"encoding/json"
	"fmt"

	"github.com/moodlist/moodlist/internal/shared"
)

// Record is the backend-agnostic serialized form of one account.
//
// Password is a pointer so the decoder can tell a missing field from an
// empty one; a record failing [Record.Validate] is handed to login's repair
// branch rather than dropped.
type Record struct {
	Password     *string             `json:"password"`
	Playlists    map[string][]string `json:"playlists"`
	FavoriteMood string              `json:"favorite_mood,omitempty"`
}

// NewRecord builds a shape-valid Record from its parts.
func NewRecord(password string, playlists map[string][]string, favorite string) Record {
	if playlists == nil {
		playlists = map[string][]string{}
	}
	return Record{Password: &password, Playlists: playlists, FavoriteMood: favorite}
}

// DecodeRecord parses one serialized record body. It does not shape-check
// the result; callers that care run [Record.Validate] on it.
func DecodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", shared.ErrMalformedRecord, err)
	}
	return rec, nil
}

// Validate reports whether the record satisfies the stored-shape contract:
// a password and a playlists mapping must both be present.
func (r Record) Validate() error {
	if r.Password == nil {
		return fmt.Errorf("%w: missing password field", shared.ErrMalformedRecord)
	}
	if r.Playlists == nil {
		return fmt.Errorf("%w: missing playlists field", shared.ErrMalformedRecord)
	}
	return nil
}
