package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/moodlist/moodlist/internal/shared"
)

// SQLiteStore keeps the catalog in an accounts table, one row per account
// with the record serialized as a JSON blob in the data column. The
// connection is process-lived and released by Close.
//
// Table creation is not this type's job; the setup command runs the embedded
// migrations before a SQLiteStore is ever constructed.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteStore creates a SQLiteStore over an open connection.
func NewSQLiteStore(db *sql.DB, logger *log.Logger) *SQLiteStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SQLiteStore{db: db, logger: logger}
}

// LoadAll selects every row and decodes each blob. A row whose blob is not
// valid JSON is skipped with a warning, not fatal to the load; a blob that
// decodes to an invalid shape stays in the catalog for login to repair.
func (s *SQLiteStore) LoadAll() (Catalog, error) {
	rows, err := s.db.Query("SELECT id, data FROM accounts")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query accounts: %v", shared.ErrStorage, err)
	}
	defer rows.Close()

	catalog := Catalog{}
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("%w: failed to scan account row: %v", shared.ErrStorage, err)
		}

		rec, err := DecodeRecord([]byte(data))
		if err != nil {
			s.logger.Warn("skipping undecodable account row", "username", id, "error", err)
			continue
		}
		catalog[id] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate accounts: %v", shared.ErrStorage, err)
	}
	return catalog, nil
}

// SaveAll upserts each record keyed by username, one statement per account
// rather than one transaction, then drops rows for accounts no longer in
// the catalog. A failure partway through leaves a partially-updated table.
func (s *SQLiteStore) SaveAll(records Catalog) error {
	for username, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%w: failed to encode record for %q: %v", shared.ErrStorage, username, err)
		}

		_, err = s.db.Exec(
			`INSERT INTO accounts (id, data) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
			username, string(data),
		)
		if err != nil {
			return fmt.Errorf("%w: failed to upsert account %q: %v", shared.ErrStorage, username, err)
		}
	}

	stale, err := s.staleIDs(records)
	if err != nil {
		return err
	}
	for _, id := range stale {
		if _, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id); err != nil {
			return fmt.Errorf("%w: failed to delete account %q: %v", shared.ErrStorage, id, err)
		}
	}
	return nil
}

// staleIDs returns the ids of stored rows absent from records.
func (s *SQLiteStore) staleIDs(records Catalog) ([]string, error) {
	rows, err := s.db.Query("SELECT id FROM accounts")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list account ids: %v", shared.ErrStorage, err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: failed to scan account id: %v", shared.ErrStorage, err)
		}
		if _, ok := records[id]; !ok {
			stale = append(stale, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate account ids: %v", shared.ErrStorage, err)
	}
	return stale, nil
}

// Close releases the database connection. Calling it again is safe.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: failed to close database: %v", shared.ErrStorage, err)
	}
	return nil
}
