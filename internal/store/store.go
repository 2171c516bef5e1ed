package store

// Catalog is the full mapping from username to stored account record.
type Catalog map[string]Record

// Store is the contract every catalog backend satisfies.
type Store interface {
	// LoadAll returns the complete account catalog keyed by username.
	LoadAll() (Catalog, error)
	// SaveAll replaces the persisted catalog with the given records.
	SaveAll(records Catalog) error
	// Close releases backend resources. Safe to call more than once.
	Close() error
}
