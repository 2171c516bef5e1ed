// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/moodlist/moodlist/internal/store"
)

// MemStore is an in-memory test double for [store.Store].
//
// The zero value is usable; error fields make any operation fail on demand.
type MemStore struct {
	Catalog store.Catalog

	LoadErr  error
	SaveErr  error
	CloseErr error

	SaveCalls  int
	CloseCalls int
}

// NewMemStore creates a MemStore seeded with the given catalog.
func NewMemStore(catalog store.Catalog) *MemStore {
	if catalog == nil {
		catalog = store.Catalog{}
	}
	return &MemStore{Catalog: catalog}
}

func (m *MemStore) LoadAll() (store.Catalog, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	catalog := make(store.Catalog, len(m.Catalog))
	for username, rec := range m.Catalog {
		catalog[username] = rec
	}
	return catalog, nil
}

func (m *MemStore) SaveAll(records store.Catalog) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Catalog = make(store.Catalog, len(records))
	for username, rec := range records {
		m.Catalog[username] = rec
	}
	return nil
}

func (m *MemStore) Close() error {
	m.CloseCalls++
	return m.CloseErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
