// Package session reconciles stored account records with live profiles.
//
// A [Session] owns the loaded catalog and the store handle for one process
// run. [Session.Login] is a single-shot state machine: it creates absent
// accounts with a deep-copied default template, rebuilds malformed records
// (accepting the data loss), authenticates valid ones by plaintext equality,
// and rejects everything else without touching stored state. There is no
// retry counter and no lockout.
//
// Storage failures never abort a session: a failed load starts an empty
// catalog, a failed save keeps changes in memory only, and both are logged
// as warnings.
package session

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/moodlist/moodlist/internal/library"
	"github.com/moodlist/moodlist/internal/shared"
	"github.com/moodlist/moodlist/internal/store"
)

// Outcome identifies which login path ran.
type Outcome int

const (
	OutcomeLoggedIn Outcome = iota // stored record valid, password matched
	OutcomeCreated                 // no record existed, a fresh one was persisted
	OutcomeRepaired                // record was malformed and rebuilt from defaults
)

// String returns the outcome as a short past-tense phrase for messages.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeRepaired:
		return "repaired"
	default:
		return "logged in"
	}
}

// Session holds one process run's catalog, store, and logged-in profile.
type Session struct {
	store    store.Store
	catalog  store.Catalog
	defaults map[string][]string
	logger   *log.Logger
	rng      *rand.Rand
	profile  *library.Profile
	closed   bool
}

// Opts contains configuration options for opening a Session.
type Opts struct {
	Defaults map[string][]string // mood template for created and repaired accounts
	Logger   *log.Logger
	Rand     *rand.Rand // forwarded to profiles for surprise picks
}

// Open loads the full catalog once. A storage failure degrades to an empty
// catalog with a warning; the session still starts.
func Open(s store.Store, opts Opts) *Session {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	catalog, err := s.LoadAll()
	if err != nil {
		opts.Logger.Warn("failed to load account catalog, starting empty", "error", err)
		catalog = store.Catalog{}
	}

	return &Session{
		store:    s,
		catalog:  catalog,
		defaults: opts.Defaults,
		logger:   opts.Logger,
		rng:      opts.Rand,
	}
}

// Login runs the bootstrap state machine for one username/password attempt.
//
// Created and repaired accounts are persisted immediately; a plain login
// persists nothing, and a rejection changes nothing at all.
func (s *Session) Login(username, password string) (*library.Profile, Outcome, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, 0, shared.ErrEmptyUsername
	}

	rec, ok := s.catalog[username]
	if !ok {
		s.logger.Info("creating account with default moods", "username", username)
		return s.adopt(username, password, OutcomeCreated), OutcomeCreated, nil
	}

	if err := rec.Validate(); err != nil {
		s.logger.Warn("stored record is malformed, rebuilding from defaults", "username", username, "error", err)
		return s.adopt(username, password, OutcomeRepaired), OutcomeRepaired, nil
	}

	if *rec.Password != password {
		return nil, 0, shared.ErrBadCredentials
	}

	profile := library.NewProfile(library.ProfileOpts{
		Username: username,
		Password: *rec.Password,
		Moods:    rec.Playlists,
		Favorite: rec.FavoriteMood,
		Rand:     s.rng,
	})
	s.profile = profile
	return profile, OutcomeLoggedIn, nil
}

// adopt builds a fresh profile from the default template and persists it.
func (s *Session) adopt(username, password string, outcome Outcome) *library.Profile {
	profile := library.NewProfile(library.ProfileOpts{
		Username: username,
		Password: password,
		Moods:    s.defaults,
		Rand:     s.rng,
	})
	s.profile = profile
	s.Save()
	return profile
}

// Save re-serializes the logged-in profile into the catalog and writes the
// whole catalog back. A storage failure drops the write with a warning; the
// in-memory state stands.
func (s *Session) Save() {
	if s.profile == nil {
		return
	}

	p := s.profile
	s.catalog[p.Username()] = store.NewRecord(p.Password(), p.Playlists(), p.FavoriteMood())
	if err := s.store.SaveAll(s.catalog); err != nil {
		s.logger.Warn("failed to save account catalog, changes stay in memory", "error", err)
	}
}

// DeleteAccount removes one account's record and persists the shrunk
// catalog. It does not require the account to be logged in.
func (s *Session) DeleteAccount(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.ErrEmptyUsername
	}
	if _, ok := s.catalog[username]; !ok {
		return fmt.Errorf("%w: %q", shared.ErrAccountNotFound, username)
	}

	delete(s.catalog, username)
	if err := s.store.SaveAll(s.catalog); err != nil {
		return err
	}

	s.logger.Info("account deleted", "username", username)
	return nil
}

// Usernames returns every account name in the loaded catalog, sorted.
func (s *Session) Usernames() []string {
	names := make([]string, 0, len(s.catalog))
	for username := range s.catalog {
		names = append(names, username)
	}
	sort.Strings(names)
	return names
}

// Close releases the store exactly once; later calls are no-ops. A close
// failure is logged and swallowed.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close storage", "error", err)
	}
}
