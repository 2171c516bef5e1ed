// Package store persists the full account catalog through interchangeable backends.
//
// The [Store] interface is the whole contract: load everything, save
// everything, close. Records travel as [Record] values, the backend-agnostic
// serialized form of one account (password, playlists, optional favorite
// mood), and the catalog itself is a [Catalog] keyed by username.
//
// Two implementations exist:
//   - [FileStore] : one pretty-printed JSON document holding the entire catalog, rewritten wholesale on every save via a temp file + rename
//   - [SQLiteStore] : an accounts table keyed by username, each row holding one record as a JSON blob, saved with per-account upserts
//
// Backends report failures as errors wrapping [shared.ErrStorage]; callers
// are expected to degrade (empty catalog on load failure, dropped write on
// save failure) rather than abort a session. Decoding a record body is a
// separate, typed step ([DecodeRecord] + [Record.Validate]) so login can
// repair shape-invalid records instead of losing the whole catalog.
package store
