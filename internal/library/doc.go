// Package library implements the in-memory account model: one [Profile] per
// authenticated account plus every operation the menus expose.
//
// A profile owns a mapping from mood name to an ordered list of song titles.
// Mood names are normalized (trimmed, lower-cased) before every lookup or
// insert; within one mood no two songs may be equal case-insensitively.
// Operations either fully apply or return an error before mutating, so the
// invariants hold after every call.
//
// Operation groups:
//   - mood CRUD: [Profile.CreateMood], [Profile.RenameMood], [Profile.ClearAllMoods]
//   - song CRUD: [Profile.AddSong], [Profile.DeleteSong] (negative indices count from the end), [Profile.RenameSong]
//   - favorite reference: [Profile.SetFavoriteMood], [Profile.ClearFavoriteMood], [Profile.FavoriteSongs]
//   - queries: [Profile.SearchSong], [Profile.SurpriseMe], [Profile.Statistics]
//
// The package performs no I/O. Loading and saving profiles is the session
// and store packages' job; randomness for [Profile.SurpriseMe] comes from an
// injectable source so tests can pin selections.
package library
