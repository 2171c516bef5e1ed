// Package backup implements whole-catalog account exports with real-time progress reporting.
//
// # Core Operation
//
// [Engine.Run] walks every persisted account and writes one JSON playlist
// dump per account through a small worker pool:
//   - Loads the full catalog from the configured store
//   - Validates each record, flagging malformed accounts instead of aborting
//   - Writes {username}_playlists.json files into the output directory
//   - Summarizes the run in an export_manifest.json next to the dumps
//
// # Progress Reporting
//
// Operations emit [ProgressUpdate] values on an optional channel. Updates use
// select with default so a slow or absent consumer never blocks the export.
package backup
