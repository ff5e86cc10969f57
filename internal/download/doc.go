// Package download orchestrates YouTube conversions.
//
// # Manager
//
// The Manager coordinates a conversion request:
//
//  1. Extract the video or playlist id from the URI
//  2. Resolve the item (or expand the playlist) through a VideoResolver
//     and a PlaylistResolver
//  3. Download the selected streams of each item as a raw mp4 file
//  4. Transcode the batch to the target media type
//  5. Tag MP3 files and embed thumbnails (optional)
//  6. Generate a playlist file (optional)
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Convert(ctx, model.Request{
//	    URI:             "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
//	    TargetMediaType: model.MP3,
//	})
//
// # Idempotence
//
// An item is skipped when either its raw mp4 file or its target file is
// already present in the output directory, so re-running a request only
// downloads what is missing. Skipped items do not count as converted.
//
// # Progress Events
//
// Progress is reported through a callback. Every event carries the RunID
// of the Convert call it belongs to:
//
//   - LevelInfo: General progress information
//   - LevelVerbose: Detailed debug information
//   - LevelWarning: Non-fatal issues
//   - LevelError: Errors for a single item or the whole run
//   - LevelSuccess: Completion messages
//
// Per-item events also carry a 1-based Index and the playlist Total.
//
// # Cancellation
//
// Convert respects context cancellation. Playlist expansion checks the
// context before each item, so a cancelled run stops between items.
package download
