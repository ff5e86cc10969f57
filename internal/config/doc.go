// Package config provides configuration management for youtube-converter.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, optionally read from a .env file
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Converts to ~/Music/YouTube as mp3
//	// Resolves through the YouTube innertube client
//	// ID3 tagging and thumbnail embedding enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	_ = config.LoadDotEnv()  // reads ./.env if present
//	settings.ApplyEnv()      // YTC_OUTPUT_DIR, YOUTUBE_API_KEY, ...
//	if err := settings.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Output directory and default media type
//   - Video and playlist resolver backends
//   - ffmpeg location and cleanup policy
//   - ID3 tags and embedded thumbnails
//   - Playlist generation
//   - HTTP timeout and server listen address
package config
