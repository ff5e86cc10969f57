// Package audio provides post-processing for converted audio files:
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(path, audio.TagInfo{Title: title, Artist: channel}, artworkBytes)
//
// The tagger supports:
//   - Artist, Album and Title
//   - A source URL comment
//   - Cover Art (embedded in MP3)
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(title, entries)
//	os.WriteFile("playlist.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
