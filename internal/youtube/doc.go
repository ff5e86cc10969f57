// Package youtube resolves YouTube videos and playlists.
//
// ExtractID pulls a video or playlist identifier out of a URI. Client
// resolves identifiers into model.Video and model.Playlist values using
// github.com/kkdai/youtube/v2 and downloads selected streams, muxing them
// with an external Muxer. DataAPI is an alternative playlist resolver
// backed by the YouTube Data API v3 and an API key.
//
//	id, err := youtube.ExtractID("https://www.youtube.com/watch?v=abc123", false)
//	// id == "abc123"
//
//	client := youtube.NewClient(muxer)
//	video, err := client.ResolveVideo(ctx, id)
package youtube
