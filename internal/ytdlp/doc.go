// Package ytdlp provides alternative resolver backends.
//
// Resolver shells out to the yt-dlp executable through
// github.com/lrstanley/go-ytdlp and lets it negotiate and merge formats.
// PlaylistSource lists playlist entries with the pure Go
// github.com/ytget/ytdlp/v2 client.
package ytdlp
