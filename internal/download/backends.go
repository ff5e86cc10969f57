package download

import (
	"fmt"

	"github.com/handiism/youtube-converter/internal/config"
	apphttp "github.com/handiism/youtube-converter/internal/http"
	"github.com/handiism/youtube-converter/internal/media"
	"github.com/handiism/youtube-converter/internal/youtube"
	"github.com/handiism/youtube-converter/internal/ytdlp"
)

// buildDependencies wires the backends selected in settings. A playlist
// backend that cannot be constructed falls back to the YouTube client.
func buildDependencies(settings *config.Settings, progress func(ProgressEvent)) Dependencies {
	ffmpeg := media.NewFFmpeg(settings.FFmpegPath)
	httpClient := apphttp.NewClient(settings.HTTPTimeout())
	yt := youtube.NewClient(ffmpeg)

	deps := Dependencies{
		Videos:     yt,
		Playlists:  yt,
		Backend:    ffmpeg,
		Files:      ffmpeg,
		Thumbnails: httpClient,
	}

	if settings.VideoBackend == config.BackendYTDLP {
		deps.Videos = ytdlp.NewResolver(settings.Proxy)
	}

	switch settings.PlaylistBackend {
	case config.BackendYTGet:
		deps.Playlists = ytdlp.NewPlaylistSource(settings.MaxPlaylistItems)
	case config.BackendDataAPI:
		api, err := youtube.NewDataAPI(httpClient, settings.YouTubeAPIKey, settings.MaxPlaylistItems)
		if err != nil {
			progress(ProgressEvent{
				Message: fmt.Sprintf("Data API playlist backend unavailable (%v), using %s", err, config.BackendYouTube),
				Level:   LevelWarning,
			})
			break
		}
		deps.Playlists = api
	}

	return deps
}
