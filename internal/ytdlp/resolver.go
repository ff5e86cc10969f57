package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/handiism/youtube-converter/internal/model"
	"github.com/handiism/youtube-converter/internal/youtube"
)

// Format selectors handed to yt-dlp. yt-dlp negotiates the concrete
// formats itself, so each descriptor stands for "the best of its kind".
const (
	bestAudioSelector = "bestaudio[ext=m4a]/bestaudio"
	bestVideoSelector = "bestvideo[ext=mp4]"
)

var errNoInfo = errors.New("yt-dlp returned no video info")

// Resolver resolves and downloads videos with the yt-dlp executable.
type Resolver struct {
	proxy string
}

// NewResolver creates a Resolver. proxy is passed to yt-dlp when set.
func NewResolver(proxy string) *Resolver {
	return &Resolver{proxy: proxy}
}

func (r *Resolver) command() *goytdlp.Command {
	cmd := goytdlp.New().NoPlaylist()
	if r.proxy != "" {
		cmd = cmd.Proxy(r.proxy)
	}
	return cmd
}

// ResolveVideo reads the title of a video without downloading it.
func (r *Resolver) ResolveVideo(ctx context.Context, id string) (*model.Video, error) {
	result, err := r.command().SkipDownload().PrintJSON().Run(ctx, youtube.WatchURL(id))
	if err != nil {
		return nil, fmt.Errorf("yt-dlp %s: %w", id, err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp %s: %w", id, err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("yt-dlp %s: %w", id, errNoInfo)
	}

	title := id
	if infos[0].Title != nil && *infos[0].Title != "" {
		title = *infos[0].Title
	}

	return &model.Video{
		ItemMetadata: model.ItemMetadata{ID: id, Title: title},
		Streams: []model.StreamDescriptor{
			{Kind: model.StreamAudio, Format: bestAudioSelector, Container: "m4a"},
			{Kind: model.StreamVideo, Format: bestVideoSelector, Container: "mp4"},
		},
	}, nil
}

// Fetch downloads the selected streams and lets yt-dlp merge them into
// outPath.
func (r *Resolver) Fetch(ctx context.Context, video *model.Video, streams []model.StreamDescriptor, outPath string) error {
	selector := formatSelector(streams)
	if selector == "" {
		return fmt.Errorf("yt-dlp %s: no streams selected", video.ID)
	}

	_, err := r.command().
		Format(selector).
		MergeOutputFormat(model.RawContainer.Extension()).
		ForceOverwrites().
		Output(outPath).
		Run(ctx, youtube.WatchURL(video.ID))
	if err != nil {
		return fmt.Errorf("yt-dlp %s: %w", video.ID, err)
	}
	return nil
}

// formatSelector joins stream selectors with "+", video first, which is
// the order yt-dlp expects for merges.
func formatSelector(streams []model.StreamDescriptor) string {
	var video, audio []string
	for _, s := range streams {
		switch s.Kind {
		case model.StreamVideo:
			video = append(video, s.Format)
		case model.StreamAudio:
			audio = append(audio, s.Format)
		}
	}
	return strings.Join(append(video, audio...), "+")
}
