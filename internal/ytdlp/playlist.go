package ytdlp

import (
	"context"
	"fmt"

	ytget "github.com/ytget/ytdlp/v2"

	"github.com/handiism/youtube-converter/internal/model"
)

// PlaylistSource lists playlist entries with the pure Go ytget client,
// without calling any external executable.
type PlaylistSource struct {
	maxItems int
}

// NewPlaylistSource creates a PlaylistSource. maxItems caps the number of
// returned entries; 0 means all.
func NewPlaylistSource(maxItems int) *PlaylistSource {
	return &PlaylistSource{maxItems: maxItems}
}

// ResolvePlaylist returns the entries of a playlist in order.
func (p *PlaylistSource) ResolvePlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	items, err := ytget.New().GetPlaylistItemsAll(ctx, id, p.maxItems)
	if err != nil {
		return nil, fmt.Errorf("listing playlist %s: %w", id, err)
	}

	playlist := &model.Playlist{ID: id, Title: id}
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		playlist.Items = append(playlist.Items, model.ItemMetadata{ID: it.VideoID, Title: it.Title})
		if p.maxItems > 0 && len(playlist.Items) >= p.maxItems {
			break
		}
	}
	return playlist, nil
}
