package download

import (
	"context"
	"fmt"

	"github.com/handiism/youtube-converter/internal/model"
)

// PlaylistOutcome summarizes a playlist expansion.
type PlaylistOutcome struct {
	// Converted is the number of items newly downloaded.
	Converted int

	// Succeeded is true once every item was attempted, whether or not
	// any of them downloaded. It is false for an empty or unresolvable
	// playlist and for a cancelled run.
	Succeeded bool

	Title string
	Items int
}

// ExpandAndDownload resolves the playlist and downloads each of its items
// in order.
//
// Item failures are reported as progress events and do not stop the
// remaining items. Cancelling ctx stops before the next item starts. If
// the playlist cannot be resolved or is empty, nothing is converted and
// Succeeded is false.
func (m *Manager) ExpandAndDownload(ctx context.Context, playlistID string, target model.MediaType) PlaylistOutcome {
	r := m.newRun(target)
	return m.expandAndDownload(ctx, r, playlistID)
}

func (m *Manager) expandAndDownload(ctx context.Context, r *run, playlistID string) PlaylistOutcome {
	playlist, err := m.playlists.ResolvePlaylist(ctx, playlistID)
	if err != nil {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Could not resolve playlist %s: %v", playlistID, err), Level: LevelError})
		return PlaylistOutcome{}
	}

	items := playlist.Items
	if limit := m.settings.MaxPlaylistItems; limit > 0 && len(items) > limit {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Playlist has %d items, limiting to %d", len(items), limit), Level: LevelWarning})
		items = items[:limit]
	}
	r.playlist = playlist

	outcome := PlaylistOutcome{Title: playlist.Title, Items: len(items)}
	if len(items) == 0 {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Playlist %s is empty", playlistID), Level: LevelWarning})
		return outcome
	}
	m.emit(r, ProgressEvent{Message: fmt.Sprintf("Found %d item(s) in %q", len(items), playlist.Title), Level: LevelInfo})

	for i, item := range items {
		if ctx.Err() != nil {
			m.emit(r, ProgressEvent{Message: "Cancelled", Level: LevelWarning})
			return outcome
		}

		ok, err := m.downloadItem(ctx, r, item, i+1, len(items))
		if err != nil {
			m.emit(r, ProgressEvent{Message: err.Error(), Level: LevelError, Index: i + 1, Total: len(items)})
			continue
		}
		if ok {
			outcome.Converted++
		}
	}

	outcome.Succeeded = true
	return outcome
}
