package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/youtube-converter/internal/audio"
	ioutils "github.com/handiism/youtube-converter/internal/io"
	"github.com/handiism/youtube-converter/internal/model"
	"github.com/handiism/youtube-converter/internal/youtube"
)

// postProcess tags converted MP3 files and writes the playlist file.
// Failures are reported as warnings; the converted files stay in place.
func (m *Manager) postProcess(ctx context.Context, r *run) {
	if r.target == model.MP3 && (m.settings.ModifyTags || m.settings.EmbedThumbnail) {
		for _, item := range r.items {
			if ctx.Err() != nil {
				return
			}
			if err := m.tag(ctx, r, item); err != nil {
				m.emit(r, ProgressEvent{Message: fmt.Sprintf("Tagging %s failed: %v", item.name, err), Level: LevelWarning})
			}
		}
	}

	if r.playlist != nil && m.settings.CreatePlaylist {
		path, err := m.writePlaylist(ctx, r)
		if err != nil {
			m.emit(r, ProgressEvent{Message: fmt.Sprintf("Writing playlist failed: %v", err), Level: LevelWarning})
			return
		}
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Playlist saved to %s", path), Level: LevelVerbose})
	}
}

func (m *Manager) tag(ctx context.Context, r *run, item convertedItem) error {
	path := m.outputPath(item.name, model.MP3)
	if !ioutils.Exists(path) {
		return os.ErrNotExist
	}

	info := audio.TagInfo{
		Title:  item.meta.Title,
		Artist: item.meta.Author,
		Source: youtube.WatchURL(item.meta.ID),
	}
	if info.Title == "" {
		info.Title = item.name
	}
	if r.playlist != nil {
		info.Album = r.playlist.Title
	}

	var artwork []byte
	if m.settings.EmbedThumbnail {
		artwork = m.artwork(ctx, r, item)
	}

	return m.tagger.SaveTags(path, info, artwork)
}

// artwork downloads and prepares the thumbnail of item. It returns nil
// when no cover can be embedded.
func (m *Manager) artwork(ctx context.Context, r *run, item convertedItem) []byte {
	if item.thumbnailURL == "" || m.thumbnails == nil {
		return nil
	}

	data, err := m.thumbnails.DownloadBytes(ctx, item.thumbnailURL)
	if err != nil {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Thumbnail for %s: %v", item.name, err), Level: LevelVerbose})
		return nil
	}

	cover, err := m.images.CoverArt(ctx, data, m.settings.ThumbnailMaxSize, m.settings.SquareThumbnail)
	if err != nil {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Thumbnail for %s: %v", item.name, err), Level: LevelVerbose})
		return nil
	}
	return cover
}

func (m *Manager) writePlaylist(ctx context.Context, r *run) (string, error) {
	entries := make([]audio.PlaylistEntry, 0, len(r.items))
	for _, item := range r.items {
		entries = append(entries, audio.PlaylistEntry{
			FileName: model.FileName(item.name, r.target),
			Title:    item.meta.Title,
			Author:   item.meta.Author,
		})
	}

	title := r.playlist.Title
	if title == "" {
		title = r.playlist.ID
	}
	content := m.playlist.CreatePlaylist(title, entries)
	path := filepath.Join(m.settings.OutputDir, model.Sanitize(title)+"."+m.playlist.Format().Extension())

	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return "", err
	}
	return path, nil
}
