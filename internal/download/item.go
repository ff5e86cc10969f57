package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	ioutils "github.com/handiism/youtube-converter/internal/io"
	"github.com/handiism/youtube-converter/internal/model"
)

var (
	ErrNoAudioStream = errors.New("no audio stream available")
	ErrNoVideoStream = errors.New("no mp4 video stream available")
)

// DownloadError reports a failed download of a single item.
type DownloadError struct {
	ID  string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s: %v", e.ID, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// DownloadOne downloads the video id into the output directory as a raw
// container file.
//
// It returns true if a new raw file was written and false if the item was
// skipped because a raw or target file for it already exists. Any other
// failure is returned as a *DownloadError.
func (m *Manager) DownloadOne(ctx context.Context, id string, target model.MediaType) (bool, error) {
	r := m.newRun(target)
	return m.downloadItem(ctx, r, model.ItemMetadata{ID: id}, 1, 1)
}

// downloadItem downloads one item and records it on the run. A non-empty
// item.Title is trusted as the output name, which allows skipping without
// resolving the item first.
func (m *Manager) downloadItem(ctx context.Context, r *run, item model.ItemMetadata, index, total int) (bool, error) {
	if model.Sanitize(item.Title) != "" && m.alreadyConverted(item.Title, r.target) {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Skipping %s: already downloaded", item.Title), Level: LevelVerbose, Index: index, Total: total})
		return false, nil
	}

	video, err := m.videos.ResolveVideo(ctx, item.ID)
	if err != nil {
		return false, &DownloadError{ID: item.ID, Err: err}
	}
	defer m.forget(item.ID)

	name := outputName(item.Title, video.Title, item.ID)
	if name != item.Title && m.alreadyConverted(name, r.target) {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Skipping %s: already downloaded", name), Level: LevelVerbose, Index: index, Total: total})
		return false, nil
	}

	streams, err := SelectStreams(video.Streams, r.target)
	if err != nil {
		return false, &DownloadError{ID: item.ID, Err: err}
	}

	m.emit(r, ProgressEvent{Message: fmt.Sprintf("Downloading %s", name), Level: LevelInfo, Index: index, Total: total})

	rawPath := m.outputPath(name, model.RawContainer)
	if err := m.videos.Fetch(ctx, video, streams, rawPath); err != nil {
		// A partial file would make every later run skip this item.
		os.Remove(rawPath)
		return false, &DownloadError{ID: item.ID, Err: err}
	}

	meta := video.ItemMetadata
	meta.ID = item.ID
	if meta.Author == "" {
		meta.Author = item.Author
	}
	r.items = append(r.items, convertedItem{meta: meta, name: name, thumbnailURL: video.ThumbnailURL})

	m.emit(r, ProgressEvent{
		Message: fmt.Sprintf("Downloaded %s (%s)", filepath.Base(rawPath), humanize.Bytes(uint64(ioutils.FileSize(rawPath)))),
		Level:   LevelVerbose,
		Index:   index,
		Total:   total,
	})
	return true, nil
}

// outputName returns the first candidate that still names a file after
// sanitizing.
func outputName(candidates ...string) string {
	for _, c := range candidates {
		if model.Sanitize(c) != "" {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

// forget drops any state the video resolver keeps for id.
func (m *Manager) forget(id string) {
	if f, ok := m.videos.(Forgetter); ok {
		f.Forget(id)
	}
}

// alreadyConverted reports whether the raw or the target file for title
// exists in the output directory.
func (m *Manager) alreadyConverted(title string, target model.MediaType) bool {
	return ioutils.AnyExists(m.outputPath(title, model.RawContainer), m.outputPath(title, target))
}

func (m *Manager) outputPath(title string, ext model.MediaType) string {
	return filepath.Join(m.settings.OutputDir, model.FileName(title, ext))
}

// SelectStreams picks the streams to download for target: the highest
// bitrate audio stream, plus the tallest mp4 video stream when target
// carries video. Video comes first in the returned slice.
func SelectStreams(streams []model.StreamDescriptor, target model.MediaType) ([]model.StreamDescriptor, error) {
	var audio, video *model.StreamDescriptor
	for i := range streams {
		s := &streams[i]
		switch s.Kind {
		case model.StreamAudio:
			if audio == nil || s.Bitrate > audio.Bitrate {
				audio = s
			}
		case model.StreamVideo:
			if s.Container != "mp4" {
				continue
			}
			if video == nil || s.Height > video.Height ||
				(s.Height == video.Height && s.Bitrate > video.Bitrate) {
				video = s
			}
		}
	}

	if audio == nil {
		return nil, ErrNoAudioStream
	}
	if !target.IncludesVideo() {
		return []model.StreamDescriptor{*audio}, nil
	}
	if video == nil {
		return nil, ErrNoVideoStream
	}
	return []model.StreamDescriptor{*video, *audio}, nil
}
