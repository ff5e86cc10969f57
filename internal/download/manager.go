package download

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/handiism/youtube-converter/internal/audio"
	"github.com/handiism/youtube-converter/internal/config"
	ioutils "github.com/handiism/youtube-converter/internal/io"
	"github.com/handiism/youtube-converter/internal/media"
	"github.com/handiism/youtube-converter/internal/model"
	"github.com/handiism/youtube-converter/internal/youtube"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	// RunID identifies the Convert call that emitted the event.
	RunID   string
	Message string
	Level   ProgressLevel

	// Index and Total are set for per-item events (1-based Index).
	Index int
	Total int
}

// VideoResolver resolves a video id and downloads selected streams of it.
type VideoResolver interface {
	ResolveVideo(ctx context.Context, id string) (*model.Video, error)
	Fetch(ctx context.Context, video *model.Video, streams []model.StreamDescriptor, outPath string) error
}

// Forgetter is implemented by a VideoResolver that keeps per-video state
// between ResolveVideo and Fetch. Forget is called once the item is done,
// whether or not it was fetched.
type Forgetter interface {
	Forget(id string)
}

// PlaylistResolver resolves a playlist id into its ordered entries.
type PlaylistResolver interface {
	ResolvePlaylist(ctx context.Context, id string) (*model.Playlist, error)
}

// FileTranscoder converts one file to the container implied by out.
type FileTranscoder interface {
	Transcode(ctx context.Context, in, out string) error
}

// ThumbnailFetcher downloads thumbnail images.
type ThumbnailFetcher interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Dependencies are the collaborators a Manager drives. NewManager builds
// them from settings; NewManagerWith accepts them directly.
type Dependencies struct {
	Videos     VideoResolver
	Playlists  PlaylistResolver
	Backend    media.TranscodeBackend
	Files      FileTranscoder
	Thumbnails ThumbnailFetcher
}

// Manager runs conversion requests.
//
// A Manager holds only configuration and collaborators. Everything a
// request accumulates lives in a per-call run value, so one Manager can
// serve any number of requests.
type Manager struct {
	settings   *config.Settings
	videos     VideoResolver
	playlists  PlaylistResolver
	transcoder *media.Transcoder
	files      FileTranscoder
	thumbnails ThumbnailFetcher
	tagger     *audio.Tagger
	playlist   *audio.PlaylistCreator
	images     *ioutils.ImageService

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager with collaborators built from settings.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	m := NewManagerWith(settings, Dependencies{}, onProgress)
	deps := buildDependencies(settings, m.progress)
	m.videos = deps.Videos
	m.playlists = deps.Playlists
	m.transcoder = media.NewTranscoder(deps.Backend, settings.Cleanup())
	m.files = deps.Files
	m.thumbnails = deps.Thumbnails
	return m
}

// NewManagerWith creates a Manager around the given collaborators.
func NewManagerWith(settings *config.Settings, deps Dependencies, onProgress func(ProgressEvent)) *Manager {
	tagCfg := audio.DefaultTagConfig()
	tagCfg.ModifyTags = settings.ModifyTags

	return &Manager{
		settings:   settings,
		videos:     deps.Videos,
		playlists:  deps.Playlists,
		transcoder: media.NewTranscoder(deps.Backend, settings.Cleanup()),
		files:      deps.Files,
		thumbnails: deps.Thumbnails,
		tagger:     audio.NewTagger(tagCfg),
		playlist:   audio.NewPlaylistCreator(audio.ParsePlaylistFormat(settings.PlaylistFormat), settings.M3UExtended),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// OutputDir returns the directory converted files are written to.
func (m *Manager) OutputDir() string {
	return m.settings.OutputDir
}

// convertedItem is one item downloaded during a run.
type convertedItem struct {
	meta         model.ItemMetadata
	name         string // title used for the file name
	thumbnailURL string
}

// run is the state of a single Convert call.
type run struct {
	id       string
	target   model.MediaType
	items    []convertedItem
	playlist *model.Playlist
}

func (m *Manager) newRun(target model.MediaType) *run {
	return &run{id: uuid.NewString(), target: target}
}

// Convert runs a request end to end: identifier extraction, download of
// one item or every playlist item, batch transcoding and post-processing.
//
// A malformed URI or unsupported media type is returned as an error with
// an unsuccessful Result. Per-item download failures are only reported as
// progress events. A transcoding failure is returned as a
// *media.TranscodeError alongside an unsuccessful Result that still
// carries the downloaded count.
func (m *Manager) Convert(ctx context.Context, req model.Request) (model.Result, error) {
	target := req.TargetMediaType
	if target == "" {
		target = m.settings.MediaType()
	}
	if !target.Valid() {
		return model.BuildResult(0), fmt.Errorf("%w: %q", model.ErrUnsupportedMediaType, target)
	}

	id, err := youtube.ExtractID(req.URI, req.IsPlaylist)
	if err != nil {
		return model.BuildResult(0), err
	}

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return model.BuildResult(0), fmt.Errorf("creating output directory: %w", err)
	}

	r := m.newRun(target)
	if req.IsPlaylist {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Expanding playlist %s", id), Level: LevelInfo})
		m.expandAndDownload(ctx, r, id)
	} else {
		m.emit(r, ProgressEvent{Message: fmt.Sprintf("Resolving video %s", id), Level: LevelInfo})
		if _, err := m.downloadItem(ctx, r, model.ItemMetadata{ID: id}, 1, 1); err != nil {
			m.emit(r, ProgressEvent{Message: err.Error(), Level: LevelError})
		}
	}

	converted := len(r.items)
	if converted > 0 {
		if target != model.RawContainer {
			m.emit(r, ProgressEvent{Message: fmt.Sprintf("Transcoding %d file(s) to %s", converted, target), Level: LevelInfo})
		}
		if err := m.transcoder.ConvertAll(ctx, m.settings.OutputDir, target); err != nil {
			m.emit(r, ProgressEvent{Message: err.Error(), Level: LevelError})
			return model.FailedResult(converted, err), err
		}
		m.postProcess(ctx, r)
	}

	result := model.BuildResult(converted)
	if result.Succeeded {
		m.emit(r, ProgressEvent{Message: result.Message, Level: LevelSuccess})
	} else {
		m.emit(r, ProgressEvent{Message: result.Error, Level: LevelWarning})
	}
	return result, nil
}

// ConvertFile converts a single local file to target, writing a sibling
// with the target extension. The source file is kept.
func (m *Manager) ConvertFile(ctx context.Context, path string, target model.MediaType) (string, error) {
	if !target.Valid() {
		return "", fmt.Errorf("%w: %q", model.ErrUnsupportedMediaType, target)
	}
	out := media.ReplaceExt(path, target)
	if out == path {
		return "", fmt.Errorf("%s is already %s", path, target)
	}
	if err := m.files.Transcode(ctx, path, out); err != nil {
		return "", err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Converted %s", out), Level: LevelSuccess})
	return out, nil
}

func (m *Manager) emit(r *run, event ProgressEvent) {
	event.RunID = r.id
	m.progress(event)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
