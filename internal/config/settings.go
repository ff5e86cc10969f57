package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/youtube-converter/internal/media"
	"github.com/handiism/youtube-converter/internal/model"
)

// Resolver backend names.
const (
	BackendYouTube = "youtube"
	BackendYTDLP   = "ytdlp"
	BackendYTGet   = "ytget"
	BackendDataAPI = "dataapi"
)

// Settings holds all configuration options.
type Settings struct {
	// Output
	OutputDir        string `json:"output_dir"`
	DefaultMediaType string `json:"default_media_type"`

	// Resolver backends
	VideoBackend     string `json:"video_backend"`    // youtube, ytdlp
	PlaylistBackend  string `json:"playlist_backend"` // youtube, ytget, dataapi
	YouTubeAPIKey    string `json:"youtube_api_key"`
	MaxPlaylistItems int    `json:"max_playlist_items"`
	Proxy            string `json:"proxy"`

	// Transcoding
	FFmpegPath    string `json:"ffmpeg_path"`
	CleanupPolicy string `json:"cleanup_policy"` // always, on_success

	// Tag settings
	ModifyTags       bool `json:"modify_tags"`
	EmbedThumbnail   bool `json:"embed_thumbnail"`
	ThumbnailMaxSize int  `json:"thumbnail_max_size"`
	SquareThumbnail  bool `json:"square_thumbnail"` // crop the centre square

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`

	// Network
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`
	ListenAddr         string `json:"listen_addr"`

	// AllowedOrigins is a comma separated CORS allow list for the HTTP
	// server. "*" allows every origin; empty allows none.
	AllowedOrigins string `json:"allowed_origins"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		OutputDir:        filepath.Join(homeDir, "Music", "YouTube"),
		DefaultMediaType: string(model.MP3),

		VideoBackend:     BackendYouTube,
		PlaylistBackend:  BackendYouTube,
		MaxPlaylistItems: 20,

		FFmpegPath:    "ffmpeg",
		CleanupPolicy: string(media.CleanupAlways),

		ModifyTags:       true,
		EmbedThumbnail:   true,
		ThumbnailMaxSize: 1000,
		SquareThumbnail:  false,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		HTTPTimeoutSeconds: 60,
		ListenAddr:         ":8080",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid enum value in the settings.
func (s *Settings) Validate() error {
	var errs []error

	if s.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	if _, err := model.ParseMediaType(s.DefaultMediaType); err != nil {
		errs = append(errs, fmt.Errorf("default_media_type: %w", err))
	}
	switch s.VideoBackend {
	case BackendYouTube, BackendYTDLP:
	default:
		errs = append(errs, fmt.Errorf("video_backend: unknown backend %q", s.VideoBackend))
	}
	switch s.PlaylistBackend {
	case BackendYouTube, BackendYTGet:
	case BackendDataAPI:
		if s.YouTubeAPIKey == "" {
			errs = append(errs, errors.New("playlist_backend dataapi requires youtube_api_key"))
		}
	default:
		errs = append(errs, fmt.Errorf("playlist_backend: unknown backend %q", s.PlaylistBackend))
	}
	if _, err := media.ParseCleanupPolicy(s.CleanupPolicy); err != nil {
		errs = append(errs, fmt.Errorf("cleanup_policy: %w", err))
	}
	if s.MaxPlaylistItems < 0 {
		errs = append(errs, errors.New("max_playlist_items must not be negative"))
	}

	return errors.Join(errs...)
}

// MediaType returns the parsed default media type, falling back to mp3.
func (s *Settings) MediaType() model.MediaType {
	t, err := model.ParseMediaType(s.DefaultMediaType)
	if err != nil {
		return model.MP3
	}
	return t
}

// Cleanup returns the parsed cleanup policy, falling back to "always".
func (s *Settings) Cleanup() media.CleanupPolicy {
	p, err := media.ParseCleanupPolicy(s.CleanupPolicy)
	if err != nil {
		return media.CleanupAlways
	}
	return p
}

// HTTPTimeout returns the HTTP timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}
