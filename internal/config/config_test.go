package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/youtube-converter/internal/media"
	"github.com/handiism/youtube-converter/internal/model"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should be valid: %v", err)
	}
	if s.MaxPlaylistItems != 20 {
		t.Errorf("MaxPlaylistItems = %d, want 20", s.MaxPlaylistItems)
	}
	if s.Cleanup() != media.CleanupAlways {
		t.Errorf("Cleanup() = %q, want always", s.Cleanup())
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.VideoBackend != BackendYouTube {
		t.Errorf("VideoBackend = %q", s.VideoBackend)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.OutputDir = "/data/out"
	s.DefaultMediaType = "wav"
	s.CleanupPolicy = "on_success"
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.OutputDir != "/data/out" {
		t.Errorf("OutputDir = %q", loaded.OutputDir)
	}
	if loaded.MediaType() != model.WAV {
		t.Errorf("MediaType() = %q, want wav", loaded.MediaType())
	}
	if loaded.Cleanup() != media.CleanupOnSuccess {
		t.Errorf("Cleanup() = %q, want on_success", loaded.Cleanup())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_dir": "/tmp/yt"}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.OutputDir != "/tmp/yt" {
		t.Errorf("OutputDir = %q", s.OutputDir)
	}
	if !s.ModifyTags || s.PlaylistFormat != "m3u" {
		t.Error("unspecified fields should keep their defaults")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.DefaultMediaType = "flac"
	s.VideoBackend = "vlc"
	s.PlaylistBackend = BackendDataAPI
	s.CleanupPolicy = "never"
	s.MaxPlaylistItems = -1

	err := s.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"default_media_type", "video_backend", "youtube_api_key", "cleanup_policy", "max_playlist_items"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOutputDir, "/env/out")
	t.Setenv(EnvAPIKey, "key123")
	t.Setenv(EnvPlaylistBackend, BackendDataAPI)
	t.Setenv(EnvMaxPlaylistItems, "5")
	t.Setenv(EnvCleanupPolicy, "")

	s := DefaultSettings()
	s.ApplyEnv()

	if s.OutputDir != "/env/out" {
		t.Errorf("OutputDir = %q", s.OutputDir)
	}
	if s.YouTubeAPIKey != "key123" || s.PlaylistBackend != BackendDataAPI {
		t.Errorf("api settings = %q / %q", s.YouTubeAPIKey, s.PlaylistBackend)
	}
	if s.MaxPlaylistItems != 5 {
		t.Errorf("MaxPlaylistItems = %d, want 5", s.MaxPlaylistItems)
	}
	if s.CleanupPolicy != string(media.CleanupAlways) {
		t.Errorf("empty env value should not override, got %q", s.CleanupPolicy)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("YTC_TEST_DOTENV=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("YTC_TEST_DOTENV") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	if got := os.Getenv("YTC_TEST_DOTENV"); got != "from-file" {
		t.Errorf("YTC_TEST_DOTENV = %q", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored: %v", err)
	}
}
