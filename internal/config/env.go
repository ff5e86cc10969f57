package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvOutputDir        = "YTC_OUTPUT_DIR"
	EnvFFmpegPath       = "YTC_FFMPEG_PATH"
	EnvVideoBackend     = "YTC_VIDEO_BACKEND"
	EnvPlaylistBackend  = "YTC_PLAYLIST_BACKEND"
	EnvAPIKey           = "YOUTUBE_API_KEY"
	EnvListenAddr       = "YTC_LISTEN_ADDR"
	EnvCleanupPolicy    = "YTC_CLEANUP_POLICY"
	EnvMaxPlaylistItems = "YTC_MAX_PLAYLIST_ITEMS"
	EnvAllowedOrigins   = "YTC_ALLOWED_ORIGINS"
)

// LoadDotEnv loads variables from the given .env files (".env" if none)
// into the process environment. Missing files are ignored; variables
// already set are not overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overlays environment variables onto the settings.
func (s *Settings) ApplyEnv() {
	s.OutputDir = getEnv(EnvOutputDir, s.OutputDir)
	s.FFmpegPath = getEnv(EnvFFmpegPath, s.FFmpegPath)
	s.VideoBackend = getEnv(EnvVideoBackend, s.VideoBackend)
	s.PlaylistBackend = getEnv(EnvPlaylistBackend, s.PlaylistBackend)
	s.YouTubeAPIKey = getEnv(EnvAPIKey, s.YouTubeAPIKey)
	s.ListenAddr = getEnv(EnvListenAddr, s.ListenAddr)
	s.CleanupPolicy = getEnv(EnvCleanupPolicy, s.CleanupPolicy)
	s.MaxPlaylistItems = getEnvAsInt(EnvMaxPlaylistItems, s.MaxPlaylistItems)
	s.AllowedOrigins = getEnv(EnvAllowedOrigins, s.AllowedOrigins)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if val, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return val
	}
	return fallback
}
