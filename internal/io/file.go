package ioutils

import (
	"context"
	"os"
)

// Exists reports whether a file or directory exists at path.
//
// Any error other than "does not exist" (for example a permission error)
// is treated as existing, so callers never overwrite what they cannot see.
//
// Example:
//
//	if Exists("/music/Song.mp3") {
//	    // skip
//	}
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// AnyExists reports whether at least one of paths exists.
func AnyExists(paths ...string) bool {
	for _, p := range paths {
		if Exists(p) {
			return true
		}
	}
	return false
}

// FileSize returns the size of the file at path, or 0 if it cannot be read.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/playlist.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
