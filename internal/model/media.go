package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedMediaType is returned when a media type is not one of
// mp4, mp3 or wav.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// MediaType is the container a conversion request should end up in.
type MediaType string

const (
	// MP4 keeps the downloaded container as is.
	MP4 MediaType = "mp4"

	// MP3 transcodes the audio track to MPEG-1 Layer III.
	MP3 MediaType = "mp3"

	// WAV transcodes the audio track to 16-bit PCM.
	WAV MediaType = "wav"
)

// RawContainer is the container every item is downloaded into before any
// transcoding happens.
const RawContainer = MP4

// ParseMediaType converts a user supplied string into a MediaType.
//
// Matching is case-insensitive and ignores a leading dot, so ".MP3" and
// "mp3" both yield MP3.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))) {
	case MP4:
		return MP4, nil
	case MP3:
		return MP3, nil
	case WAV:
		return WAV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, s)
}

// Valid reports whether t is one of the supported media types.
func (t MediaType) Valid() bool {
	return t == MP4 || t == MP3 || t == WAV
}

// IncludesVideo reports whether the target keeps a video track.
func (t MediaType) IncludesVideo() bool {
	return t == MP4
}

// Extension returns the file extension for t, without the leading dot.
func (t MediaType) Extension() string {
	return string(t)
}

func (t MediaType) String() string {
	return string(t)
}
