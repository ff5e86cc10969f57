package youtube

import (
	"fmt"
	"strings"
)

const (
	videoMarker    = "v="
	playlistMarker = "list="
	indexMarker    = "index="
)

// MalformedURIError is returned when a URI does not carry the identifier
// marker expected for the request kind.
type MalformedURIError struct {
	URI    string
	Marker string
}

func (e *MalformedURIError) Error() string {
	return fmt.Sprintf("malformed uri %q: missing %q parameter", e.URI, e.Marker)
}

// ExtractID returns the video identifier (isPlaylist false) or playlist
// identifier (isPlaylist true) embedded in uri.
//
// The identifier is the text after "v=" or "list=" up to the next '&' or
// '#'. Playlist URIs that also carry "index=" are split on the first '='
// instead, so ".../playlist?list=XYZ&index=3" yields "XYZ&index".
func ExtractID(uri string, isPlaylist bool) (string, error) {
	marker := videoMarker
	if isPlaylist {
		marker = playlistMarker
	}

	pos := markerIndex(uri, marker)
	if pos < 0 {
		return "", &MalformedURIError{URI: uri, Marker: marker}
	}

	var id string
	if isPlaylist && strings.Contains(uri, indexMarker) {
		id = strings.SplitN(uri, "=", 3)[1]
	} else {
		id = uri[pos+len(marker):]
		if end := strings.IndexAny(id, "&#"); end >= 0 {
			id = id[:end]
		}
	}

	if id == "" {
		return "", &MalformedURIError{URI: uri, Marker: marker}
	}
	return id, nil
}

// markerIndex finds marker at the start of a query parameter, so that
// "v=" does not match inside "dev=".
func markerIndex(uri, marker string) int {
	for from := 0; from < len(uri); {
		i := strings.Index(uri[from:], marker)
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || strings.ContainsRune("?&#/", rune(uri[i-1])) {
			return i
		}
		from = i + 1
	}
	return -1
}

// WatchURL returns the canonical watch page URL for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// PlaylistURL returns the canonical playlist page URL for a playlist id.
func PlaylistURL(id string) string {
	return "https://www.youtube.com/playlist?list=" + id
}
