package model

// StreamKind distinguishes audio from video elementary streams.
type StreamKind string

const (
	StreamAudio StreamKind = "audio"
	StreamVideo StreamKind = "video"
)

// StreamDescriptor describes one selectable elementary stream of a video.
//
// Descriptors are produced by a resolver backend and are read-only. Format
// is the backend specific key used to fetch the stream later (an itag for
// the YouTube backend, a format selector for yt-dlp).
type StreamDescriptor struct {
	Kind          StreamKind
	Format        string
	Bitrate       int
	Height        int
	Container     string
	MimeType      string
	ContentLength int64
}

// ItemMetadata identifies a single video and carries what is needed to
// name its output file.
type ItemMetadata struct {
	ID     string
	Title  string
	Author string
}

// Video is a resolved item together with its available streams.
type Video struct {
	ItemMetadata

	// ThumbnailURL points at the largest thumbnail the backend reported.
	// Empty if none is known.
	ThumbnailURL string

	Streams []StreamDescriptor
}

// Playlist is an ordered list of items.
type Playlist struct {
	ID    string
	Title string
	Items []ItemMetadata
}
