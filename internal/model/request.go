package model

// Request describes a single conversion: what to fetch and what to turn it into.
//
// The JSON field names match the payload accepted by the HTTP API:
//
//	{"uri": "https://www.youtube.com/watch?v=abc123", "isPlaylist": false, "targetMediaType": "mp3"}
type Request struct {
	// URI is the YouTube watch or playlist URL.
	URI string `json:"uri"`

	// IsPlaylist selects playlist expansion instead of a single video.
	IsPlaylist bool `json:"isPlaylist"`

	// TargetMediaType is the container the converted files end up in.
	TargetMediaType MediaType `json:"targetMediaType"`
}
