package youtube

import "github.com/handiism/youtube-converter/internal/model"

// jsonPlaylistItemsPage is one page of the Data API playlistItems response.
type jsonPlaylistItemsPage struct {
	NextPageToken string             `json:"nextPageToken"`
	Items         []jsonPlaylistItem `json:"items"`
}

type jsonPlaylistItem struct {
	Snippet jsonSnippet `json:"snippet"`
}

type jsonSnippet struct {
	Title                  string `json:"title"`
	VideoOwnerChannelTitle string `json:"videoOwnerChannelTitle"`
	Position               int    `json:"position"`
	ResourceID             struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"resourceId"`
}

// isUnavailable reports entries the API keeps for removed or private videos.
func (s jsonSnippet) isUnavailable() bool {
	return s.ResourceID.VideoID == "" || s.Title == "Deleted video" || s.Title == "Private video"
}

func (s jsonSnippet) toItem() model.ItemMetadata {
	return model.ItemMetadata{
		ID:     s.ResourceID.VideoID,
		Title:  s.Title,
		Author: s.VideoOwnerChannelTitle,
	}
}
