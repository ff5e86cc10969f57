package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/handiism/youtube-converter/internal/model"
)

// DefaultDataAPIBaseURL is the YouTube Data API v3 endpoint.
const DefaultDataAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// dataAPIPageSize is the largest page the playlistItems endpoint returns.
const dataAPIPageSize = 50

// ErrMissingAPIKey is returned by NewDataAPI when no key is configured.
var ErrMissingAPIKey = errors.New("youtube data api key is not configured")

// JSONGetter fetches a URL and decodes its JSON body into v.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, v any) error
}

// DataAPI lists playlist items through the YouTube Data API v3
// playlistItems endpoint using an API key.
type DataAPI struct {
	client   JSONGetter
	apiKey   string
	baseURL  string
	maxItems int
}

// NewDataAPI creates a DataAPI playlist resolver. maxItems caps the number
// of returned entries; 0 means all.
func NewDataAPI(client JSONGetter, apiKey string, maxItems int) (*DataAPI, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &DataAPI{
		client:   client,
		apiKey:   apiKey,
		baseURL:  DefaultDataAPIBaseURL,
		maxItems: maxItems,
	}, nil
}

// WithBaseURL points the resolver at a different API root.
func (d *DataAPI) WithBaseURL(baseURL string) *DataAPI {
	d.baseURL = baseURL
	return d
}

// ResolvePlaylist pages through playlistItems until the playlist or the
// item cap is exhausted.
func (d *DataAPI) ResolvePlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	playlist := &model.Playlist{ID: id, Title: id}

	pageToken := ""
	for {
		var page jsonPlaylistItemsPage
		if err := d.client.GetJSON(ctx, d.pageURL(id, pageToken), &page); err != nil {
			return nil, fmt.Errorf("listing playlist %s: %w", id, err)
		}

		for _, item := range page.Items {
			if item.Snippet.isUnavailable() {
				continue
			}
			playlist.Items = append(playlist.Items, item.Snippet.toItem())
			if d.maxItems > 0 && len(playlist.Items) >= d.maxItems {
				return playlist, nil
			}
		}

		if page.NextPageToken == "" {
			return playlist, nil
		}
		pageToken = page.NextPageToken
	}
}

func (d *DataAPI) pageURL(id, pageToken string) string {
	size := dataAPIPageSize
	if d.maxItems > 0 && d.maxItems < size {
		size = d.maxItems
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("playlistId", id)
	q.Set("maxResults", strconv.Itoa(size))
	q.Set("key", d.apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	return d.baseURL + "/playlistItems?" + q.Encode()
}
