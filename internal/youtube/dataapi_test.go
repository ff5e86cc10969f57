package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "github.com/handiism/youtube-converter/internal/http"
)

func newPlaylistServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/playlistItems" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q.Get("key") != "secret" || q.Get("part") != "snippet" || q.Get("playlistId") != "PL1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}

		switch q.Get("pageToken") {
		case "":
			fmt.Fprint(w, `{"nextPageToken":"p2","items":[
				{"snippet":{"title":"First","videoOwnerChannelTitle":"Chan","resourceId":{"videoId":"a1"}}},
				{"snippet":{"title":"Deleted video","resourceId":{"videoId":"gone"}}}
			]}`)
		case "p2":
			fmt.Fprint(w, `{"items":[
				{"snippet":{"title":"Second","resourceId":{"videoId":"b2"}}},
				{"snippet":{"title":"Third","resourceId":{"videoId":"c3"}}}
			]}`)
		default:
			t.Errorf("unexpected page token %q", q.Get("pageToken"))
		}
	}))
}

func TestDataAPI_ResolvePlaylist(t *testing.T) {
	srv := newPlaylistServer(t)
	defer srv.Close()

	api, err := NewDataAPI(apphttp.NewClient(0), "secret", 0)
	if err != nil {
		t.Fatalf("NewDataAPI() error: %v", err)
	}
	api.WithBaseURL(srv.URL)

	playlist, err := api.ResolvePlaylist(context.Background(), "PL1")
	if err != nil {
		t.Fatalf("ResolvePlaylist() error: %v", err)
	}

	want := []string{"a1", "b2", "c3"}
	if len(playlist.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(playlist.Items), len(want))
	}
	for i, id := range want {
		if playlist.Items[i].ID != id {
			t.Errorf("item %d = %q, want %q", i, playlist.Items[i].ID, id)
		}
	}
	if playlist.Items[0].Author != "Chan" {
		t.Errorf("Author = %q, want %q", playlist.Items[0].Author, "Chan")
	}
}

func TestDataAPI_MaxItems(t *testing.T) {
	srv := newPlaylistServer(t)
	defer srv.Close()

	api, _ := NewDataAPI(apphttp.NewClient(0), "secret", 2)
	api.WithBaseURL(srv.URL)

	playlist, err := api.ResolvePlaylist(context.Background(), "PL1")
	if err != nil {
		t.Fatalf("ResolvePlaylist() error: %v", err)
	}
	if len(playlist.Items) != 2 {
		t.Errorf("got %d items, want 2", len(playlist.Items))
	}
}

func TestNewDataAPI_MissingKey(t *testing.T) {
	if _, err := NewDataAPI(apphttp.NewClient(0), "", 20); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("NewDataAPI() error = %v, want ErrMissingAPIKey", err)
	}
}
