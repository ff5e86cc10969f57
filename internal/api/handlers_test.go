package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/handiism/youtube-converter/internal/media"
	"github.com/handiism/youtube-converter/internal/model"
	"github.com/handiism/youtube-converter/internal/youtube"
)

type fakeConverter struct {
	result model.Result
	err    error
	got    model.Request
	ctxErr error
}

func (f *fakeConverter) Convert(ctx context.Context, req model.Request) (model.Result, error) {
	f.got = req
	f.ctxErr = ctx.Err()
	return f.result, f.err
}

func TestConvertHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		result     model.Result
		err        error
		wantStatus int
		wantCount  int
	}{
		{
			name:       "success",
			method:     http.MethodPost,
			body:       `{"uri":"https://www.youtube.com/watch?v=abc","targetMediaType":"MP3"}`,
			result:     model.BuildResult(1),
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:       "nothing converted is still 200",
			method:     http.MethodPost,
			body:       `{"uri":"https://www.youtube.com/watch?v=abc"}`,
			result:     model.BuildResult(0),
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			body:       `{"uri":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing uri",
			method:     http.MethodPost,
			body:       `{"uri":"  "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown media type",
			method:     http.MethodPost,
			body:       `{"uri":"https://www.youtube.com/watch?v=abc","targetMediaType":"flac"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed uri",
			method:     http.MethodPost,
			body:       `{"uri":"https://example.com/"}`,
			err:        &youtube.MalformedURIError{URI: "https://example.com/", Marker: "v="},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "transcode failure",
			method:     http.MethodPost,
			body:       `{"uri":"https://www.youtube.com/watch?v=abc","targetMediaType":"wav"}`,
			result:     model.BuildResult(2),
			err:        &media.TranscodeError{Dir: "/out", Target: model.WAV, Err: errors.New("exit status 1")},
			wantStatus: http.StatusInternalServerError,
			wantCount:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := &fakeConverter{result: tt.result, err: tt.err}
			h := NewHandler(conv, nil)

			req := httptest.NewRequest(tt.method, "/api/convert", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Convert(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if rec.Code != http.StatusOK && rec.Code != http.StatusInternalServerError {
				return
			}

			var got model.Result
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decoding result: %v", err)
			}
			if got.ConvertedCount != tt.wantCount {
				t.Errorf("ConvertedCount = %d, want %d", got.ConvertedCount, tt.wantCount)
			}
		})
	}
}

func TestConvertHandlerOutlivesClient(t *testing.T) {
	conv := &fakeConverter{result: model.BuildResult(1)}
	h := NewHandler(conv, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	body := `{"uri":"https://www.youtube.com/watch?v=abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	if conv.ctxErr != nil {
		t.Errorf("converter context error = %v, want nil", conv.ctxErr)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestConvertHandlerNormalizesMediaType(t *testing.T) {
	conv := &fakeConverter{result: model.BuildResult(1)}
	h := NewHandler(conv, nil)

	body := `{"uri":" https://www.youtube.com/playlist?list=PL1 ","isPlaylist":true,"targetMediaType":".WAV"}`
	rec := httptest.NewRecorder()
	h.Convert(rec, httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body)))

	want := model.Request{URI: "https://www.youtube.com/playlist?list=PL1", IsPlaylist: true, TargetMediaType: model.WAV}
	if conv.got != want {
		t.Errorf("converter got %+v, want %+v", conv.got, want)
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(&fakeConverter{}, func() bool { return true })
	srv := httptest.NewServer(NewRouter(h, ""))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Status string `json:"status"`
		FFmpeg bool   `json:"ffmpeg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || !body.FFmpeg {
		t.Errorf("health = %+v, want ok with ffmpeg", body)
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"no origin passes", "", http.MethodGet, "", http.StatusTeapot, ""},
		{"listed origin", "https://a.example, https://b.example", http.MethodPost, "https://b.example", http.StatusTeapot, "https://b.example"},
		{"wildcard", "*", http.MethodPost, "https://x.example", http.StatusTeapot, "*"},
		{"denied origin", "https://a.example", http.MethodPost, "https://x.example", http.StatusForbidden, ""},
		{"preflight", "*", http.MethodOptions, "https://x.example", http.StatusNoContent, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/convert", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORSMiddleware(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}
