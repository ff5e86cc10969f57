package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/handiism/youtube-converter/internal/model"
	"github.com/handiism/youtube-converter/internal/youtube"
)

// Converter runs a conversion request.
type Converter interface {
	Convert(ctx context.Context, req model.Request) (model.Result, error)
}

// Handler serves the conversion API.
type Handler struct {
	converter       Converter
	ffmpegAvailable func() bool

	// Conversions share one output directory and the batch transcode
	// works on the whole directory, so they run one at a time.
	mu sync.Mutex
}

// NewHandler creates a Handler. ffmpegAvailable is reported by the health
// check and may be nil.
func NewHandler(c Converter, ffmpegAvailable func() bool) *Handler {
	return &Handler{converter: c, ffmpegAvailable: ffmpegAvailable}
}

// Convert handles POST /api/convert.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	req.URI = strings.TrimSpace(req.URI)
	if req.URI == "" {
		http.Error(w, "uri required", http.StatusBadRequest)
		return
	}
	if req.TargetMediaType != "" {
		t, err := model.ParseMediaType(string(req.TargetMediaType))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.TargetMediaType = t
	}

	// A dropped client must not abort a batch halfway through transcoding.
	h.mu.Lock()
	result, err := h.converter.Convert(context.WithoutCancel(r.Context()), req)
	h.mu.Unlock()

	if err != nil {
		var malformed *youtube.MalformedURIError
		if errors.As(err, &malformed) || errors.Is(err, model.ErrUnsupportedMediaType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Convert %s failed: %v", req.URI, err)
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ffmpeg := false
	if h.ffmpegAvailable != nil {
		ffmpeg = h.ffmpegAvailable()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"ffmpeg": ffmpeg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encoding response failed: %v", err)
	}
}
