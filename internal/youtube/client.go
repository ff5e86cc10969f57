package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	kkdai "github.com/kkdai/youtube/v2"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/youtube-converter/internal/model"
)

// ErrNoStreams is returned when a video exposes no downloadable formats.
var ErrNoStreams = errors.New("no downloadable streams")

// Muxer combines elementary stream files into one container.
type Muxer interface {
	Mux(ctx context.Context, output string, inputs ...string) error
}

// Client resolves videos and playlists through the YouTube innertube API
// and downloads the selected streams.
//
// Resolved videos are cached until they are fetched, since the stream
// URLs are tied to the response that produced them.
//
// Example:
//
//	client := youtube.NewClient(ffmpeg)
//	video, err := client.ResolveVideo(ctx, "abc123")
//	if err != nil {
//	    return err
//	}
//	err = client.Fetch(ctx, video, selected, "/music/Title.mp4")
type Client struct {
	client kkdai.Client
	muxer  Muxer

	mu     sync.Mutex
	videos map[string]*kkdai.Video
}

// NewClient creates a Client that muxes downloaded streams with muxer.
func NewClient(muxer Muxer) *Client {
	return &Client{
		client: kkdai.Client{HTTPClient: &http.Client{}},
		muxer:  muxer,
		videos: make(map[string]*kkdai.Video),
	}
}

// ResolveVideo fetches metadata and stream descriptors for a video id.
func (c *Client) ResolveVideo(ctx context.Context, id string) (*model.Video, error) {
	v, err := c.client.GetVideoContext(ctx, WatchURL(id))
	if err != nil {
		return nil, fmt.Errorf("resolving video %s: %w", id, err)
	}
	if len(v.Formats) == 0 {
		return nil, fmt.Errorf("resolving video %s: %w", id, ErrNoStreams)
	}

	c.mu.Lock()
	c.videos[id] = v
	c.mu.Unlock()

	return toVideo(id, v), nil
}

// ResolvePlaylist fetches the ordered entries of a playlist.
func (c *Client) ResolvePlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	p, err := c.client.GetPlaylistContext(ctx, PlaylistURL(id))
	if err != nil {
		return nil, fmt.Errorf("resolving playlist %s: %w", id, err)
	}
	return toPlaylist(id, p), nil
}

// Fetch downloads the given streams of video next to outPath and muxes
// them into outPath. Elementary streams are fetched concurrently and the
// intermediate files are removed afterwards.
func (c *Client) Fetch(ctx context.Context, video *model.Video, streams []model.StreamDescriptor, outPath string) error {
	if len(streams) == 0 {
		return ErrNoStreams
	}

	v, err := c.source(ctx, video.ID)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outPath)
	parts := make([]string, len(streams))
	defer func() {
		for _, p := range parts {
			if p != "" {
				os.Remove(p)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range streams {
		format, err := findFormat(v.Formats, s.Format)
		if err != nil {
			return fmt.Errorf("video %s: %w", video.ID, err)
		}
		parts[i] = filepath.Join(dir, fmt.Sprintf(".%s.%s.%s.part", video.ID, s.Kind, s.Format))
		g.Go(func() error {
			return c.fetchStream(gctx, v, format, parts[i])
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("downloading streams for %s: %w", video.ID, err)
	}

	return c.muxer.Mux(ctx, outPath, parts...)
}

// Forget drops the cached video for id. Items that are resolved but never
// fetched must be forgotten, or the cache grows without bound.
func (c *Client) Forget(id string) {
	c.mu.Lock()
	delete(c.videos, id)
	c.mu.Unlock()
}

// source returns the cached video for id, resolving it again if needed.
func (c *Client) source(ctx context.Context, id string) (*kkdai.Video, error) {
	c.mu.Lock()
	v, ok := c.videos[id]
	delete(c.videos, id)
	c.mu.Unlock()
	if ok {
		return v, nil
	}

	v, err := c.client.GetVideoContext(ctx, WatchURL(id))
	if err != nil {
		return nil, fmt.Errorf("resolving video %s: %w", id, err)
	}
	return v, nil
}

func (c *Client) fetchStream(ctx context.Context, v *kkdai.Video, format *kkdai.Format, path string) error {
	stream, _, err := c.client.GetStreamContext(ctx, v, format)
	if err != nil {
		return err
	}
	defer stream.Close()

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, stream); err != nil {
		return err
	}
	return file.Sync()
}

func findFormat(formats kkdai.FormatList, key string) (*kkdai.Format, error) {
	itag, err := strconv.Atoi(key)
	if err != nil {
		return nil, fmt.Errorf("invalid itag %q", key)
	}
	for i := range formats {
		if formats[i].ItagNo == itag {
			return &formats[i], nil
		}
	}
	return nil, fmt.Errorf("itag %d not available", itag)
}
