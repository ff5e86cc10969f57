package youtube

import (
	"strconv"
	"strings"

	kkdai "github.com/kkdai/youtube/v2"

	"github.com/handiism/youtube-converter/internal/model"
)

func toVideo(id string, v *kkdai.Video) *model.Video {
	video := &model.Video{
		ItemMetadata: model.ItemMetadata{
			ID:     id,
			Title:  v.Title,
			Author: v.Author,
		},
		ThumbnailURL: largestThumbnail(v.Thumbnails),
	}

	for _, f := range v.Formats {
		d, ok := toStream(f)
		if ok {
			video.Streams = append(video.Streams, d)
		}
	}
	return video
}

// toStream maps a format onto a descriptor. Muxed formats (audio and
// video in one stream) are skipped.
func toStream(f kkdai.Format) (model.StreamDescriptor, bool) {
	mediaType, container := splitMimeType(f.MimeType)

	d := model.StreamDescriptor{
		Format:        strconv.Itoa(f.ItagNo),
		Bitrate:       f.Bitrate,
		Height:        f.Height,
		Container:     container,
		MimeType:      f.MimeType,
		ContentLength: f.ContentLength,
	}
	if d.Bitrate == 0 {
		d.Bitrate = f.AverageBitrate
	}

	switch mediaType {
	case "audio":
		d.Kind = model.StreamAudio
	case "video":
		if f.AudioChannels > 0 {
			return d, false
		}
		d.Kind = model.StreamVideo
	default:
		return d, false
	}
	return d, true
}

// splitMimeType turns `video/mp4; codecs="avc1.640028"` into ("video", "mp4").
func splitMimeType(mime string) (string, string) {
	mime, _, _ = strings.Cut(mime, ";")
	mediaType, container, _ := strings.Cut(strings.TrimSpace(mime), "/")
	return mediaType, container
}

func largestThumbnail(thumbs kkdai.Thumbnails) string {
	var url string
	var best uint
	for _, t := range thumbs {
		if area := t.Width * t.Height; url == "" || area > best {
			url, best = t.URL, area
		}
	}
	return url
}

func toPlaylist(id string, p *kkdai.Playlist) *model.Playlist {
	playlist := &model.Playlist{ID: id, Title: p.Title}
	if playlist.Title == "" {
		playlist.Title = id
	}
	for _, entry := range p.Videos {
		if entry == nil || entry.ID == "" {
			continue
		}
		playlist.Items = append(playlist.Items, model.ItemMetadata{
			ID:     entry.ID,
			Title:  entry.Title,
			Author: entry.Author,
		})
	}
	return playlist
}
