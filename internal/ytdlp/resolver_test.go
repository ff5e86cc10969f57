package ytdlp

import (
	"testing"

	"github.com/handiism/youtube-converter/internal/model"
)

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		name    string
		streams []model.StreamDescriptor
		want    string
	}{
		{
			name: "audio and video",
			streams: []model.StreamDescriptor{
				{Kind: model.StreamAudio, Format: bestAudioSelector},
				{Kind: model.StreamVideo, Format: bestVideoSelector},
			},
			want: bestVideoSelector + "+" + bestAudioSelector,
		},
		{
			name:    "audio only",
			streams: []model.StreamDescriptor{{Kind: model.StreamAudio, Format: "140"}},
			want:    "140",
		},
		{
			name: "none",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSelector(tt.streams); got != tt.want {
				t.Errorf("formatSelector() = %q, want %q", got, tt.want)
			}
		})
	}
}
