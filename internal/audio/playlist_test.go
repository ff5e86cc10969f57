package audio

import (
	"strings"
	"testing"
)

func testEntries() []PlaylistEntry {
	return []PlaylistEntry{
		{FileName: "track1.mp3", Title: "track1", Author: "Test Artist"},
		{FileName: "track2.mp3", Title: "track2"},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist("Test", testEntries())

	if content != "track1.mp3\ntrack2.mp3\n" {
		t.Errorf("M3U content = %q", content)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist("Test", testEntries())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - track1\n") {
		t.Errorf("Extended M3U should contain EXTINF with author, got %q", content)
	}
	if !strings.Contains(content, "#EXTINF:-1,track2\n") {
		t.Errorf("Extended M3U should contain EXTINF without author, got %q", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist("Test", testEntries())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=track1.mp3") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatWPL, false)

	content := creator.CreatePlaylist("Test", testEntries())

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<media src=\"track1.mp3\"/>") {
		t.Error("WPL should contain media elements")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatZPL, false)

	content := creator.CreatePlaylist("Test", testEntries())

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, "trackArtist=\"Test Artist\"") {
		t.Error("ZPL should contain trackArtist attribute")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	creator := NewPlaylistCreator(FormatWPL, false)
	entries := []PlaylistEntry{{FileName: "Track_&_Quote.mp3", Title: "Track & \"Quote\""}}

	content := creator.CreatePlaylist("Album <Special>", entries)

	if !strings.Contains(content, "Track_&amp;_Quote.mp3") {
		t.Error("WPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("WPL should escape < and >")
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		input string
		want  PlaylistFormat
		ext   string
	}{
		{"m3u", FormatM3U, "m3u"},
		{"PLS", FormatPLS, "pls"},
		{"wpl", FormatWPL, "wpl"},
		{"zpl", FormatZPL, "zpl"},
		{"unknown", FormatM3U, "m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParsePlaylistFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParsePlaylistFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Extension() != tt.ext {
				t.Errorf("Extension() = %q, want %q", got.Extension(), tt.ext)
			}
		})
	}
}
