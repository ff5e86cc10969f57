package audio

import (
	"fmt"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines carrying the title.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParsePlaylistFormat maps a configuration value to a PlaylistFormat.
// Unknown values fall back to M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	switch strings.ToLower(s) {
	case "pls":
		return FormatPLS
	case "wpl":
		return FormatWPL
	case "zpl":
		return FormatZPL
	default:
		return FormatM3U
	}
}

// Extension returns the file extension for the format, without the dot.
func (f PlaylistFormat) Extension() string {
	switch f {
	case FormatPLS:
		return "pls"
	case FormatWPL:
		return "wpl"
	case FormatZPL:
		return "zpl"
	default:
		return "m3u"
	}
}

// PlaylistEntry is one converted file listed in a playlist.
type PlaylistEntry struct {
	// FileName is relative to the playlist file.
	FileName string
	Title    string
	Author   string
}

// PlaylistCreator generates playlist files in various formats.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist("Road Trip", entries)
//	os.WriteFile("/music/Road_Trip.m3u", []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Author - Song Title
//	// Song_Title.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects the M3U format.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Format returns the playlist format the creator writes.
func (p *PlaylistCreator) Format() PlaylistFormat {
	return p.format
}

// CreatePlaylist generates playlist content for the given entries.
//
// File names are written as given, assuming the playlist file sits in the
// same directory as the converted files.
func (p *PlaylistCreator) CreatePlaylist(title string, entries []PlaylistEntry) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(entries)
	case FormatWPL:
		return p.createSMIL("<?wpl version=\"1.0\"?>", title, entries, false)
	case FormatZPL:
		return p.createSMIL("<?zpl version=\"2.0\"?>", title, entries, true)
	default:
		return p.createM3U(entries)
	}
}

// createM3U generates an M3U playlist. Durations are not known, so
// extended entries use -1.
func (p *PlaylistCreator) createM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, e := range entries {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", displayTitle(e)))
		}
		sb.WriteString(e.FileName + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
func (p *PlaylistCreator) createPLS(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, e := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, e.FileName))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, displayTitle(e)))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createSMIL generates the XML based WPL and ZPL formats. ZPL adds
// per-entry title and artist attributes.
func (p *PlaylistCreator) createSMIL(declaration, title string, entries []PlaylistEntry, detailed bool) string {
	var sb strings.Builder

	sb.WriteString(declaration + "\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	if detailed {
		sb.WriteString("    <meta name=\"Generator\" content=\"youtube-converter\"/>\n")
		sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(entries)))
	}
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(title)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, e := range entries {
		if detailed {
			sb.WriteString(fmt.Sprintf("      <media src=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\"/>\n",
				escapeXML(e.FileName), escapeXML(e.Title), escapeXML(e.Author)))
		} else {
			sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(e.FileName)))
		}
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

func displayTitle(e PlaylistEntry) string {
	if e.Author == "" {
		return e.Title
	}
	return e.Author + " - " + e.Title
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// escapeXML escapes special XML characters in a string.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
