package audio

import (
	"os"

	"github.com/bogem/id3v2"
)

// TagEditAction defines how to handle individual ID3 tags.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the video metadata.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Artist:     TagModify,      // channel name
//	    Album:      TagModify,      // playlist title, if any
//	    Title:      TagModify,      // video title
//	    Comments:   TagDoNotModify, // keep whatever ffmpeg wrote
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no string tags are modified.
	ModifyTags bool

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// Comments controls the COMM (Comments) frame, which holds the source URL.
	Comments TagEditAction
}

// DefaultTagConfig returns the default tag configuration: every frame is
// updated from the video metadata.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Artist:     TagModify,
		Album:      TagModify,
		Title:      TagModify,
		Comments:   TagModify,
	}
}

// TagInfo is the metadata written into a file.
type TagInfo struct {
	Title  string
	Artist string
	Album  string

	// Source is stored as a comment, typically the watch URL.
	Source string
}

// Tagger writes ID3 tags to MP3 files.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags("/music/Song.mp3", TagInfo{Title: "Song", Artist: "Channel"}, jpegBytes)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the MP3 file at path.
//
// String frames follow the TagConfig. If artwork is non-nil it replaces
// any existing front cover.
func (t *Tagger) SaveTags(path string, info TagInfo, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		tag = id3v2.NewEmptyTag()
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateStringTags(tag, info)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateStringTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, info TagInfo) {
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		if info.Artist != "" {
			tag.SetArtist(info.Artist)
		}
	}

	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		if info.Album != "" {
			tag.SetAlbum(info.Album)
		}
	}

	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(info.Title)
	}

	switch t.config.Comments {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Comments"))
	case TagModify:
		if info.Source != "" {
			tag.DeleteFrames(tag.CommonID("Comments"))
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: "source",
				Text:        info.Source,
			})
		}
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
