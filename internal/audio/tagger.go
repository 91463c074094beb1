package audio

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"
	"github.com/handiism/discography-manager/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the catalog.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags:  true,
//	    TrackTitle:  TagModify,
//	    Album:       TagModify,
//	    Composer:    TagModify,      // writer credit from the catalog
//	    Lyrics:      TagModify,
//	    TrackNumber: TagDoNotModify, // keep numbering from the rip
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are modified.
	ModifyTags bool

	// TrackTitle controls the TIT2 (Title) frame.
	TrackTitle TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Composer controls the TCOM (Composer) frame.
	Composer TagEditAction

	// TrackNumber controls the TRCK (Track number) frame.
	TrackNumber TagEditAction

	// Length controls the TLEN (Length, in milliseconds) frame.
	// Tracks whose length cannot be parsed leave the frame untouched.
	Length TagEditAction

	// Lyrics controls the USLT (Unsynchronised lyrics) frame.
	Lyrics TagEditAction

	// LyricsLanguage is the ISO 639-2 code written in the USLT frame.
	LyricsLanguage string
}

// DefaultTagConfig returns the default tag configuration, which writes
// every supported frame.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:     true,
		TrackTitle:     TagModify,
		Album:          TagModify,
		Composer:       TagModify,
		TrackNumber:    TagModify,
		Length:         TagModify,
		Lyrics:         TagModify,
		LyricsLanguage: "eng",
	}
}

// Tagger writes catalog data to the ID3 tags of MP3 files.
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

// SaveTags writes the track's catalog entry into the MP3 file at path.
//
// number is the 1-indexed position of the track in album. artwork, when not
// nil, must be JPEG bytes and replaces any attached front cover.
func (t *Tagger) SaveTags(path string, album *model.Album, number int, track *model.Track, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tags of %s: %w", path, err)
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateTextFrames(tag, album, number, track)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags of %s: %w", path, err)
	}
	return nil
}

// updateTextFrames updates text-based ID3 frames based on configuration.
func (t *Tagger) updateTextFrames(tag *id3v2.Tag, album *model.Album, number int, track *model.Track) {
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	switch t.config.TrackTitle {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(track.Title)
	}

	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(album.Name)
	}

	switch t.config.Composer {
	case TagEmpty:
		tag.DeleteFrames("TCOM")
	case TagModify:
		tag.AddTextFrame("TCOM", id3v2.EncodingUTF8, track.Writer)
	}

	switch t.config.TrackNumber {
	case TagEmpty:
		tag.DeleteFrames("TRCK")
	case TagModify:
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d/%d", number, len(album.Tracks)))
	}

	switch t.config.Length {
	case TagEmpty:
		tag.DeleteFrames("TLEN")
	case TagModify:
		if secs, ok := track.Seconds(); ok {
			tag.AddTextFrame("TLEN", id3v2.EncodingUTF8, strconv.Itoa(secs*1000))
		}
	}

	lyricsID := tag.CommonID("Unsynchronised lyrics/text transcription")
	switch t.config.Lyrics {
	case TagEmpty:
		tag.DeleteFrames(lyricsID)
	case TagModify:
		tag.DeleteFrames(lyricsID)
		if track.Lyrics != "" {
			tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
				Encoding:          id3v2.EncodingUTF8,
				Language:          t.config.LyricsLanguage,
				ContentDescriptor: "",
				Lyrics:            track.Lyrics,
			})
		}
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
