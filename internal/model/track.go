package model

import (
	"fmt"
	"strconv"
	"strings"

	ioutils "github.com/handiism/discography-manager/internal/io"
)

// Track represents a single song within an album.
//
// Length is kept exactly as written in the source ("5:42", "about 6 min",
// ...). Use Seconds for a best-effort numeric reading.
type Track struct {
	// Title is the song title.
	Title string

	// Writer is the songwriter credit.
	Writer string

	// Length is the free-form song length.
	Length string

	// Lyrics holds the seed lyrics plus every continuation line,
	// each continuation preceded by a newline.
	Lyrics string
}

// AppendLyrics adds a continuation line to the track's lyrics.
func (t *Track) AppendLyrics(line string) {
	t.Lyrics += "\n" + line
}

// Seconds parses Length as "s", "m:ss" or "h:mm:ss".
//
// ok is false when Length does not follow one of those forms.
func (t *Track) Seconds() (secs int, ok bool) {
	length := strings.TrimSpace(t.Length)
	if length == "" {
		return 0, false
	}

	parts := strings.Split(length, ":")
	if len(parts) > 3 {
		return 0, false
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		// Every component after the first is a base-60 digit.
		if i > 0 && n >= 60 {
			return 0, false
		}
		secs = secs*60 + n
	}

	return secs, true
}

// TrackConfig holds track file naming settings.
//
// The FileNameFormat supports placeholders that are replaced with actual values:
//   - {tracknum} - Track position in the album (2 digits, zero-padded)
//   - {title} - Track title
//   - {writer} - Songwriter credit
//   - {album} - Album name
//
// Example:
//
//	cfg := &TrackConfig{
//	    FileNameFormat: "{tracknum} {title}.mp3",
//	}
//	// Results in filenames like "05 Comfortably Numb.mp3"
type TrackConfig struct {
	// FileNameFormat is the template for track filenames.
	// Must include the file extension (typically ".mp3").
	FileNameFormat string
}

// FileName computes the file name of the track from the config template.
//
// number is the 1-indexed position of the track in album.
// Invalid filename characters are replaced with underscores.
func (t *Track) FileName(album *Album, number int, cfg *TrackConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{album}", album.Name)
	fileName = strings.ReplaceAll(fileName, "{title}", t.Title)
	fileName = strings.ReplaceAll(fileName, "{writer}", t.Writer)
	fileName = strings.ReplaceAll(fileName, "{tracknum}", fmt.Sprintf("%02d", number))
	return ioutils.SanitizeFileName(fileName)
}
