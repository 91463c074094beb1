package catalog

import (
	"fmt"
	"strings"

	"github.com/handiism/discography-manager/internal/model"
)

const (
	albumMarker    = "#"
	trackMarker    = "*"
	fieldDelimiter = "::"

	// title, writer, length and the optional lyrics seed
	maxTrackFields = 4
	minTrackFields = 3
)

// state is the position of the parser relative to the records seen so far.
type state int

const (
	stateNoAlbum state = iota
	stateAlbum         // album declared, no open track
	stateTrack         // continuation lines go to the open track
)

// cursor points at the album and track that continuation lines belong to.
type cursor struct {
	state state
	album *model.Album
	track int
}

// parser turns source lines into a catalog, one line at a time.
type parser struct {
	catalog *model.Catalog
	cur     cursor
}

func newParser() *parser {
	return &parser{catalog: model.NewCatalog()}
}

// feed classifies one raw source line. lineNo is only used for errors.
func (p *parser) feed(lineNo int, raw string) error {
	line := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(line, albumMarker):
		album := p.catalog.DeclareAlbum(line[len(albumMarker):])
		p.cur = cursor{state: stateAlbum, album: album}

	case strings.HasPrefix(line, trackMarker):
		return p.addTrack(lineNo, line)

	case p.cur.state == stateTrack:
		p.cur.album.Tracks[p.cur.track].AppendLyrics(line)
	}

	return nil
}

func (p *parser) addTrack(lineNo int, line string) error {
	if p.cur.state == stateNoAlbum {
		return &ParseError{Line: lineNo, Text: line, Reason: "track record before any album header"}
	}

	fields := strings.SplitN(line[len(trackMarker):], fieldDelimiter, maxTrackFields)
	if len(fields) < minTrackFields {
		// Close the open track so the record's lyrics are not attached
		// to the previous song when the caller skips this line.
		p.cur.state = stateAlbum
		return &ParseError{
			Line:   lineNo,
			Text:   line,
			Reason: fmt.Sprintf("%s: want at least %d fields, got %d", ErrMalformedRecord, minTrackFields, len(fields)),
		}
	}

	track := &model.Track{
		Title:  fields[0],
		Writer: fields[1],
		Length: fields[2],
	}
	if len(fields) == maxTrackFields {
		track.Lyrics = fields[3]
	}

	p.cur.track = p.cur.album.AddTrack(track)
	p.cur.state = stateTrack
	return nil
}
