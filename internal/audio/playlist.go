package audio

import (
	"fmt"
	"strings"

	"github.com/handiism/discography-manager/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParsePlaylistFormat maps a settings name (m3u, pls, wpl, zpl) to a
// PlaylistFormat. Unknown names map to FormatM3U.
func ParsePlaylistFormat(name string) PlaylistFormat {
	switch strings.ToLower(name) {
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

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// PlaylistCreator generates playlist files for catalog albums.
//
// Entries are file names computed with the TrackConfig, relative to the
// directory holding the album's files. Durations come from Track.Seconds;
// tracks whose length cannot be read are written with a duration of -1.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true, &model.TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"})
//	content := creator.CreatePlaylist(album)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:413,Waters - Time
//	// 04 Time.mp3
type PlaylistCreator struct {
	format      PlaylistFormat
	extended    bool // For M3U: include EXTINF lines with duration/title
	trackConfig *model.TrackConfig
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects FormatM3U.
func NewPlaylistCreator(format PlaylistFormat, extended bool, trackConfig *model.TrackConfig) *PlaylistCreator {
	return &PlaylistCreator{
		format:      format,
		extended:    extended,
		trackConfig: trackConfig,
	}
}

// Format returns the format the creator writes.
func (p *PlaylistCreator) Format() PlaylistFormat {
	return p.format
}

// CreatePlaylist generates playlist content for an album.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(album)
	case FormatWPL:
		return p.createWPL(album)
	case FormatZPL:
		return p.createZPL(album)
	default:
		return p.createM3U(album)
	}
}

// entry is one playlist line.
type entry struct {
	file     string
	display  string
	title    string
	writer   string
	duration int
}

func (p *PlaylistCreator) entries(album *model.Album) []entry {
	entries := make([]entry, len(album.Tracks))
	for i, track := range album.Tracks {
		secs, ok := track.Seconds()
		if !ok {
			secs = -1
		}

		display := track.Title
		if track.Writer != "" {
			display = track.Writer + " - " + track.Title
		}

		entries[i] = entry{
			file:     track.FileName(album, i+1, p.trackConfig),
			display:  display,
			title:    track.Title,
			writer:   track.Writer,
			duration: secs,
		}
	}
	return entries
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:413,Mason - Time
//	04 Time.mp3
func (p *PlaylistCreator) createM3U(album *model.Album) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
		sb.WriteString(fmt.Sprintf("#PLAYLIST:%s\n", album.Name))
	}

	for _, e := range p.entries(album) {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", e.duration, e.display))
		}
		sb.WriteString(e.file + "\n")
	}

	return sb.String()
}

// createPLS generates an INI-style PLS playlist.
func (p *PlaylistCreator) createPLS(album *model.Album) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	entries := p.entries(album)
	for i, e := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, e.file))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, e.display))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, e.duration))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (p *PlaylistCreator) createWPL(album *model.Album) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(album.Name)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, e := range p.entries(album) {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(e.file)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist. Durations are in
// milliseconds and omitted when unknown.
func (p *PlaylistCreator) createZPL(album *model.Album) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(album.Name)))
	sb.WriteString("    <meta name=\"Generator\" content=\"DiscographyManager\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(album.Tracks)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, e := range p.entries(album) {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\"",
			escapeXML(e.file),
			escapeXML(album.Name),
			escapeXML(e.title),
			escapeXML(e.writer)))
		if e.duration >= 0 {
			sb.WriteString(fmt.Sprintf(" duration=\"%d\"", e.duration*1000))
		}
		sb.WriteString("/>\n")
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
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
