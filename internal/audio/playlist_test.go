package audio

import (
	"strings"
	"testing"

	"github.com/handiism/discography-manager/internal/model"
)

func createTestAlbum() *model.Album {
	album := &model.Album{Name: "The Dark Side of the Moon"}
	album.AddTrack(&model.Track{Title: "Time", Writer: "Mason", Length: "6:53"})
	album.AddTrack(&model.Track{Title: "Money", Writer: "Waters", Length: "unknown"})
	return album
}

var testTrackConfig = &model.TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"}

func TestPlaylistCreator_M3U(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U, false, testTrackConfig).CreatePlaylist(createTestAlbum())

	want := "01 Time.mp3\n02 Money.mp3\n"
	if content != want {
		t.Errorf("CreatePlaylist() = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U, true, testTrackConfig).CreatePlaylist(createTestAlbum())

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:413,Mason - Time\n01 Time.mp3\n") {
		t.Errorf("Extended M3U missing EXTINF for Time:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:-1,Waters - Money\n") {
		t.Errorf("unknown length should be written as -1:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false, testTrackConfig).CreatePlaylist(createTestAlbum())

	for _, want := range []string{"[playlist]\n", "File1=01 Time.mp3\n", "Length1=413\n", "NumberOfEntries=2\n", "Version=2\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS should contain %q:\n%s", want, content)
		}
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	content := NewPlaylistCreator(FormatWPL, false, testTrackConfig).CreatePlaylist(createTestAlbum())

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, `<media src="02 Money.mp3"/>`) {
		t.Errorf("WPL should contain media elements:\n%s", content)
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	content := NewPlaylistCreator(FormatZPL, false, testTrackConfig).CreatePlaylist(createTestAlbum())

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `duration="413000"`) {
		t.Errorf("ZPL should contain duration in ms:\n%s", content)
	}
	if strings.Count(content, "duration=") != 1 {
		t.Error("ZPL should omit unknown durations")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	album := &model.Album{Name: "Album <Special>"}
	album.AddTrack(&model.Track{Title: "Track & \"Quote\"", Writer: "A & B", Length: "1:00"})

	content := NewPlaylistCreator(FormatZPL, false, testTrackConfig).CreatePlaylist(album)

	if strings.Contains(content, "<Special>") {
		t.Error("ZPL should escape < and >")
	}
	if !strings.Contains(content, `trackArtist="A &amp; B"`) {
		t.Errorf("ZPL should escape & as &amp;:\n%s", content)
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		name string
		want PlaylistFormat
		ext  string
	}{
		{"m3u", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"wpl", FormatWPL, ".wpl"},
		{"zpl", FormatZPL, ".zpl"},
		{"xspf", FormatM3U, ".m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePlaylistFormat(tt.name)
			if got != tt.want {
				t.Errorf("ParsePlaylistFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.Extension() != tt.ext {
				t.Errorf("Extension() = %q, want %q", got.Extension(), tt.ext)
			}
		})
	}
}
