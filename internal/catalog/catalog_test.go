package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/handiism/discography-manager/internal/model"
)

func parse(t *testing.T, policy Policy, src string) (*model.Catalog, []model.ProgressEvent) {
	t.Helper()

	var events []model.ProgressEvent
	loader := NewLoader(policy, func(e model.ProgressEvent) {
		events = append(events, e)
	})

	c, err := loader.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return c, events
}

func titles(album *model.Album) []string {
	var out []string
	for _, track := range album.Tracks {
		out = append(out, track.Title)
	}
	return out
}

func TestParse_LyricsContinuation(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#A\n*T::W::3:30::seed\nla\nla la\n")

	album, ok := c.Album("A")
	if !ok {
		t.Fatal("album A not found")
	}
	if len(album.Tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(album.Tracks))
	}

	track := album.Tracks[0]
	if want := "seed\nla\nla la"; track.Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", track.Lyrics, want)
	}
	if track.Title != "T" || track.Writer != "W" || track.Length != "3:30" {
		t.Errorf("track = %+v, want T/W/3:30", *track)
	}
}

func TestParse_EmptySeedGetsLeadingNewline(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#A\n*T::W::3:30\nfirst line\n")

	album, _ := c.Album("A")
	if want := "\nfirst line"; album.Tracks[0].Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}
}

func TestParse_Scenario(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#A\n*T1::W1::3:00\n*T2::W2::4:00")

	if got, want := c.Names(), []string{"A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	album, _ := c.Album("A")
	if got, want := titles(album), []string{"T1", "T2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
	if album.Tracks[1].Lyrics != "" {
		t.Errorf("T2 lyrics = %q, want empty", album.Tracks[1].Lyrics)
	}
}

func TestParse_WhitespaceIsTrimmed(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "   #The Wall  \r\n\t*Mother::Waters::5:32::Mother do you think\r\n   they'll drop the bomb?   \r\n")

	album, ok := c.Album("The Wall")
	if !ok {
		t.Fatalf("album not found, have %v", c.Names())
	}
	if want := "Mother do you think\nthey'll drop the bomb?"; album.Tracks[0].Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}
}

func TestParse_FieldsAreNotTrimmed(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#A\n*Time :: Mason ::6:53")

	album, _ := c.Album("A")
	track := album.Tracks[0]
	if track.Title != "Time " || track.Writer != " Mason " {
		t.Errorf("track = %q/%q, want %q/%q", track.Title, track.Writer, "Time ", " Mason ")
	}
}

func TestParse_SeedKeepsExtraDelimiters(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#A\n*T::W::1:00::one::two")

	album, _ := c.Album("A")
	if want := "one::two"; album.Tracks[0].Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}
}

func TestParse_RedeclaredAlbumResets(t *testing.T) {
	src := strings.Join([]string{
		"#A",
		"*Old::W::1:00",
		"#B",
		"*Other::W::2:00",
		"#A",
		"*New::W::3:00",
	}, "\n")
	c, _ := parse(t, SkipMalformed, src)

	if got, want := c.Names(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	album, _ := c.Album("A")
	if got, want := titles(album), []string{"New"}; !reflect.DeepEqual(got, want) {
		t.Errorf("titles(A) = %v, want %v", got, want)
	}
}

func TestParse_OrphanLyricsAreDropped(t *testing.T) {
	src := strings.Join([]string{
		"before any album",
		"#A",
		"before any track",
		"*T::W::1:00",
		"kept",
		"#B",
		"dropped too",
		"*U::W::2:00",
	}, "\n")
	c, _ := parse(t, SkipMalformed, src)

	a, _ := c.Album("A")
	if want := "\nkept"; a.Tracks[0].Lyrics != want {
		t.Errorf("A lyrics = %q, want %q", a.Tracks[0].Lyrics, want)
	}

	b, _ := c.Album("B")
	if b.Tracks[0].Lyrics != "" {
		t.Errorf("B lyrics = %q, want empty", b.Tracks[0].Lyrics)
	}
}

func TestParse_EmptyAlbumName(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#\n*T::W::1:00\nlyric")

	album, ok := c.Album("")
	if !ok {
		t.Fatalf("album \"\" not found, have %q", c.Names())
	}
	if want := "\nlyric"; album.Tracks[0].Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}
}

func TestParse_BlankLinesAreLyrics(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "#A\n*T::W::1:00::verse one\n\nverse two")

	album, _ := c.Album("A")
	if want := "verse one\n\nverse two"; album.Tracks[0].Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}
}

func TestParse_ByteOrderMark(t *testing.T) {
	c, _ := parse(t, SkipMalformed, "\ufeff#Animals\n*Dogs::Waters/Gilmour::17:04")

	if got, want := c.Names(), []string{"Animals"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}

func TestParse_SkipMalformed(t *testing.T) {
	src := strings.Join([]string{
		"#A",
		"*Good::W::1:00",
		"good lyrics",
		"*Broken::W",
		"broken lyrics",
		"*Next::W::2:00",
	}, "\n")
	c, events := parse(t, SkipMalformed, src)

	album, _ := c.Album("A")
	if got, want := titles(album), []string{"Good", "Next"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("titles = %v, want %v", got, want)
	}
	if want := "\ngood lyrics"; album.Tracks[0].Lyrics != want {
		t.Errorf("Good lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}

	if len(events) != 1 || events[0].Level != model.LevelWarning {
		t.Fatalf("events = %+v, want one warning", events)
	}
	if !strings.Contains(events[0].Message, "line 4") {
		t.Errorf("warning %q should name line 4", events[0].Message)
	}
}

func TestParse_FailOnMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"too few fields", "#A\n*T::W::1:00\n*Broken::W", 3},
		{"no delimiter", "#A\n*just a title", 2},
		{"track before album", "*T::W::1:00\n#A", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(FailOnMalformed, nil)
			c, err := loader.Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if c != nil {
				t.Error("Parse() should not return a partial catalog")
			}
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("errors.Is(%v, ErrMalformedRecord) = false", err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *ParseError", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %d, want %d", perr.Line, tt.line)
			}
		})
	}
}

func TestParse_TrackBeforeAlbumSkipped(t *testing.T) {
	c, events := parse(t, SkipMalformed, "*T::W::1:00\nlyrics\n#A\n*U::W::2:00")

	if c.TrackCount() != 1 {
		t.Errorf("TrackCount() = %d, want 1", c.TrackCount())
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var events []model.ProgressEvent
	loader := NewLoader(FailOnMalformed, func(e model.ProgressEvent) {
		events = append(events, e)
	})

	path := filepath.Join(t.TempDir(), "missing.txt")
	c, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if c == nil || c.Len() != 0 {
		t.Fatalf("Load() catalog = %v, want empty", c)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Level != model.LevelWarning || !strings.Contains(events[0].Message, "not found") {
		t.Errorf("event = %+v, want not-found warning", events[0])
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.txt")
	src := "#Wish You Were Here\n*Have a Cigar::Waters::5:24::Come in here, dear boy\nhave a cigar\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	var events []model.ProgressEvent
	c, err := NewLoader(SkipMalformed, func(e model.ProgressEvent) {
		events = append(events, e)
	}).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	album, ok := c.Album("Wish You Were Here")
	if !ok {
		t.Fatalf("album not found, have %v", c.Names())
	}
	if want := "Come in here, dear boy\nhave a cigar"; album.Tracks[0].Lyrics != want {
		t.Errorf("Lyrics = %q, want %q", album.Tracks[0].Lyrics, want)
	}

	if len(events) != 1 || events[0].Level != model.LevelVerbose {
		t.Errorf("events = %+v, want one verbose summary", events)
	}
}

func TestLoad_FailWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.txt")
	if err := os.WriteFile(path, []byte("#A\n*Broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(FailOnMalformed, nil).Load(path)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should mention %q", err, path)
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("errors.Is(%v, ErrMalformedRecord) = false", err)
	}
}

func TestPolicy_String(t *testing.T) {
	if got := SkipMalformed.String(); got != "skip" {
		t.Errorf("SkipMalformed.String() = %q, want %q", got, "skip")
	}
	if got := FailOnMalformed.String(); got != "fail" {
		t.Errorf("FailOnMalformed.String() = %q, want %q", got, "fail")
	}
}
