// Package query answers read-only questions about a loaded catalog.
//
// All matching is case-insensitive (Unicode case folding). Lookups scan
// albums in catalog order and tracks in album order; the first match wins.
package query

import (
	"errors"
	"strings"

	"github.com/handiism/discography-manager/internal/model"
	"golang.org/x/text/cases"
)

var (
	// ErrAlbumNotFound is returned when no album name matches the query.
	ErrAlbumNotFound = errors.New("album not found")

	// ErrSongNotFound is returned when no track title matches the query.
	ErrSongNotFound = errors.New("song not found")
)

// Service runs queries against a single catalog.
type Service struct {
	catalog *model.Catalog
}

// NewService creates a Service over c. The catalog must not be modified
// while the service is in use.
func NewService(c *model.Catalog) *Service {
	return &Service{catalog: c}
}

// Catalog returns the catalog the service reads from.
func (s *Service) Catalog() *model.Catalog {
	return s.catalog
}

// ListAlbums returns every album name in catalog order.
func (s *Service) ListAlbums() []string {
	return s.catalog.Names()
}

// FindAlbum returns the first album whose name equals name, ignoring case.
func (s *Service) FindAlbum(name string) (*model.Album, error) {
	want := fold(name)
	for _, album := range s.catalog.Albums() {
		if fold(album.Name) == want {
			return album, nil
		}
	}
	return nil, ErrAlbumNotFound
}

// ListSongs returns the track titles of the album matching name.
func (s *Service) ListSongs(name string) ([]string, error) {
	album, err := s.FindAlbum(name)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(album.Tracks))
	for i, track := range album.Tracks {
		titles[i] = track.Title
	}
	return titles, nil
}

// FindSong returns the first track whose title equals title, ignoring case,
// along with the album that owns it.
func (s *Service) FindSong(title string) (*model.Album, *model.Track, error) {
	want := fold(title)
	for _, album := range s.catalog.Albums() {
		for _, track := range album.Tracks {
			if fold(track.Title) == want {
				return album, track, nil
			}
		}
	}
	return nil, nil, ErrSongNotFound
}

// SongLength returns the length of the first track matching title.
func (s *Service) SongLength(title string) (string, error) {
	_, track, err := s.FindSong(title)
	if err != nil {
		return "", err
	}
	return track.Length, nil
}

// SongLyrics returns the lyrics of the first track matching title.
func (s *Service) SongLyrics(title string) (string, error) {
	_, track, err := s.FindSong(title)
	if err != nil {
		return "", err
	}
	return track.Lyrics, nil
}

// AlbumBySong returns the name of the album owning the first track matching title.
func (s *Service) AlbumBySong(title string) (string, error) {
	album, _, err := s.FindSong(title)
	if err != nil {
		return "", err
	}
	return album.Name, nil
}

// SearchByTitle returns every track whose title contains term.
// An empty term matches every track.
func (s *Service) SearchByTitle(term string) []model.Match {
	return s.search(term, func(t *model.Track) string { return t.Title })
}

// SearchByLyrics returns every track whose lyrics contain term.
func (s *Service) SearchByLyrics(term string) []model.Match {
	return s.search(term, func(t *model.Track) string { return t.Lyrics })
}

func (s *Service) search(term string, field func(*model.Track) string) []model.Match {
	want := fold(term)

	var matches []model.Match
	for _, album := range s.catalog.Albums() {
		for _, track := range album.Tracks {
			if strings.Contains(fold(field(track)), want) {
				matches = append(matches, model.Match{Title: track.Title, Album: album.Name})
			}
		}
	}
	return matches
}

// fold returns s in case-folded form for comparisons.
// A new Caser is created per call since Casers carry state.
func fold(s string) string {
	return cases.Fold().String(s)
}
