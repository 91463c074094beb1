// Package menu implements the numbered discography menu.
//
// The same options back the line-oriented console loop (Menu) and the
// full-screen TUI: each option knows its label, the prompt it needs and how
// to render its answer from a query.Service.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/discography-manager/internal/model"
	"github.com/handiism/discography-manager/internal/query"
)

// Title is printed above the menu.
const Title = "Pink Floyd Discography Manager"

// Option is a menu entry, numbered as shown to the user.
type Option int

const (
	ListAlbums Option = iota + 1
	ListSongs
	SongLength
	SongLyrics
	AlbumBySong
	SearchByTitle
	SearchByLyrics
	Exit
)

// Options lists every option in menu order.
var Options = []Option{
	ListAlbums,
	ListSongs,
	SongLength,
	SongLyrics,
	AlbumBySong,
	SearchByTitle,
	SearchByLyrics,
	Exit,
}

// ErrInvalidChoice is returned by ParseOption for input that is not an option number.
var ErrInvalidChoice = errors.New("invalid choice")

// ParseOption converts user input such as "3" into an Option.
func ParseOption(input string) (Option, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(ListAlbums) || n > int(Exit) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, input)
	}
	return Option(n), nil
}

// Label returns the text shown for the option.
func (o Option) Label() string {
	switch o {
	case ListAlbums:
		return "List Albums"
	case ListSongs:
		return "List Songs in Album"
	case SongLength:
		return "Get Song Length"
	case SongLyrics:
		return "Get Song Lyrics"
	case AlbumBySong:
		return "Find Album by Song"
	case SearchByTitle:
		return "Search Song by Name"
	case SearchByLyrics:
		return "Search Song by Lyrics"
	case Exit:
		return "Exit"
	default:
		return ""
	}
}

// Prompt returns the question asked before running the option, or "" if
// the option takes no input.
func (o Option) Prompt() string {
	switch o {
	case ListSongs:
		return "Enter album name: "
	case SongLength, SongLyrics, AlbumBySong:
		return "Enter song name: "
	case SearchByTitle, SearchByLyrics:
		return "Enter search term: "
	default:
		return ""
	}
}

// Answer runs the option against svc and renders the result as it is shown
// to the user. input is trimmed first. found is false when the album or
// song does not exist; searches always report found.
func Answer(svc *query.Service, o Option, input string) (text string, found bool) {
	input = strings.TrimSpace(input)

	var sb strings.Builder
	switch o {
	case ListAlbums:
		sb.WriteString("Albums:")
		for _, name := range svc.ListAlbums() {
			sb.WriteString("\n- " + name)
		}

	case ListSongs:
		album, err := svc.FindAlbum(input)
		if err != nil {
			return "Album not found.", false
		}
		sb.WriteString(fmt.Sprintf("Songs in '%s':", album.Name))
		for _, track := range album.Tracks {
			sb.WriteString("\n- " + track.Title)
		}

	case SongLength:
		_, track, err := svc.FindSong(input)
		if err != nil {
			return "Song not found.", false
		}
		sb.WriteString(fmt.Sprintf("Length of '%s': %s", track.Title, track.Length))

	case SongLyrics:
		_, track, err := svc.FindSong(input)
		if err != nil {
			return "Song not found.", false
		}
		sb.WriteString(fmt.Sprintf("Lyrics of '%s':\n%s", track.Title, track.Lyrics))

	case AlbumBySong:
		album, track, err := svc.FindSong(input)
		if err != nil {
			return "Song not found.", false
		}
		sb.WriteString(fmt.Sprintf("The song '%s' is in the album '%s'.", track.Title, album.Name))

	case SearchByTitle:
		sb.WriteString("Matching songs:")
		writeMatches(&sb, svc.SearchByTitle(input))

	case SearchByLyrics:
		sb.WriteString("Songs containing the term:")
		writeMatches(&sb, svc.SearchByLyrics(input))

	case Exit:
		sb.WriteString("Exiting the program.")
	}

	return sb.String(), true
}

func writeMatches(sb *strings.Builder, matches []model.Match) {
	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("\n- %s (Album: %s)", m.Title, m.Album))
	}
}
