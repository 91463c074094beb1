package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/handiism/discography-manager/internal/menu"
	"github.com/handiism/discography-manager/internal/tagging"
	"github.com/urfave/cli/v2"
)

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "menu",
			Usage:  "run the interactive menu (default)",
			Action: a.runMenu,
		},
		a.answerCommand("albums", "", menu.ListAlbums),
		a.answerCommand("songs", "album", menu.ListSongs),
		a.answerCommand("length", "song", menu.SongLength),
		a.answerCommand("lyrics", "song", menu.SongLyrics),
		a.answerCommand("album-of", "song", menu.AlbumBySong),
		a.answerCommand("search-title", "term", menu.SearchByTitle),
		a.answerCommand("search-lyrics", "term", menu.SearchByLyrics),
		{
			Name:      "tag",
			Usage:     "write ID3 tags to an album's MP3 files",
			ArgsUsage: "<album>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "dir",
					Usage:    "directory holding the album's MP3 files",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "cover",
					Usage: "image to embed as front cover",
				},
				&cli.BoolFlag{
					Name:  "playlist",
					Usage: "also write a playlist into the directory",
				},
			},
			Action: a.runTag,
		},
		{
			Name:      "playlist",
			Usage:     "write a playlist for an album",
			ArgsUsage: "<album>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "out",
					Usage:    "playlist file to write",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "format",
					Usage: "playlist format: m3u, pls, wpl or zpl",
				},
			},
			Action: a.runPlaylist,
		},
	}
}

func (a *app) runMenu(c *cli.Context) error {
	return menu.New(a.service, c.App.Reader, c.App.Writer).Run()
}

// answerCommand builds a one-shot command printing what the menu would show
// for opt. A not-found answer exits with status 1.
func (a *app) answerCommand(name, arg string, opt menu.Option) *cli.Command {
	cmd := &cli.Command{
		Name:  name,
		Usage: opt.Label(),
		Action: func(c *cli.Context) error {
			input := c.Args().First()
			if arg != "" && c.NArg() != 1 {
				return cli.Exit(fmt.Sprintf("usage: %s <%s>", name, arg), 2)
			}

			text, found := menu.Answer(a.service, opt, input)
			if !found {
				return cli.Exit(text, 1)
			}
			fmt.Fprintln(c.App.Writer, text)
			return nil
		},
	}
	if arg != "" {
		cmd.ArgsUsage = "<" + arg + ">"
	}
	return cmd
}

func (a *app) runTag(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: tag --dir <dir> <album>", 2)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := tagging.NewManager(a.settings, a.service, a.logEvent)
	result, err := manager.TagAlbum(ctx, tagging.Request{
		Album:     c.Args().First(),
		Dir:       c.String("dir"),
		CoverPath: c.String("cover"),
		Playlist:  c.Bool("playlist"),
	})
	if err != nil {
		if ctx.Err() != nil {
			return cli.Exit("Tagging cancelled.", 130)
		}
		return cli.Exit(err.Error(), 1)
	}

	tagged, total := manager.GetProgress()
	fmt.Fprintf(c.App.Writer, "Tagged %d of %d files (%d missing, %d failed)\n", tagged, total, result.Missing, result.Failed)
	if result.PlaylistPath != "" {
		fmt.Fprintf(c.App.Writer, "Playlist: %s\n", result.PlaylistPath)
	}
	if result.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (a *app) runPlaylist(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: playlist --out <file> <album>", 2)
	}

	album, err := a.service.FindAlbum(c.Args().First())
	if err != nil {
		return cli.Exit("Album not found.", 1)
	}

	if format := c.String("format"); format != "" {
		a.settings.PlaylistFormat = format
	}

	out, err := filepath.Abs(c.String("out"))
	if err != nil {
		return err
	}

	manager := tagging.NewManager(a.settings, a.service, a.logEvent)
	if err := manager.WritePlaylist(context.Background(), album, out); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Playlist: %s\n", out)
	return nil
}
