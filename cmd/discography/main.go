package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/handiism/discography-manager/internal/catalog"
	"github.com/handiism/discography-manager/internal/config"
	"github.com/handiism/discography-manager/internal/model"
	"github.com/handiism/discography-manager/internal/query"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// app carries the state shared by all commands once flags are parsed.
type app struct {
	settings *config.Settings
	service  *query.Service
	logger   *slog.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	state := &app{}

	a := cli.NewApp()
	a.Name = "discography"
	a.Usage = "Browse and search the Pink Floyd discography."
	a.Reader = in
	a.Writer = out
	a.ErrWriter = errOut
	a.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Value:   config.DefaultSettings().DataFile,
			Usage:   "discography data file",
			EnvVars: []string{config.EnvDataFile},
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a JSON settings file",
		},
		&cli.BoolFlag{
			Name:    "strict",
			Usage:   "abort loading on the first malformed record",
			EnvVars: []string{config.EnvStrict},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "show verbose output",
			EnvVars: []string{config.EnvVerbose},
		},
	}
	a.Before = state.setup
	a.Action = state.runMenu
	a.Commands = state.commands()

	return a
}

// setup resolves settings from file, environment and flags, then loads the
// catalog.
func (a *app) setup(c *cli.Context) error {
	settings := config.DefaultSettings()
	if path := c.String("config"); path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	if c.IsSet("data") {
		settings.DataFile = c.String("data")
	}
	if c.IsSet("strict") {
		settings.MalformedRecords = catalog.SkipMalformed.String()
		if c.Bool("strict") {
			settings.MalformedRecords = catalog.FailOnMalformed.String()
		}
	}
	if c.IsSet("verbose") {
		settings.Verbose = c.Bool("verbose")
	}

	level := slog.LevelInfo
	if settings.Verbose {
		level = slog.LevelDebug
	}
	a.settings = settings
	a.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	loader := catalog.NewLoader(settings.ToLoadPolicy(), a.logEvent)
	cat, err := loader.Load(settings.DataFile)
	if err != nil {
		return err
	}
	a.service = query.NewService(cat)

	return nil
}

// logEvent forwards progress events to the structured logger.
func (a *app) logEvent(event model.ProgressEvent) {
	switch event.Level {
	case model.LevelError:
		a.logger.Error(event.Message)
	case model.LevelWarning:
		a.logger.Warn(event.Message)
	case model.LevelVerbose:
		a.logger.Debug(event.Message)
	default:
		a.logger.Info(event.Message)
	}
}
