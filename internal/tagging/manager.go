package tagging

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/discography-manager/internal/audio"
	"github.com/handiism/discography-manager/internal/config"
	ioutils "github.com/handiism/discography-manager/internal/io"
	"github.com/handiism/discography-manager/internal/model"
	"github.com/handiism/discography-manager/internal/query"
	"golang.org/x/sync/errgroup"
)

// Request describes one tagging run.
type Request struct {
	// Album is the album name, matched case-insensitively.
	Album string

	// Dir is the directory holding the album's MP3 files.
	Dir string

	// CoverPath is an optional JPEG/PNG image to embed as front cover.
	CoverPath string

	// Playlist, when true, writes a playlist for the album into Dir.
	Playlist bool
}

// Result summarises a tagging run.
type Result struct {
	Tagged       int
	Missing      int
	Failed       int
	PlaylistPath string
}

// Manager tags album files from catalog data.
type Manager struct {
	settings     *config.Settings
	service      *query.Service
	trackConfig  *model.TrackConfig
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	totalFiles  int32
	taggedFiles int32

	onProgress func(model.ProgressEvent)
}

// NewManager creates a new tagging Manager.
//
// onProgress may be nil. It is called from several goroutines at once.
func NewManager(settings *config.Settings, service *query.Service, onProgress func(model.ProgressEvent)) *Manager {
	trackCfg := settings.ToTrackConfig()

	return &Manager{
		settings:     settings,
		service:      service,
		trackConfig:  trackCfg,
		tagger:       audio.NewTagger(settings.ToTagConfig()),
		playlist:     audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended, trackCfg),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// GetProgress returns the number of files tagged so far and the number of
// files the current run expects to tag.
func (m *Manager) GetProgress() (tagged, total int32) {
	return atomic.LoadInt32(&m.taggedFiles), atomic.LoadInt32(&m.totalFiles)
}

// TagAlbum tags every file of the requested album found in req.Dir.
//
// It returns query.ErrAlbumNotFound if the album is not in the catalog, and
// an error if the cover art cannot be prepared or the context is cancelled.
// Per-file failures are reported through events and counted in the Result.
func (m *Manager) TagAlbum(ctx context.Context, req Request) (*Result, error) {
	album, err := m.service.FindAlbum(req.Album)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, req.Album)
	}

	var artwork []byte
	if req.CoverPath != "" {
		maxSize := 0
		if m.settings.CoverArtResize {
			maxSize = m.settings.CoverArtMaxSize
		}
		artwork, err = m.imageService.LoadCover(ctx, req.CoverPath, maxSize)
		if err != nil {
			return nil, err
		}
		m.progress(model.ProgressEvent{Message: fmt.Sprintf("Prepared cover art from %s", req.CoverPath), Level: model.LevelVerbose})
	}

	atomic.StoreInt32(&m.totalFiles, int32(len(album.Tracks)))
	atomic.StoreInt32(&m.taggedFiles, 0)

	limit := m.settings.MaxConcurrentTagWrites
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var missing, failed int32
	for i, track := range album.Tracks {
		track := track
		number := i + 1
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(req.Dir, track.FileName(album, number, m.trackConfig))
			if !ioutils.FileExists(path) {
				atomic.AddInt32(&missing, 1)
				m.progress(model.ProgressEvent{Message: fmt.Sprintf("Missing file for %s: %s", track.Title, filepath.Base(path)), Level: model.LevelWarning})
				return nil
			}

			if err := m.tagger.SaveTags(path, album, number, track, artwork); err != nil {
				atomic.AddInt32(&failed, 1)
				m.progress(model.ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", track.Title, err), Level: model.LevelError})
				return nil // Continue with other tracks
			}

			atomic.AddInt32(&m.taggedFiles, 1)
			m.progress(model.ProgressEvent{Message: fmt.Sprintf("Tagged: %s", filepath.Base(path)), Level: model.LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Tagged:  int(atomic.LoadInt32(&m.taggedFiles)),
		Missing: int(missing),
		Failed:  int(failed),
	}

	if req.Playlist {
		path := filepath.Join(req.Dir, ioutils.SanitizeFileName(album.Name)+m.playlist.Format().Extension())
		if err := m.WritePlaylist(ctx, album, path); err != nil {
			m.progress(model.ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: model.LevelWarning})
		} else {
			result.PlaylistPath = path
		}
	}

	if result.Tagged == len(album.Tracks) {
		m.progress(model.ProgressEvent{Message: fmt.Sprintf("Successfully tagged album: %s", album.Name), Level: model.LevelSuccess})
	} else {
		m.progress(model.ProgressEvent{Message: fmt.Sprintf("Finished %s, %d of %d tracks tagged", album.Name, result.Tagged, len(album.Tracks)), Level: model.LevelWarning})
	}

	return result, nil
}

// WritePlaylist writes the album's playlist to path.
func (m *Manager) WritePlaylist(ctx context.Context, album *model.Album, path string) error {
	content := m.playlist.CreatePlaylist(album)
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return err
	}
	m.progress(model.ProgressEvent{Message: fmt.Sprintf("Created playlist for %s", album.Name), Level: model.LevelSuccess})
	return nil
}

func (m *Manager) progress(event model.ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
