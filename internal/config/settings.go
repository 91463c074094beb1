package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/handiism/discography-manager/internal/audio"
	"github.com/handiism/discography-manager/internal/catalog"
	"github.com/handiism/discography-manager/internal/model"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvDataFile = "DISCOGRAPHY_DATA_FILE"
	EnvStrict   = "DISCOGRAPHY_STRICT"
	EnvVerbose  = "DISCOGRAPHY_VERBOSE"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	DataFile         string `json:"data_file"`
	MalformedRecords string `json:"malformed_records"` // skip, fail
	Verbose          bool   `json:"verbose"`

	// Tagging settings
	FileNameFormat         string `json:"file_name_format"`
	MaxConcurrentTagWrites int    `json:"max_concurrent_tag_writes"`
	LyricsLanguage         string `json:"lyrics_language"`
	CoverArtResize         bool   `json:"cover_art_resize"`
	CoverArtMaxSize        int    `json:"cover_art_max_size"`

	// Playlist settings
	PlaylistFormat string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataFile:         "Pink_Floyd_DB.txt",
		MalformedRecords: "skip",
		Verbose:          false,

		FileNameFormat:         "{tracknum} {title}.mp3",
		MaxConcurrentTagWrites: 4,
		LyricsLanguage:         "eng",
		CoverArtResize:         true,
		CoverArtMaxSize:        1000,

		PlaylistFormat: "m3u",
		M3UExtended:    true,
	}
}

// Load reads settings from a JSON file.
//
// Fields missing from the file keep their default values. A missing file
// yields DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv loads a .env file from the working directory, if there is one,
// and overrides settings from the environment.
//
// Variables already present in the environment take precedence over .env.
func (s *Settings) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	if v := os.Getenv(EnvDataFile); v != "" {
		s.DataFile = v
	}

	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvStrict, err)
		}
		if strict {
			s.MalformedRecords = "fail"
		} else {
			s.MalformedRecords = "skip"
		}
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvVerbose, err)
		}
		s.Verbose = verbose
	}

	return nil
}

// ToLoadPolicy converts MalformedRecords to a catalog.Policy.
func (s *Settings) ToLoadPolicy() catalog.Policy {
	if s.MalformedRecords == "fail" {
		return catalog.FailOnMalformed
	}
	return catalog.SkipMalformed
}

// ToTrackConfig converts settings to TrackConfig.
func (s *Settings) ToTrackConfig() *model.TrackConfig {
	return &model.TrackConfig{
		FileNameFormat: s.FileNameFormat,
	}
}

// ToPlaylistFormat converts PlaylistFormat to an audio.PlaylistFormat.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	return audio.ParsePlaylistFormat(s.PlaylistFormat)
}

// ToTagConfig converts settings to a TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	if s.LyricsLanguage != "" {
		cfg.LyricsLanguage = s.LyricsLanguage
	}
	return cfg
}
