package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/discography-manager/internal/audio"
	"github.com/handiism/discography-manager/internal/catalog"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultSettings()
	if *settings != *want {
		t.Errorf("Load() = %+v, want %+v", *settings, *want)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"data_file": "/data/floyd.txt", "malformed_records": "fail"}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.DataFile != "/data/floyd.txt" {
		t.Errorf("DataFile = %q, want %q", settings.DataFile, "/data/floyd.txt")
	}
	if settings.ToLoadPolicy() != catalog.FailOnMalformed {
		t.Errorf("ToLoadPolicy() = %v, want fail", settings.ToLoadPolicy())
	}
	if settings.FileNameFormat != DefaultSettings().FileNameFormat {
		t.Errorf("FileNameFormat = %q, want default", settings.FileNameFormat)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error but got none")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.PlaylistFormat = "pls"
	settings.Verbose = true
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *settings {
		t.Errorf("Load() = %+v, want %+v", *loaded, *settings)
	}
}

func TestSettings_ApplyEnv(t *testing.T) {
	// Run from an empty directory so no stray .env is picked up.
	chdir(t, t.TempDir())

	t.Setenv(EnvDataFile, "/srv/discography.txt")
	t.Setenv(EnvStrict, "true")
	t.Setenv(EnvVerbose, "1")

	settings := DefaultSettings()
	if err := settings.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if settings.DataFile != "/srv/discography.txt" {
		t.Errorf("DataFile = %q, want %q", settings.DataFile, "/srv/discography.txt")
	}
	if settings.MalformedRecords != "fail" {
		t.Errorf("MalformedRecords = %q, want %q", settings.MalformedRecords, "fail")
	}
	if !settings.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestSettings_ApplyEnvDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DISCOGRAPHY_DATA_FILE=from-dotenv.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// godotenv never overrides a variable that is already set, even to "".
	t.Setenv(EnvDataFile, "")
	os.Unsetenv(EnvDataFile)

	settings := DefaultSettings()
	if err := settings.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if settings.DataFile != "from-dotenv.txt" {
		t.Errorf("DataFile = %q, want %q", settings.DataFile, "from-dotenv.txt")
	}
}

func TestSettings_ApplyEnvInvalidBool(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvStrict, "sometimes")

	if err := DefaultSettings().ApplyEnv(); err == nil {
		t.Error("expected error but got none")
	}
}

func TestSettings_ToPlaylistFormat(t *testing.T) {
	tests := []struct {
		format string
		want   audio.PlaylistFormat
	}{
		{"m3u", audio.FormatM3U},
		{"pls", audio.FormatPLS},
		{"wpl", audio.FormatWPL},
		{"zpl", audio.FormatZPL},
		{"unknown", audio.FormatM3U},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			s := DefaultSettings()
			s.PlaylistFormat = tt.format
			if got := s.ToPlaylistFormat(); got != tt.want {
				t.Errorf("ToPlaylistFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettings_ToTagConfig(t *testing.T) {
	s := DefaultSettings()
	s.LyricsLanguage = "deu"

	if got := s.ToTagConfig().LyricsLanguage; got != "deu" {
		t.Errorf("LyricsLanguage = %q, want %q", got, "deu")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
