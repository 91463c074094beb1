// Package audio writes catalog data into audio files and playlists.
//
// # ID3 Tagging
//
// Use the Tagger to write a track's catalog entry into an MP3 file:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(path, album, 3, track, coverJPEG)
//
// The tagger supports:
//   - Track Title, Album Title
//   - Composer (the catalog's writer credit)
//   - Track Number, Length
//   - Lyrics (unsynchronised)
//   - Cover Art (embedded in MP3)
//
// # Playlist Generation
//
// Generate playlists for an album in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true, trackConfig)
//	content := creator.CreatePlaylist(album)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
