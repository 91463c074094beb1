// Package model defines the core data structures used throughout
// the discography manager.
//
// # Catalog
//
// Catalog maps album names to their ordered track lists. Albums keep the
// order in which their header first appeared in the source:
//
//	catalog := model.NewCatalog()
//	album := catalog.DeclareAlbum("The Wall")
//	album.AddTrack(&model.Track{Title: "Hey You", Writer: "Waters", Length: "4:40"})
//
// Declaring an album that already exists replaces it with an empty one in
// the same position.
//
// # Track
//
// Track holds a song's title, writer, free-form length and lyrics:
//
//	secs, ok := track.Seconds() // "4:40" -> 280, true
//
// # File naming
//
// TrackConfig controls how a track maps to a file name on disk:
//
//	cfg := &model.TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"}
//	name := track.FileName(album, 3, cfg) // "03 Hey You.mp3"
//
// Available placeholders: {album}, {title}, {writer}, {tracknum}
package model
