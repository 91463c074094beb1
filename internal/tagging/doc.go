// Package tagging writes catalog metadata into a directory of MP3 files.
//
// # Manager
//
// The Manager coordinates tagging one album:
//
//  1. Resolve the album in the catalog (case-insensitive)
//  2. Compute each track's expected file name in the music directory
//  3. Prepare cover art (optional, resized and converted to JPEG)
//  4. Write ID3 tags to the files concurrently
//  5. Write a playlist for the album (optional)
//
// # Basic Usage
//
//	manager := tagging.NewManager(settings, svc, func(event model.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.TagAlbum(ctx, tagging.Request{
//	    Album: "animals",
//	    Dir:   "/music/Pink Floyd/Animals",
//	})
//
// # Concurrency
//
// Files are tagged in parallel, at most settings.MaxConcurrentTagWrites at a
// time. The catalog is only read.
//
// # Progress Tracking
//
// A missing file is reported as a warning, a failed write as an error.
// Neither stops the remaining files. GetProgress returns counters that may
// be polled while TagAlbum runs.
package tagging
