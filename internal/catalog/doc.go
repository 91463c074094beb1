// Package catalog loads a discography text file into a model.Catalog.
//
// # Format
//
// The source is line oriented. Every line is trimmed before it is classified:
//
//	#<Album Name>
//	*<Title>::<Writer>::<Length>[::<Lyrics seed>]
//	<lyrics continuation line>
//
// A line starting with '#' declares an album (declaring it again empties it),
// a line starting with '*' declares a track in the current album, and any
// other line is appended to the lyrics of the most recent track. Lyrics lines
// seen before the album's first track are dropped.
//
// # Loading
//
//	loader := catalog.NewLoader(catalog.SkipMalformed, func(e model.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	c, err := loader.Load("Pink_Floyd_DB.txt")
//
// A missing source is not an error: Load reports it through the event
// callback and returns an empty catalog.
//
// # Malformed records
//
// A track record with fewer than three fields, or a track record before any
// album header, produces a *ParseError. With SkipMalformed the record is
// reported and dropped, and the lines that follow it are discarded until the
// next record. With FailOnMalformed the error is returned.
package catalog
