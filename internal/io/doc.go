// Package ioutils provides file system and image helpers for the
// discography manager.
//
// # File Operations
//
//	err := ioutils.EnsureDir("/music/Pink Floyd/Animals")
//	err = ioutils.WriteFile(ctx, "/music/animals.m3u", []byte(playlist))
//
// # Filename Sanitization
//
// Track titles often contain characters that are not valid in file names:
//
//	safe := ioutils.SanitizeFileName("Pigs (Three Different Ones)?") // "Pigs (Three Different Ones)_"
//
// # Cover Art
//
// ImageService prepares cover images before they are embedded in ID3 tags:
//
//	svc := ioutils.NewImageService()
//	jpeg, err := svc.LoadCover(ctx, "/music/Animals/cover.png", 500)
package ioutils
