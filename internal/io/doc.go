// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Existence checks used to skip already converted items
//   - File writing and directory creation
//   - Image resizing and format conversion for cover art
//
// # File Operations
//
//	if ioutils.AnyExists(rawPath, targetPath) {
//	    // already converted
//	}
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Image Processing
//
// The ImageService turns thumbnails into cover art:
//
//	svc := ioutils.NewImageService()
//
//	// Crop to the centre square, fit within 500x500, encode as JPEG
//	cover, _ := svc.CoverArt(ctx, thumbnail, 500, true)
package ioutils
