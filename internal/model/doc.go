// Package model defines the core data structures shared by the resolver,
// download and media packages.
//
// # Requests and Results
//
// A Request names a URI, whether it is a playlist, and the target MediaType.
// BuildResult turns the number of converted items into the Result handed
// back to the caller:
//
//	res := model.BuildResult(3)
//	fmt.Println(res.Message) // "Converted 3 files successfully."
//
// # Items and Streams
//
// Resolver backends describe a video as a Video holding ItemMetadata and a
// list of StreamDescriptor values. Playlists are an ordered list of
// ItemMetadata.
//
// # File Names
//
// Output files are named after the sanitized video title:
//
//	model.FileName("My Song (Live)", model.MP3) // "My_Song_Live.mp3"
package model
