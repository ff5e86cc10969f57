package model

import "strings"

// fileNameReplacer maps characters that are unsafe in file names.
var fileNameReplacer = strings.NewReplacer(
	" ", "_",
	":", "",
	"\"", "",
	"(", "",
	")", "",
	"`", "",
	"'", "",
	"|", "_",
	"/", "_",
)

// Sanitize turns a video title into a file system safe base name.
//
// Spaces, pipes and forward slashes become underscores; colons, double
// quotes, parentheses, backticks and apostrophes are dropped. Sanitize is
// total and idempotent.
//
// Example:
//
//	Sanitize(`Artist - "Song" (Live)`) // "Artist_-_Song_Live"
func Sanitize(title string) string {
	return fileNameReplacer.Replace(title)
}

// FileName returns the sanitized title with the given extension appended.
func FileName(title string, ext MediaType) string {
	return Sanitize(title) + "." + ext.Extension()
}
