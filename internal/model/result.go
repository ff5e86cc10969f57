package model

import "fmt"

// UnableToDownloadMessage is reported when a request converted nothing.
const UnableToDownloadMessage = "Unable to download file(s) for specified link."

// Result is the outcome of a conversion request.
type Result struct {
	Succeeded      bool   `json:"succeeded"`
	ConvertedCount int    `json:"convertedCount"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}

// BuildResult turns the number of converted items into a Result.
func BuildResult(converted int) Result {
	if converted > 0 {
		return Result{
			Succeeded:      true,
			ConvertedCount: converted,
			Message:        fmt.Sprintf("Converted %d files successfully.", converted),
		}
	}
	return Result{
		Succeeded: false,
		Error:     UnableToDownloadMessage,
	}
}

// FailedResult reports a batch whose items were downloaded but could not
// be converted. ConvertedCount keeps the number of downloaded items.
func FailedResult(downloaded int, err error) Result {
	return Result{
		Succeeded:      false,
		ConvertedCount: downloaded,
		Error:          fmt.Sprintf("Unable to convert downloaded file(s): %v", err),
	}
}
