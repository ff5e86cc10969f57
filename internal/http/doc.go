// Package http provides the small HTTP client used for thumbnail
// downloads and YouTube Data API requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - JSON decoding of API responses
//
// # Basic Usage
//
//	client := http.NewClient(30 * time.Second)
//
//	// Fetch a thumbnail
//	jpeg, err := client.DownloadBytes(ctx, thumbnailURL)
//
//	// Decode JSON
//	var page apiPage
//	err = client.GetJSON(ctx, apiURL, &page)
package http
