// Package api exposes conversions over HTTP.
//
// Routes:
//
//	POST /api/convert  {"uri", "isPlaylist", "targetMediaType"} -> Result
//	GET  /healthz      {"status": "ok", "ffmpeg": bool}
//
// Malformed bodies, URIs and media types are answered with 400. A failed
// batch transcode is answered with 500 and the Result for the items that
// were downloaded.
package api
