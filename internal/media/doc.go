// Package media wraps the ffmpeg command line tool.
//
// FFmpeg muxes downloaded elementary streams into a single container and
// transcodes raw containers into audio formats. Transcoder runs any
// TranscodeBackend over a whole output directory and then removes the
// original raw container files according to a CleanupPolicy:
//
//	ffmpeg := media.NewFFmpeg("")
//	transcoder := media.NewTranscoder(ffmpeg, media.CleanupAlways)
//	err := transcoder.ConvertAll(ctx, "/music", model.MP3)
package media
