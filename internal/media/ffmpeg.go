package media

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/handiism/youtube-converter/internal/model"
)

// ErrFFmpegNotFound is returned when the ffmpeg executable cannot be located.
var ErrFFmpegNotFound = errors.New("ffmpeg executable not found")

// Codec arguments per target container.
var codecArgs = map[model.MediaType][]string{
	model.MP3: {"-vn", "-codec:a", "libmp3lame", "-q:a", "2"},
	model.WAV: {"-vn", "-codec:a", "pcm_s16le"},
}

// CommandRunner executes a command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// FFmpeg drives the ffmpeg command line tool. It muxes downloaded
// elementary streams and transcodes raw containers to audio formats.
type FFmpeg struct {
	Path string
	run  CommandRunner
}

// NewFFmpeg returns an FFmpeg using the executable at path, or "ffmpeg"
// from PATH if path is empty.
func NewFFmpeg(path string) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{Path: path, run: execRunner}
}

// WithRunner replaces the command runner. Used by tests.
func (f *FFmpeg) WithRunner(run CommandRunner) *FFmpeg {
	f.run = run
	return f
}

// Available reports whether the ffmpeg executable can be found.
func (f *FFmpeg) Available() bool {
	_, err := exec.LookPath(f.Path)
	return err == nil
}

// Mux stream-copies all inputs into output, overwriting it.
func (f *FFmpeg) Mux(ctx context.Context, output string, inputs ...string) error {
	if err := f.exec(ctx, MuxArgs(output, inputs...)); err != nil {
		return fmt.Errorf("muxing %s: %w", filepath.Base(output), err)
	}
	return nil
}

// Transcode converts a single file to the container implied by the
// extension of out.
func (f *FFmpeg) Transcode(ctx context.Context, in, out string) error {
	target, err := model.ParseMediaType(filepath.Ext(out))
	if err != nil {
		return err
	}
	if err := f.exec(ctx, TranscodeArgs(in, out, target)); err != nil {
		return fmt.Errorf("transcoding %s: %w", filepath.Base(in), err)
	}
	return nil
}

// ConvertDirectory transcodes every raw container file in dir to target,
// writing siblings with the target extension. Every file is attempted;
// failures are joined into the returned error.
func (f *FFmpeg) ConvertDirectory(ctx context.Context, dir string, target model.MediaType) error {
	files, err := RawFiles(dir)
	if err != nil {
		return err
	}

	var errs []error
	for _, in := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := f.Transcode(ctx, in, ReplaceExt(in, target)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *FFmpeg) exec(ctx context.Context, args []string) error {
	out, err := f.run(ctx, f.Path, args...)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.Path)
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("ffmpeg: %s", msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// MuxArgs builds the ffmpeg arguments for a stream-copy mux.
func MuxArgs(output string, inputs ...string) []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error"}
	for _, in := range inputs {
		args = append(args, "-i", in)
	}
	return append(args, "-c", "copy", output)
}

// TranscodeArgs builds the ffmpeg arguments for converting in to out.
func TranscodeArgs(in, out string, target model.MediaType) []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", in}
	args = append(args, codecArgs[target]...)
	return append(args, out)
}

// RawFiles lists the raw container files directly inside dir.
func RawFiles(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, "*."+model.RawContainer.Extension()))
}

// ReplaceExt swaps the extension of path for the one of target.
func ReplaceExt(path string, target model.MediaType) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + target.Extension()
}
