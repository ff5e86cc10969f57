package media

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/handiism/youtube-converter/internal/model"
)

// recordingRunner writes the last argument (the output path) and records calls.
type recordingRunner struct {
	calls [][]string
	fail  map[string]bool
}

func (r *recordingRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	out := args[len(args)-1]
	if r.fail[filepath.Base(out)] {
		return []byte("conversion failed\n"), errors.New("exit status 1")
	}
	return nil, os.WriteFile(out, []byte("converted"), 0644)
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestMuxArgs(t *testing.T) {
	got := MuxArgs("out.mp4", "v.part", "a.part")
	want := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", "v.part", "-i", "a.part", "-c", "copy", "out.mp4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MuxArgs() = %v, want %v", got, want)
	}
}

func TestTranscodeArgs(t *testing.T) {
	tests := []struct {
		target model.MediaType
		codec  string
	}{
		{model.MP3, "libmp3lame"},
		{model.WAV, "pcm_s16le"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			args := TranscodeArgs("in.mp4", "in."+string(tt.target), tt.target)
			joined := strings.Join(args, " ")
			if !strings.Contains(joined, "-i in.mp4") {
				t.Errorf("args missing input: %v", args)
			}
			if !strings.Contains(joined, tt.codec) {
				t.Errorf("args missing codec %s: %v", tt.codec, args)
			}
			if args[len(args)-1] != "in."+string(tt.target) {
				t.Errorf("output should be last argument: %v", args)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	if got := ReplaceExt("/music/Song.mp4", model.WAV); got != "/music/Song.wav" {
		t.Errorf("ReplaceExt() = %q", got)
	}
}

func TestFFmpeg_ConvertDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "b.mp4"))
	touch(t, filepath.Join(dir, "notes.txt"))

	runner := &recordingRunner{}
	ff := NewFFmpeg("/usr/bin/ffmpeg").WithRunner(runner.run)

	if err := ff.ConvertDirectory(context.Background(), dir, model.MP3); err != nil {
		t.Fatalf("ConvertDirectory() error: %v", err)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("got %d ffmpeg calls, want 2", len(runner.calls))
	}
	if runner.calls[0][0] != "/usr/bin/ffmpeg" {
		t.Errorf("executable = %q", runner.calls[0][0])
	}
	for _, name := range []string{"a.mp3", "b.mp3"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestFFmpeg_ConvertDirectoryJoinsFailures(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "b.mp4"))

	runner := &recordingRunner{fail: map[string]bool{"a.wav": true}}
	ff := NewFFmpeg("").WithRunner(runner.run)

	err := ff.ConvertDirectory(context.Background(), dir, model.WAV)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "conversion failed") {
		t.Errorf("error should carry ffmpeg output: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Errorf("every file should be attempted, got %d calls", len(runner.calls))
	}
	if _, err := os.Stat(filepath.Join(dir, "b.wav")); err != nil {
		t.Errorf("b.wav should still be converted: %v", err)
	}
}

func TestFFmpeg_NotFound(t *testing.T) {
	ff := NewFFmpeg("").WithRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	})

	err := ff.Mux(context.Background(), "out.mp4", "a", "b")
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("Mux() error = %v, want ErrFFmpegNotFound", err)
	}
}

func TestFFmpeg_TranscodeRejectsUnknownExtension(t *testing.T) {
	ff := NewFFmpeg("").WithRunner((&recordingRunner{}).run)
	if err := ff.Transcode(context.Background(), "in.mp4", "out.flac"); !errors.Is(err, model.ErrUnsupportedMediaType) {
		t.Errorf("Transcode() error = %v, want ErrUnsupportedMediaType", err)
	}
}
