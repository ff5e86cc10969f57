package media

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/handiism/youtube-converter/internal/model"
)

// TranscodeBackend converts every raw container file in a directory to a
// target media type.
type TranscodeBackend interface {
	ConvertDirectory(ctx context.Context, dir string, target model.MediaType) error
}

// CleanupPolicy decides when original raw container files are deleted
// after a batch conversion.
type CleanupPolicy string

const (
	// CleanupAlways deletes originals even when the backend reported a
	// failure, on a best-effort basis.
	CleanupAlways CleanupPolicy = "always"

	// CleanupOnSuccess keeps originals when the backend failed.
	CleanupOnSuccess CleanupPolicy = "on_success"
)

// ParseCleanupPolicy validates a policy name. An empty string maps to
// CleanupAlways.
func ParseCleanupPolicy(s string) (CleanupPolicy, error) {
	switch CleanupPolicy(s) {
	case "", CleanupAlways:
		return CleanupAlways, nil
	case CleanupOnSuccess:
		return CleanupOnSuccess, nil
	}
	return "", fmt.Errorf("unknown cleanup policy %q", s)
}

// TranscodeError reports a failed batch conversion.
type TranscodeError struct {
	Dir    string
	Target model.MediaType
	Err    error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcoding %s to %s: %v", e.Dir, e.Target, e.Err)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}

// Transcoder runs a TranscodeBackend over a directory and removes the
// original raw container files according to its CleanupPolicy.
type Transcoder struct {
	backend TranscodeBackend
	policy  CleanupPolicy
}

// NewTranscoder creates a Transcoder.
func NewTranscoder(backend TranscodeBackend, policy CleanupPolicy) *Transcoder {
	if policy == "" {
		policy = CleanupAlways
	}
	return &Transcoder{backend: backend, policy: policy}
}

// Policy returns the configured cleanup policy.
func (t *Transcoder) Policy() CleanupPolicy {
	return t.policy
}

// ConvertAll converts every raw container file in dir to target. It is a
// no-op for the raw container itself.
//
// For other targets the originals are deleted afterwards. With
// CleanupAlways the deletion also runs when the backend failed; the
// backend failure is still returned as a *TranscodeError. A cancelled
// batch never deletes anything.
func (t *Transcoder) ConvertAll(ctx context.Context, dir string, target model.MediaType) error {
	if target == model.RawContainer {
		return nil
	}

	convErr := t.backend.ConvertDirectory(ctx, dir, target)
	aborted := ctx.Err() != nil || errors.Is(convErr, context.Canceled) || errors.Is(convErr, context.DeadlineExceeded)
	if !aborted && (convErr == nil || t.policy == CleanupAlways) {
		if err := RemoveRawFiles(dir); err != nil && convErr == nil {
			return &TranscodeError{Dir: dir, Target: target, Err: err}
		}
	}

	if convErr != nil {
		return &TranscodeError{Dir: dir, Target: target, Err: convErr}
	}
	return nil
}

// RemoveRawFiles deletes every raw container file directly inside dir.
func RemoveRawFiles(dir string) error {
	files, err := RawFiles(dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
