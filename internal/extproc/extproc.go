// Package extproc wraps the external binaries the agent leans on: an
// audio recorder (ffmpeg), an offline transcriber (whisper.cpp) and the
// OS image viewer. The rest of the program depends only on the capability
// interfaces here, so tests substitute fakes and a missing binary
// degrades to "feature unavailable" instead of breaking the session.
package extproc

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Recorder captures microphone audio to a wav file and returns its path.
// Recording stops on Enter or after maxDuration.
type Recorder interface {
	Record(ctx context.Context, maxDuration time.Duration) (string, error)
}

// Transcriber turns a recorded wav file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

// Opener shows a file with the OS-appropriate viewer.
type Opener interface {
	Open(path string) error
}

// Voice bundles the record-then-transcribe workflow.
type Voice struct {
	Recorder    Recorder
	Transcriber Transcriber
	MaxDuration time.Duration
}

// Capture records and transcribes one utterance. The temporary recording
// is removed regardless of outcome.
func (v *Voice) Capture(ctx context.Context) (string, error) {
	wav, err := v.Recorder.Record(ctx, v.MaxDuration)
	if err != nil {
		return "", err
	}
	defer os.Remove(wav)

	text, err := v.Transcriber.Transcribe(ctx, wav)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("could not transcribe audio: no speech detected")
	}
	return text, nil
}

// collapseSpace squeezes all runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
