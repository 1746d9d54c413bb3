package extproc

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FFmpegRecorder records 16 kHz mono wav via ffmpeg, the format
// whisper.cpp expects. Stop is wired to ffmpeg's stdin so its
// interactive "q" command ends the recording before the time limit,
// and nothing blocks on the reader once ffmpeg exits.
type FFmpegRecorder struct {
	Binary string    // defaults to "ffmpeg"
	Stop   io.Reader // typing "q" here terminates the recording early
	Status io.Writer // progress messages, may be nil
}

func (r *FFmpegRecorder) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "ffmpeg"
}

// captureArgs returns the platform capture device flags.
func captureArgs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"-f", "avfoundation", "-i", ":0"}
	case "windows":
		return []string{"-f", "dshow", "-i", "audio=default"}
	default:
		return []string{"-f", "alsa", "-i", "default"}
	}
}

func (r *FFmpegRecorder) Record(ctx context.Context, maxDuration time.Duration) (string, error) {
	if _, err := exec.LookPath(r.binary()); err != nil {
		return "", fmt.Errorf("audio recording unavailable: %w", err)
	}

	out := filepath.Join(os.TempDir(), "rec_"+uuid.NewString()+".wav")

	args := captureArgs()
	args = append(args,
		"-t", strconv.Itoa(int(maxDuration.Seconds())),
		"-ar", "16000",
		"-ac", "1",
		"-y",
		"-loglevel", "error",
		out,
	)

	cmd := exec.CommandContext(ctx, r.binary(), args...)
	// ffmpeg reads commands from stdin while encoding; "q" quits. Handing
	// it the reader directly means no goroutine of ours is left blocked
	// on it after the -t limit expires.
	cmd.Stdin = r.Stop
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start recorder: %w", err)
	}

	if r.Status != nil {
		fmt.Fprintf(r.Status, "Recording... (press q then Enter to stop, max %ds)\n", int(maxDuration.Seconds()))
	}

	err := cmd.Wait()
	info, statErr := os.Stat(out)
	if statErr != nil || info.Size() == 0 {
		os.Remove(out)
		if err != nil {
			return "", fmt.Errorf("recording failed: %w", err)
		}
		return "", fmt.Errorf("recording produced no audio")
	}
	// ffmpeg exits non-zero when interrupted; a non-empty file wins.
	return out, nil
}
