package extproc_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"sheet-agent/internal/extproc"
)

type fakeRecorder struct {
	path string
	err  error
}

func (f fakeRecorder) Record(ctx context.Context, max time.Duration) (string, error) {
	return f.path, f.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(ctx context.Context, wav string) (string, error) {
	return f.text, f.err
}

func TestVoiceCapture(t *testing.T) {
	wav := filepath.Join(t.TempDir(), "rec.wav")
	if err := os.WriteFile(wav, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := &extproc.Voice{
		Recorder:    fakeRecorder{path: wav},
		Transcriber: fakeTranscriber{text: "add a row coffee five dollars"},
		MaxDuration: time.Second,
	}
	got, err := v.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got != "add a row coffee five dollars" {
		t.Errorf("text = %q", got)
	}
	if _, err := os.Stat(wav); !os.IsNotExist(err) {
		t.Error("recording not cleaned up")
	}
}

func TestVoiceCaptureEmptyTranscript(t *testing.T) {
	wav := filepath.Join(t.TempDir(), "rec.wav")
	os.WriteFile(wav, []byte("RIFF"), 0o644)

	v := &extproc.Voice{
		Recorder:    fakeRecorder{path: wav},
		Transcriber: fakeTranscriber{text: ""},
		MaxDuration: time.Second,
	}
	if _, err := v.Capture(context.Background()); err == nil {
		t.Error("empty transcript should error")
	}
}

func TestVoiceCaptureRecorderFailure(t *testing.T) {
	v := &extproc.Voice{
		Recorder:    fakeRecorder{err: errors.New("no device")},
		Transcriber: fakeTranscriber{text: "ignored"},
		MaxDuration: time.Second,
	}
	if _, err := v.Capture(context.Background()); err == nil {
		t.Error("recorder failure should propagate")
	}
}

func TestRecordLeavesStopUnread(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in")
	}

	// A recorder stand-in that writes its output file and exits at once
	// without touching stdin, like ffmpeg hitting the -t limit.
	dir := t.TempDir()
	bin := filepath.Join(dir, "ffmpeg")
	script := "#!/bin/sh\nfor a; do :; done\nprintf RIFF > \"$a\"\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	// Stop must be an *os.File so the fd goes straight to the child,
	// as it does with os.Stdin in the REPL.
	stop := filepath.Join(dir, "stdin")
	if err := os.WriteFile(stop, []byte("show\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(stop)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := &extproc.FFmpegRecorder{Binary: bin, Stop: f}
	wav, err := r.Record(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	defer os.Remove(wav)

	// The queued line is still there for the next prompt to read.
	buf := make([]byte, 16)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("reading queued input: %v", err)
	}
	if got := string(buf[:n]); got != "show\n" {
		t.Errorf("queued input = %q, want %q", got, "show\n")
	}
}

func TestFindWhisperCLIOverride(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "whisper-cli")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := extproc.FindWhisperCLI(bin); got != bin {
		t.Errorf("override ignored: %q", got)
	}
	// A missing override falls through rather than being returned.
	if got := extproc.FindWhisperCLI(filepath.Join(dir, "nope")); got == filepath.Join(dir, "nope") {
		t.Errorf("nonexistent override returned: %q", got)
	}
}

func TestFindWhisperCLIEnv(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "main")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WHISPER_CPP_PATH", bin)

	if got := extproc.FindWhisperCLI(""); got != bin {
		t.Errorf("env path ignored: %q", got)
	}
}

func TestFindWhisperModelEnv(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "ggml-base.en.bin")
	if err := os.WriteFile(model, []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WHISPER_CPP_MODEL", model)

	if got := extproc.FindWhisperModel(""); got != model {
		t.Errorf("env model ignored: %q", got)
	}
}
