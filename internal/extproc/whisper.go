package extproc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Fallback search order when WHISPER_CPP_PATH is unset and whisper-cli is
// not on PATH.
func whisperSearchPaths(home string) []string {
	return []string{
		filepath.Join(home, "whisper.cpp", "build", "bin", "whisper-cli"),
		filepath.Join(home, "whisper.cpp", "main"), // older build name
		"/usr/local/bin/whisper-cli",
		"/opt/homebrew/bin/whisper-cli",
	}
}

func modelSearchPaths(home string) []string {
	models := filepath.Join(home, "whisper.cpp", "models")
	return []string{
		filepath.Join(models, "ggml-base.en.bin"),
		filepath.Join(models, "ggml-base.bin"),
		filepath.Join(models, "ggml-small.en.bin"),
		filepath.Join(models, "ggml-tiny.en.bin"),
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FindWhisperCLI resolves the whisper-cli binary: explicit override
// (config), WHISPER_CPP_PATH, PATH, then the conventional build locations.
// Empty result means not found.
func FindWhisperCLI(override string) string {
	if override != "" && isFile(override) {
		return override
	}
	if env := os.Getenv("WHISPER_CPP_PATH"); env != "" && isFile(env) {
		return env
	}
	if p, err := exec.LookPath("whisper-cli"); err == nil {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, p := range whisperSearchPaths(home) {
		if isFile(p) {
			return p
		}
	}
	return ""
}

// FindWhisperModel resolves a ggml model file: explicit override,
// WHISPER_CPP_MODEL, the conventional names under ~/whisper.cpp/models,
// then any ggml-*.bin in that directory.
func FindWhisperModel(override string) string {
	if override != "" && isFile(override) {
		return override
	}
	if env := os.Getenv("WHISPER_CPP_MODEL"); env != "" && isFile(env) {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, p := range modelSearchPaths(home) {
		if isFile(p) {
			return p
		}
	}
	matches, _ := filepath.Glob(filepath.Join(home, "whisper.cpp", "models", "ggml-*.bin"))
	for _, m := range matches {
		if isFile(m) {
			return m
		}
	}
	return ""
}

// WhisperTranscriber shells out to whisper.cpp.
type WhisperTranscriber struct {
	Binary  string
	Model   string
	Timeout time.Duration // defaults to 2 minutes
}

func (t *WhisperTranscriber) timeout() time.Duration {
	if t.Timeout > 0 {
		return t.Timeout
	}
	return 2 * time.Minute
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout())
	defer cancel()

	// -nt: no timestamps, -np: no progress chatter
	cmd := exec.CommandContext(ctx, t.Binary,
		"-m", t.Model,
		"-f", wavPath,
		"-nt",
		"-np",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("transcription timed out")
		}
		msg := collapseSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("transcription failed: %s", msg)
	}

	return collapseSpace(stdout.String()), nil
}

// CheckVoice reports whether the voice pipeline can run and, if not,
// which pieces are missing. ffmpegBin/cliOverride/modelOverride come from
// config and may be empty.
func CheckVoice(ffmpegBin, cliOverride, modelOverride string) (bool, string) {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	var missing []string
	if _, err := exec.LookPath(ffmpegBin); err != nil {
		missing = append(missing, "ffmpeg")
	}
	if FindWhisperCLI(cliOverride) == "" {
		missing = append(missing, "whisper-cli (build whisper.cpp or set WHISPER_CPP_PATH)")
	}
	if FindWhisperModel(modelOverride) == "" {
		missing = append(missing, "whisper model (download one or set WHISPER_CPP_MODEL)")
	}
	if len(missing) > 0 {
		return false, "Missing: " + strings.Join(missing, ", ")
	}
	return true, ""
}
