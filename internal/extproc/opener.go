package extproc

import (
	"fmt"
	"os/exec"
	"runtime"
)

// SystemOpener launches the platform default viewer. Failures are
// reported to the caller, never fatal: the chart is already on disk.
type SystemOpener struct{}

func (SystemOpener) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	// Viewers often outlive the session; reap in the background.
	go cmd.Wait()
	return nil
}
