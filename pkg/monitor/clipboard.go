package monitor

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/marcus/lightbox/internal/gallery"
)

// copyToClipboard copies text to the system clipboard. Replaced in tests.
var copyToClipboard = systemClipboard

// systemClipboard uses pbcopy on macOS, xclip or xsel on Linux, clip.exe on
// Windows.
func systemClipboard(text string) error {
	cmd, err := clipboardCommand(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := stdin.Write([]byte(text)); err != nil {
		return err
	}

	if err := stdin.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}

// clipboardCommand picks the clipboard tool for goos.
func clipboardCommand(goos string, lookPath func(string) (string, error)) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := lookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := lookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, fmt.Errorf("no clipboard tool found (install xclip or xsel)")
	case "windows":
		return exec.Command("clip.exe"), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// formatTileAsMarkdown formats a tile as a markdown image reference.
func formatTileAsMarkdown(t gallery.Tile) string {
	return fmt.Sprintf("![%s](%s)", t.Alt, t.Source)
}
