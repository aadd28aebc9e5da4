package clipboard

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Service copies text to the system clipboard, falling back to
// platform utilities when the native binding is unavailable (headless
// Linux without X selection support, WSL).
type Service struct {
	logger *slog.Logger
}

// NewService creates a new clipboard service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Write copies text to the system clipboard.
func (s *Service) Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		s.logger.Debug("copied to clipboard", "bytes", len(text))
		return nil
	} else {
		s.logger.Debug("native clipboard write failed, trying fallback", "error", err)
	}

	cmd := s.fallbackCommand()
	if cmd == nil {
		return fmt.Errorf("no clipboard tool available on %s (install xclip, xsel, or wl-clipboard)", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard command %s failed: %w", cmd.Path, err)
	}

	s.logger.Debug("copied to clipboard via fallback", "command", cmd.Path, "bytes", len(text))
	return nil
}

// fallbackCommand picks a platform clipboard utility, or nil when none
// is available.
func (s *Service) fallbackCommand() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("clip.exe")
	case "linux":
		if isWSL() {
			return exec.Command("clip.exe")
		}
		if commandExists("wl-copy") {
			return exec.Command("wl-copy")
		}
		if commandExists("xclip") {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		if commandExists("xsel") {
			return exec.Command("xsel", "--clipboard", "--input")
		}
	}
	return nil
}

// isWSL reports whether the process runs under Windows Subsystem for
// Linux, where clip.exe bridges to the Windows clipboard.
func isWSL() bool {
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	v := strings.ToLower(string(version))
	return strings.Contains(v, "microsoft") || strings.Contains(v, "wsl")
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
