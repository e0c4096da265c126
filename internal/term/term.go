// Package term provides color state and terminal detection.
//
// Colors are package-level values because multiple packages need them for
// output formatting. [Configure] sets the global enablement once during
// startup; when colors are disabled every palette entry prints plain text.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	xterm "golang.org/x/term"

	"github.com/backmassage/tierrename/internal/config"
)

// Palette used for log levels.
var (
	Red    = color.New(color.FgHiRed, color.Bold)
	Yellow = color.New(color.FgHiYellow, color.Bold)
	Cyan   = color.New(color.FgHiCyan, color.Bold)
)

// Configure resolves the color mode and sets the global color switch. Call
// once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
