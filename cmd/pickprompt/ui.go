package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	stderrTTY bool

	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	successStyle = lipgloss.NewStyle().Foreground(green)
	errorStyle   = lipgloss.NewStyle().Foreground(red)
	warningStyle = lipgloss.NewStyle().Foreground(yellow)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
)

func init() {
	stderrTTY = term.IsTerminal(int(os.Stderr.Fd()))
	if !stderrTTY {
		// Disable colors when diagnostics are redirected
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// interactiveSession reports whether all three standard streams are
// attached to a terminal. Routing defaults depend on this: under a pipe
// or redirect the content goes to stdout instead of the clipboard.
func interactiveSession() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd())) &&
		term.IsTerminal(int(os.Stderr.Fd()))
}

// All diagnostics go to stderr so they never mix into the content blob
// that may be piped or copied.

func successMsg(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", successStyle.Render("✓"), msg)
}

func warnMsg(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warningStyle.Render("warning:"), msg)
}

func infoMsg(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", dimStyle.Render(msg))
}

// errorMsg prints an error with optional hint lines
func errorMsg(err error, hints ...string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("error:"), err.Error())
	for _, hint := range hints {
		fmt.Fprintf(os.Stderr, "  %s %s\n", dimStyle.Render("hint:"), hint)
	}
}

// formatBytes formats byte counts nicely (e.g., "890B" or "1.2KB")
func formatBytes(b int) string {
	if b < 1024 {
		return fmt.Sprintf("%dB", b)
	}
	return fmt.Sprintf("%.1fKB", float64(b)/1024)
}
