package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
	fgCyan   = "\033[36m"

	symCheck = "✔"
	symCross = "✖"
	symInfo  = "ℹ"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorMode accepts "auto", "always" or "never".
func SetColorMode(mode string) {
	switch mode {
	case "always":
		forceColor, disableColor = true, false
	case "never":
		forceColor, disableColor = false, true
	default:
		forceColor, disableColor = false, false
	}
}

func isTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// C wraps s in color when the output supports it.
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(current.Success, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Error, symCross+" "+msg)) }
func Info(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Accent, symInfo+" "+msg)) }
