// Package ui provides styled terminal output helpers for prompts and the
// batch rename report.
package ui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true
)

// DisableColors disables all color output
func DisableColors() {
	colorEnabled = false
	isTerminal = false
	initStyles()
}

// IsTerminal checks if stdout is a terminal
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// SuccessMsg prints a success message
func SuccessMsg(format string, args ...interface{}) {
	fmt.Println(Success("✓") + " " + fmt.Sprintf(format, args...))
}

// ErrorMsg prints an error message
func ErrorMsg(format string, args ...interface{}) {
	fmt.Println(Error("✗") + " " + fmt.Sprintf(format, args...))
}

// WarningMsg prints a warning message
func WarningMsg(format string, args ...interface{}) {
	fmt.Println(Warning("⚠") + " " + fmt.Sprintf(format, args...))
}

// InfoMsg prints an info message
func InfoMsg(format string, args ...interface{}) {
	fmt.Println(Info("ℹ") + " " + fmt.Sprintf(format, args...))
}
