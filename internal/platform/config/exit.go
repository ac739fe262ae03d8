package config

import (
	"fmt"
	"os"
)

// Exit statuses used by the command-line entry points.
const (
	ExitFailure = 1
	// ExitUsage reports unparseable command-line flags.
	ExitUsage = 2
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	ExitWithCode(ExitFailure, format, args...)
}

// ExitWithCode writes a formatted message to stderr and exits with code.
func ExitWithCode(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
