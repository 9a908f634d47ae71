package logging

import (
	"fmt"
	"os"

	"github.com/hashdot/hashdot/internal/styles"
)

// User-facing output helpers for the interactive commands. These bypass
// the slog level filter: a user who ran the command always sees them.

// UserInfo prints an informational line to stderr
func UserInfo(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// UserInfof prints a formatted informational line to stderr
func UserInfof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// UserErrorf prints a formatted error line to stderr
func UserErrorf(format string, args ...any) {
	styles.PrintStyled(os.Stderr, styles.ErrorStyle, "Error: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Successf prints a formatted success line to stderr
func Successf(format string, args ...any) {
	styles.PrintStyledln(os.Stderr, styles.SuccessStyle, fmt.Sprintf(format, args...))
}
