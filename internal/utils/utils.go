package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Color output helpers
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	FprintSuccess(os.Stdout, msg, args...)
}

// PrintError prints an error message to stderr
func PrintError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, ColorRed+"✗ "+msg+ColorReset+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	FprintInfo(os.Stdout, msg, args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	FprintWarning(os.Stdout, msg, args...)
}

// FprintSuccess writes a success message to w
func FprintSuccess(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, ColorGreen+"✓ "+msg+ColorReset+"\n", args...)
}

// FprintInfo writes an info message to w
func FprintInfo(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, ColorCyan+"ℹ "+msg+ColorReset+"\n", args...)
}

// FprintWarning writes a warning message to w
func FprintWarning(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, ColorYellow+"⚠ "+msg+ColorReset+"\n", args...)
}

// Confirm asks a yes/no question and reports whether the answer was yes
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, ColorYellow+"? %s [y/N]: "+ColorReset, question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
