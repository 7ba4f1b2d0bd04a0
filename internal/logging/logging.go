// Package logging provides leveled, colored log output for the CLI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
)

var (
	logger  = log.New(os.Stderr, "", 0)
	verbose bool
	color   = true
)

// Setup configures the destination, verbosity and coloring of log output.
func Setup(out io.Writer, isVerbose, isColor bool) {
	logger.SetOutput(out)
	verbose = isVerbose
	color = isColor
}

// Verbose reports whether debug messages are printed.
func Verbose() bool { return verbose }

// Debugf logs a message only in verbose mode.
func Debugf(format string, args ...any) {
	if verbose {
		logger.Printf("%s %s", colorize(colorBlue, "DEBUG"), fmt.Sprintf(format, args...))
	}
}

// Infof logs an info message.
func Infof(format string, args ...any) {
	logger.Printf("%s %s", colorize(colorGreen, "INFO"), fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func Warnf(format string, args ...any) {
	logger.Printf("%s %s", colorize(colorYellow, "WARN"), fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	logger.Printf("%s %s", colorize(colorRed, "ERROR"), fmt.Sprintf(format, args...))
}

func colorize(code, msg string) string {
	if !color {
		return msg
	}
	return code + msg + colorReset
}
