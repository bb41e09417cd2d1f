// FILE: ecosnap/src/cmd/ecosnap/output.go
package main

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Manages all application output respecting quiet mode
type OutputHandler struct {
	quiet  bool
	mu     sync.RWMutex
	stdout io.Writer
	stderr io.Writer
}

// Global output handler instance
var output *OutputHandler

// Initializes the global output handler
func InitOutputHandler(quiet bool) {
	output = &OutputHandler{
		quiet:  quiet,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Writes to stderr. Errors are shown even in quiet mode.
func (o *OutputHandler) Error(format string, args ...any) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	fmt.Fprintf(o.stderr, format, args...)
}

// Returns the writer for status messages, discarded in quiet mode
func (o *OutputHandler) Status() io.Writer {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.quiet {
		return io.Discard
	}
	return o.stdout
}

// Helper functions for global output handler
func Error(format string, args ...any) {
	if output != nil {
		output.Error(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Writes to stderr, flushes the logger and exits
func FatalError(code int, format string, args ...any) {
	Error(format, args...)
	shutdownLogger()
	os.Exit(code)
}
