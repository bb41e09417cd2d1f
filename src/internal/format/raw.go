// FILE: ecosnap/src/internal/format/raw.go
package format

import (
	"ecosnap/src/internal/core"

	"github.com/lixenwraith/log"
)

// Outputs the label as-is with a newline
type RawFormatter struct {
	logger *log.Logger
}

// Creates a new raw formatter
func NewRawFormatter(options map[string]any, logger *log.Logger) (*RawFormatter, error) {
	return &RawFormatter{
		logger: logger,
	}, nil
}

// Returns the label with a newline appended
func (f *RawFormatter) Format(entry core.LogEntry) ([]byte, error) {
	return append([]byte(entry.Label), '\n'), nil
}

// Returns the formatter name
func (f *RawFormatter) Name() string {
	return "raw"
}
