// FILE: ecosnap/src/internal/format/format.go
package format

import (
	"fmt"

	"ecosnap/src/internal/core"

	"github.com/lixenwraith/log"
)

// Formatter defines the interface for transforming a LogEntry into a byte slice.
type Formatter interface {
	// Format takes a LogEntry and returns the formatted record as a byte slice.
	Format(entry core.LogEntry) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// BatchFormatter is implemented by formatters that can emit a whole history as one document.
type BatchFormatter interface {
	Formatter
	FormatBatch(entries []core.LogEntry) ([]byte, error)
}

// New creates a new Formatter based on the provided name and options.
func New(name string, options map[string]any, logger *log.Logger) (Formatter, error) {
	// Default to the waste log line format
	if name == "" {
		name = "line"
	}

	switch name {
	case "line":
		return NewLineFormatter(options, logger)
	case "json":
		return NewJSONFormatter(options, logger)
	case "raw":
		return NewRawFormatter(options, logger)
	case "msgpack":
		return NewMsgpackFormatter(options, logger)
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
