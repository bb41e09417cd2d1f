// FILE: ecosnap/src/internal/format/json.go
package format

import (
	"encoding/json"
	"fmt"

	"ecosnap/src/internal/core"

	"github.com/lixenwraith/log"
)

// JSONFormatter produces JSON records from LogEntry objects.
type JSONFormatter struct {
	pretty         bool
	timestampField string
	labelField     string
	logger         *log.Logger
}

// NewJSONFormatter creates a new JSON formatter from configuration options.
func NewJSONFormatter(options map[string]any, logger *log.Logger) (*JSONFormatter, error) {
	f := &JSONFormatter{
		timestampField: "timestamp",
		labelField:     "label",
		logger:         logger,
	}

	if pretty, ok := options["pretty"].(bool); ok {
		f.pretty = pretty
	}
	if field, ok := options["timestamp_field"].(string); ok && field != "" {
		f.timestampField = field
	}
	if field, ok := options["label_field"].(string); ok && field != "" {
		f.labelField = field
	}
	if f.timestampField == f.labelField {
		return nil, fmt.Errorf("timestamp and label fields must differ: %s", f.labelField)
	}

	return f, nil
}

// Format transforms a single LogEntry into a JSON byte slice.
func (f *JSONFormatter) Format(entry core.LogEntry) ([]byte, error) {
	output := map[string]any{
		f.labelField:     entry.Label,
		f.timestampField: nil,
	}
	// Entries parsed from malformed timestamps carry a zero time
	if !entry.Time.IsZero() {
		output[f.timestampField] = entry.Time.Format(core.TimestampLayout)
	}

	result, err := f.marshal(output)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(result, '\n'), nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// FormatBatch transforms a slice of LogEntry objects into a single JSON array byte slice.
func (f *JSONFormatter) FormatBatch(entries []core.LogEntry) ([]byte, error) {
	batch := make([]json.RawMessage, 0, len(entries))

	for _, entry := range entries {
		formatted, err := f.Format(entry)
		if err != nil {
			f.logger.Warn("msg", "Failed to format entry in batch",
				"component", "json_formatter",
				"error", err)
			continue
		}

		// Remove the trailing newline for array elements
		if len(formatted) > 0 && formatted[len(formatted)-1] == '\n' {
			formatted = formatted[:len(formatted)-1]
		}

		batch = append(batch, formatted)
	}

	return f.marshal(batch)
}

func (f *JSONFormatter) marshal(v any) ([]byte, error) {
	if f.pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
