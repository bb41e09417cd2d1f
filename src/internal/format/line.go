// FILE: ecosnap/src/internal/format/line.go
package format

import (
	"strings"
	"time"

	"ecosnap/src/internal/core"

	"github.com/lixenwraith/log"
)

var labelSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

// Produces the waste log line format: "<YYYY-MM-DD HH:MM:SS> - <label>\n"
type LineFormatter struct {
	logger *log.Logger
}

// Creates a new line formatter
func NewLineFormatter(options map[string]any, logger *log.Logger) (*LineFormatter, error) {
	return &LineFormatter{
		logger: logger,
	}, nil
}

// Formats the entry as a single newline-terminated line
func (f *LineFormatter) Format(entry core.LogEntry) ([]byte, error) {
	return []byte(FormatLine(entry)), nil
}

// Returns the formatter name
func (f *LineFormatter) Name() string {
	return "line"
}

// FormatLine renders entry in the waste log line format.
// Line breaks inside the label are flattened so one entry always stays one line.
func FormatLine(entry core.LogEntry) string {
	var b strings.Builder
	b.WriteString(entry.Time.Format(core.TimestampLayout))
	b.WriteString(core.Separator)
	b.WriteString(labelSanitizer.Replace(entry.Label))
	b.WriteByte('\n')
	return b.String()
}

// ParseLine parses one waste log line.
// It returns false for any line that does not contain the separator. The line is split
// on the first separator only, so the label keeps any later " - " occurrences.
// The timestamp is not required to be a valid date; Time is zero when it does not parse.
func ParseLine(line string) (core.LogEntry, bool) {
	line = strings.TrimSpace(line)

	stamp, label, found := strings.Cut(line, core.Separator)
	if !found {
		return core.LogEntry{}, false
	}

	entry := core.LogEntry{Label: label}
	if t, err := time.ParseInLocation(core.TimestampLayout, stamp, time.Local); err == nil {
		entry.Time = t
	}
	return entry, true
}
