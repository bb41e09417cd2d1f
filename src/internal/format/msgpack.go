// FILE: ecosnap/src/internal/format/msgpack.go
package format

import (
	"fmt"

	"ecosnap/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Produces a stream of MessagePack maps, one per entry, for compact export
type MsgpackFormatter struct {
	logger *log.Logger
}

type msgpackRecord struct {
	Timestamp string `msgpack:"timestamp,omitempty"`
	Label     string `msgpack:"label"`
}

// Creates a new MessagePack formatter
func NewMsgpackFormatter(options map[string]any, logger *log.Logger) (*MsgpackFormatter, error) {
	return &MsgpackFormatter{
		logger: logger,
	}, nil
}

// Encodes the entry as one MessagePack map. Records are self-delimiting, so output can be concatenated.
func (f *MsgpackFormatter) Format(entry core.LogEntry) ([]byte, error) {
	rec := msgpackRecord{Label: entry.Label}
	if !entry.Time.IsZero() {
		rec.Timestamp = entry.Time.Format(core.TimestampLayout)
	}

	out, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal msgpack: %w", err)
	}
	return out, nil
}

// Returns the formatter name
func (f *MsgpackFormatter) Name() string {
	return "msgpack"
}
