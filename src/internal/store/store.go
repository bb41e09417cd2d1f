// FILE: ecosnap/src/internal/store/store.go
package store

import (
	"io"

	"ecosnap/src/internal/core"
)

// Store is the append-only waste log shared by the appender and the aggregator.
//
// Entries are never updated, deleted or truncated. Implementations provide no locking
// and no conflict detection: concurrent appenders, within one process or across several,
// may interleave. Callers that need stronger guarantees must serialize appends themselves.
type Store interface {
	// Append writes one entry after all existing content
	Append(entry core.LogEntry) error

	// Open returns a reader over the full store contents in append order.
	// When nothing has been written yet the error satisfies errors.Is(err, fs.ErrNotExist).
	Open() (io.ReadCloser, error)

	// Location identifies the backing resource for logs and status output
	Location() string
}
