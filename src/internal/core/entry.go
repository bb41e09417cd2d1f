// FILE: ecosnap/src/internal/core/entry.go
package core

import "time"

// Represents a single classification event recorded in the waste log
type LogEntry struct {
	Time  time.Time `json:"time"`
	Label string    `json:"label"`
}
