// FILE: ecosnap/src/internal/core/const.go
package core

// Waste log line layout: "<timestamp> - <label>"
const (
	TimestampLayout = "2006-01-02 15:04:05"
	Separator       = " - "
)

const DefaultLogPath = "data/waste_log.txt"
