// FILE: ecosnap/src/internal/version/version.go
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is set at compile time via -ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Returns a formatted version string
func String() string {
	return fmt.Sprintf("EcoSnap %s (commit: %s, built: %s, %s)", Version, GitCommit, BuildTime, runtime.Version())
}

// Returns just the version tag
func Short() string {
	return Version
}
