// FILE: ecosnap/src/internal/classify/image.go
package classify

import (
	"path/filepath"
	"strings"
)

var supportedExtensions = []string{".jpg", ".jpeg", ".png"}

// Extensions returns the accepted upload extensions
func Extensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// Supported reports whether name carries an accepted image extension, case-insensitively
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range supportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
