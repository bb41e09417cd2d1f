// FILE: ecosnap/src/internal/format/raw_test.go
package format

import (
	"testing"
	"time"

	"ecosnap/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawFormatter_Format(t *testing.T) {
	formatter, err := NewRawFormatter(nil, newTestLogger())
	require.NoError(t, err)

	output, err := formatter.Format(core.LogEntry{Time: time.Now(), Label: core.FoodWrapper})
	require.NoError(t, err)

	assert.Equal(t, "Food Wrapper\n", string(output))
}
