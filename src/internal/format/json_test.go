// FILE: ecosnap/src/internal/format/json_test.go
package format

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ecosnap/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	logger := newTestLogger()
	testTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.Local)
	entry := core.LogEntry{
		Time:  testTime,
		Label: core.EWaste,
	}

	t.Run("BasicFormatting", func(t *testing.T) {
		formatter, err := NewJSONFormatter(nil, logger)
		require.NoError(t, err)

		output, err := formatter.Format(entry)
		require.NoError(t, err)

		var result map[string]any
		err = json.Unmarshal(output, &result)
		require.NoError(t, err, "Output should be valid JSON")

		assert.Equal(t, "2023-01-01 12:00:00", result["timestamp"])
		assert.Equal(t, "E-Waste", result["label"])
		assert.True(t, strings.HasSuffix(string(output), "\n"), "Output should end with a newline")
	})

	t.Run("PrettyFormatting", func(t *testing.T) {
		formatter, err := NewJSONFormatter(map[string]any{"pretty": true}, logger)
		require.NoError(t, err)

		output, err := formatter.Format(entry)
		require.NoError(t, err)

		assert.Contains(t, string(output), `  "label": "E-Waste"`)
	})

	t.Run("ZeroTimeIsNull", func(t *testing.T) {
		formatter, err := NewJSONFormatter(nil, logger)
		require.NoError(t, err)

		output, err := formatter.Format(core.LogEntry{Label: "Paper"})
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(output, &result))
		value, exists := result["timestamp"]
		assert.True(t, exists)
		assert.Nil(t, value)
	})

	t.Run("CustomFieldNames", func(t *testing.T) {
		options := map[string]any{"timestamp_field": "@timestamp", "label_field": "waste_type"}
		formatter, err := NewJSONFormatter(options, logger)
		require.NoError(t, err)

		output, err := formatter.Format(entry)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(output, &result))

		_, defaultExists := result["timestamp"]
		assert.False(t, defaultExists)
		assert.Equal(t, "2023-01-01 12:00:00", result["@timestamp"])
		assert.Equal(t, "E-Waste", result["waste_type"])
	})

	t.Run("ConflictingFieldNames", func(t *testing.T) {
		_, err := NewJSONFormatter(map[string]any{"timestamp_field": "label"}, logger)
		assert.Error(t, err)
	})
}

func TestJSONFormatter_FormatBatch(t *testing.T) {
	formatter, err := NewJSONFormatter(nil, newTestLogger())
	require.NoError(t, err)

	entries := []core.LogEntry{
		{Time: time.Now(), Label: core.Paper},
		{Time: time.Now(), Label: core.Battery},
	}

	output, err := formatter.FormatBatch(entries)
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(output, &result), "Batch output should be a valid JSON array")
	require.Len(t, result, 2)

	assert.Equal(t, "Paper", result[0]["label"])
	assert.Equal(t, "Battery", result[1]["label"])
}
