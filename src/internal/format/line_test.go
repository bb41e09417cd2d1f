// FILE: ecosnap/src/internal/format/line_test.go
package format

import (
	"testing"
	"time"

	"ecosnap/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFormatter_Format(t *testing.T) {
	formatter, err := NewLineFormatter(nil, newTestLogger())
	require.NoError(t, err)

	entry := core.LogEntry{
		Time:  time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local),
		Label: core.Battery,
	}

	output, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09 07:05:01 - Battery\n", string(output))
}

func TestFormatLine_FlattensLineBreaks(t *testing.T) {
	entry := core.LogEntry{
		Time:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		Label: "Paper\nextra\r",
	}
	assert.Equal(t, "2024-01-01 00:00:00 - Paper extra \n", FormatLine(entry))
}

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name      string
		line      string
		wantOK    bool
		wantLabel string
		wantTime  bool
	}{
		{
			name:      "Valid",
			line:      "2024-03-09 07:05:01 - Battery\n",
			wantOK:    true,
			wantLabel: "Battery",
			wantTime:  true,
		},
		{
			name:      "LabelWithSpaces",
			line:      "2024-03-09 07:05:01 - Plastic Bottle",
			wantOK:    true,
			wantLabel: "Plastic Bottle",
			wantTime:  true,
		},
		{
			name:      "HyphenatedLabel",
			line:      "2024-03-09 07:05:01 - E-Waste",
			wantOK:    true,
			wantLabel: "E-Waste",
			wantTime:  true,
		},
		{
			name:      "ExtraSeparatorKeptInLabel",
			line:      "2024-03-09 07:05:01 - Paper - shredded",
			wantOK:    true,
			wantLabel: "Paper - shredded",
			wantTime:  true,
		},
		{
			name:      "InvalidTimestampStillCounts",
			line:      "yesterday - Paper",
			wantOK:    true,
			wantLabel: "Paper",
		},
		{
			name:   "NoSeparator",
			line:   "not a valid line",
			wantOK: false,
		},
		{
			name:   "HyphenWithoutSpaces",
			line:   "2024-03-09 07:05:01-Battery",
			wantOK: false,
		},
		{
			name:   "Blank",
			line:   "",
			wantOK: false,
		},
		{
			name:   "WhitespaceOnly",
			line:   "   \t\r\n",
			wantOK: false,
		},
		{
			name:   "TrailingSeparatorTrimmedAway",
			line:   "2024-03-09 07:05:01 - ",
			wantOK: false,
		},
		{
			name:      "NonUTF8Label",
			line:      "2024-03-09 07:05:01 - \xff\xfe",
			wantOK:    true,
			wantLabel: "\xff\xfe",
			wantTime:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, ok := ParseLine(tc.line)
			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			assert.Equal(t, tc.wantLabel, entry.Label)
			assert.Equal(t, tc.wantTime, !entry.Time.IsZero())
		})
	}
}

func TestParseLine_RoundTripsFormatLine(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local)
	entry, ok := ParseLine(FormatLine(core.LogEntry{Time: ts, Label: core.AluminumCan}))
	require.True(t, ok)
	assert.Equal(t, core.AluminumCan, entry.Label)
	assert.True(t, ts.Equal(entry.Time))
}
