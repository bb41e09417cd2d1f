// FILE: ecosnap/src/internal/service/service_test.go
package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ecosnap/src/internal/classify"
	"ecosnap/src/internal/core"
	"ecosnap/src/internal/score"
	"ecosnap/src/internal/store"
	"ecosnap/src/internal/tip"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClassifier struct {
	labels []string
	next   int
}

func (f *fixedClassifier) Predict(_ classify.Image) string {
	label := f.labels[f.next%len(f.labels)]
	f.next++
	return label
}

type brokenStore struct{}

func (brokenStore) Append(core.LogEntry) error   { return errors.New("disk full") }
func (brokenStore) Open() (io.ReadCloser, error) { return nil, os.ErrNotExist }
func (brokenStore) Location() string             { return "broken" }

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
}

func newTestService(t *testing.T, labels ...string) (*Service, *store.FileStore) {
	t.Helper()
	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "data", "waste_log.txt"))
	require.NoError(t, err)
	return New(&fixedClassifier{labels: labels}, st, fixedClock, log.NewLogger()), st
}

func TestService_DashboardWithoutStore(t *testing.T) {
	svc, _ := newTestService(t, core.Paper)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.False(t, dash.HasData)
	assert.Nil(t, dash.Score)
	assert.Empty(t, dash.Bars)
	assert.Equal(t, MessageNoStore, dash.Message)
}

func TestService_DashboardOnlyMalformedLines(t *testing.T) {
	svc, st := newTestService(t, core.Paper)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Location()), 0o755))
	require.NoError(t, os.WriteFile(st.Location(), []byte("junk\nmore junk\n"), 0o644))

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.False(t, dash.HasData)
	assert.Nil(t, dash.Score)
	assert.Equal(t, MessageNoData, dash.Message)
}

func TestService_DashboardCountsUnrecognizedLabels(t *testing.T) {
	svc, st := newTestService(t, core.Paper)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Location()), 0o755))
	require.NoError(t, os.WriteFile(st.Location(), []byte(
		"2024-05-01 09:00:00 - Glass\n"+
			"2024-05-01 09:05:00 - Battery\n"+
			"2024-05-01 09:10:00 - Glass\n"), 0o644))

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.True(t, dash.HasData)
	assert.Equal(t, 3, dash.Total)
	assert.Equal(t, 2, dash.Unrecognized)
	assert.Equal(t, 67, *dash.Score)
}

func TestService_Scan(t *testing.T) {
	svc, st := newTestService(t, core.Battery, core.Paper)
	ctx := context.Background()

	result, err := svc.Scan(ctx, classify.Image{Name: "a.png", Data: []byte("img")})
	require.NoError(t, err)
	assert.Equal(t, core.Battery, result.Label)
	assert.Equal(t, tip.For(core.Battery), result.Tip)
	require.True(t, result.Dashboard.HasData)
	assert.Equal(t, 0, *result.Dashboard.Score)
	assert.Equal(t, score.BandPoor, result.Dashboard.Band)

	result, err = svc.Scan(ctx, classify.Image{Name: "b.png"})
	require.NoError(t, err)
	assert.Equal(t, core.Paper, result.Label)
	assert.Equal(t, 2, result.Dashboard.Total)
	assert.Equal(t, 50, *result.Dashboard.Score)
	assert.Equal(t, score.BandPoor, result.Dashboard.Band)
	assert.Equal(t, score.BandPoor.Message(), result.Dashboard.Message)

	data, err := os.ReadFile(st.Location())
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 12:00:00 - Battery\n2024-06-01 12:00:00 - Paper\n", string(data))

	stats := svc.GetStats()
	assert.Equal(t, uint64(2), stats["total_scans"])
	assert.Equal(t, uint64(0), stats["failed_appends"])
	assert.Equal(t, fixedClock(), stats["last_scan"])
}

func TestService_ScanGreatBand(t *testing.T) {
	svc, _ := newTestService(t, core.Paper, core.AluminumCan)

	var result *Result
	var err error
	for i := 0; i < 5; i++ {
		result, err = svc.Scan(context.Background(), classify.Image{})
		require.NoError(t, err)
	}

	assert.Equal(t, 100, *result.Dashboard.Score)
	assert.Equal(t, score.BandGreat, result.Dashboard.Band)
	require.Len(t, result.Dashboard.Bars, 2)
	assert.Equal(t, core.Paper, result.Dashboard.Bars[0].Label)
	assert.Equal(t, 3, result.Dashboard.Bars[0].Count)
}

func TestService_ScanAppendFailure(t *testing.T) {
	svc := New(&fixedClassifier{labels: []string{core.Paper}}, brokenStore{}, fixedClock, log.NewLogger())

	result, err := svc.Scan(context.Background(), classify.Image{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "disk full")

	stats := svc.GetStats()
	assert.Equal(t, uint64(1), stats["failed_appends"])
	assert.Equal(t, uint64(0), stats["total_scans"])
	_, hasLast := stats["last_scan"]
	assert.False(t, hasLast)
}

func TestService_CancelledContext(t *testing.T) {
	svc, st := newTestService(t, core.Paper)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Scan(ctx, classify.Image{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(st.Location())
	assert.True(t, os.IsNotExist(err), "cancelled scan must not write")
}

func TestService_History(t *testing.T) {
	svc, _ := newTestService(t, core.EWaste, core.Paper, core.EWaste)
	ctx := context.Background()

	entries, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for i := 0; i < 3; i++ {
		_, err := svc.Scan(ctx, classify.Image{})
		require.NoError(t, err)
	}

	entries, err = svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, core.EWaste, entries[0].Label)
	assert.Equal(t, core.Paper, entries[1].Label)
	assert.True(t, fixedClock().Equal(entries[2].Time))
}
