// FILE: ecosnap/src/internal/service/service.go
package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ecosnap/src/internal/aggregate"
	"ecosnap/src/internal/classify"
	"ecosnap/src/internal/core"
	"ecosnap/src/internal/score"
	"ecosnap/src/internal/store"
	"ecosnap/src/internal/tip"

	"github.com/lixenwraith/log"
)

// Messages shown instead of a score when there is nothing to chart
const (
	MessageNoStore = "Upload a waste image to start building your eco profile."
	MessageNoData  = "No data yet. Upload a waste image to begin tracking."
)

// Result is everything one scan hands to the presentation layer
type Result struct {
	Label     string     `json:"label"`
	Tip       string     `json:"tip"`
	Dashboard *Dashboard `json:"dashboard"`
}

// Dashboard is the chart and EcoScore derived from the current log contents
type Dashboard struct {
	Bars    []aggregate.Bar `json:"bars"`
	Total   int             `json:"total"`
	HasData bool            `json:"has_data"`
	Score   *int            `json:"score,omitempty"`
	Band    score.Band      `json:"band,omitempty"`
	Message string          `json:"message"`

	// Scans whose label is outside the fixed label set; they are charted and scored as non-harmful
	Unrecognized int `json:"unrecognized,omitempty"`
}

// Service runs the classify, tip, append, aggregate and score sequence against one store.
// It adds no locking around the store; see store.Store.
type Service struct {
	classifier classify.Classifier
	store      store.Store
	now        func() time.Time
	logger     *log.Logger

	// Statistics
	startTime     time.Time
	totalScans    atomic.Uint64
	failedAppends atomic.Uint64
	lastScanTime  atomic.Value // time.Time
}

// New creates a service. A nil clock defaults to time.Now.
func New(classifier classify.Classifier, st store.Store, clock func() time.Time, logger *log.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	s := &Service{
		classifier: classifier,
		store:      st,
		now:        clock,
		logger:     logger,
		startTime:  time.Now(),
	}
	s.lastScanTime.Store(time.Time{})
	return s
}

// Scan classifies img, records the label and returns the refreshed dashboard.
// A failed append is returned and nothing is scored.
func (s *Service) Scan(ctx context.Context, img classify.Image) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := s.classifier.Predict(img)
	entry := core.LogEntry{Time: s.now(), Label: label}

	if err := s.store.Append(entry); err != nil {
		s.failedAppends.Add(1)
		s.logger.Error("msg", "Failed to record scan",
			"component", "service",
			"store", s.store.Location(),
			"label", label,
			"error", err)
		return nil, fmt.Errorf("failed to record scan: %w", err)
	}

	s.totalScans.Add(1)
	s.lastScanTime.Store(entry.Time)
	s.logger.Debug("msg", "Scan recorded",
		"component", "service",
		"image", img.Name,
		"size", len(img.Data),
		"label", label)

	dash, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Label:     label,
		Tip:       tip.For(label),
		Dashboard: dash,
	}, nil
}

// Dashboard aggregates the store and scores it when it holds at least one valid entry
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum, err := aggregate.Summarize(s.store)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate waste log: %w", err)
	}
	if sum.Skipped > 0 {
		s.logger.Debug("msg", "Skipped malformed log lines",
			"component", "service",
			"store", s.store.Location(),
			"skipped", sum.Skipped)
	}

	dash := &Dashboard{
		Bars:  sum.Counts.Sorted(),
		Total: sum.Counts.Total(),
	}
	for _, bar := range dash.Bars {
		if !core.IsKnown(bar.Label) {
			dash.Unrecognized += bar.Count
		}
	}

	if dash.Total == 0 {
		dash.Message = MessageNoData
		if !sum.Exists {
			dash.Message = MessageNoStore
		}
		return dash, nil
	}

	eco, err := score.Compute(sum.Counts)
	if err != nil {
		return nil, err
	}
	dash.HasData = true
	dash.Score = &eco
	dash.Band = score.BandFor(eco)
	dash.Message = dash.Band.Message()
	return dash, nil
}

// History returns every valid log entry in append order
func (s *Service) History(ctx context.Context) ([]core.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := aggregate.Entries(s.store)
	if err != nil {
		return nil, fmt.Errorf("failed to read waste log: %w", err)
	}
	return entries, nil
}

// GetStats returns runtime statistics of the service
func (s *Service) GetStats() map[string]any {
	lastScan, _ := s.lastScanTime.Load().(time.Time)

	stats := map[string]any{
		"store":          s.store.Location(),
		"start_time":     s.startTime,
		"uptime_seconds": int64(time.Since(s.startTime).Seconds()),
		"total_scans":    s.totalScans.Load(),
		"failed_appends": s.failedAppends.Load(),
	}
	if !lastScan.IsZero() {
		stats["last_scan"] = lastScan
	}
	return stats
}
