// FILE: ecosnap/src/internal/aggregate/aggregate.go
package aggregate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"ecosnap/src/internal/core"
	"ecosnap/src/internal/format"
	"ecosnap/src/internal/store"
)

// Counts maps a label to the number of valid log lines carrying it
type Counts map[string]int

// Bar is one label/count pair of a chart
type Bar struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Total returns the sum of all counts
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Sorted returns the counts ordered by descending count, ties broken by label
func (c Counts) Sorted() []Bar {
	bars := make([]Bar, 0, len(c))
	for label, n := range c {
		bars = append(bars, Bar{Label: label, Count: n})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Count != bars[j].Count {
			return bars[i].Count > bars[j].Count
		}
		return bars[i].Label < bars[j].Label
	})
	return bars
}

// Summary is the result of one full pass over a store
type Summary struct {
	Counts  Counts
	Skipped int  // malformed lines dropped
	Exists  bool // false when the store has never been written
}

// Each calls fn for every valid line of r in order and returns the number of skipped lines.
// Malformed lines never stop the read; only I/O errors are returned.
func Each(r io.Reader, fn func(core.LogEntry)) (int, error) {
	br := bufio.NewReader(r)
	skipped := 0

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if entry, ok := format.ParseLine(line); ok {
				fn(entry)
			} else {
				skipped++
			}
		}
		if err == io.EOF {
			return skipped, nil
		}
		if err != nil {
			return skipped, fmt.Errorf("failed to read waste log: %w", err)
		}
	}
}

// FromReader builds the frequency table of r
func FromReader(r io.Reader) (Counts, error) {
	counts := make(Counts)
	_, err := Each(r, func(e core.LogEntry) {
		counts[e.Label]++
	})
	return counts, err
}

// Summarize reads the whole store. A store that does not exist yet yields empty counts.
func Summarize(s store.Store) (Summary, error) {
	sum := Summary{Counts: make(Counts)}

	rc, err := s.Open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return sum, nil
		}
		return sum, err
	}
	defer rc.Close()

	sum.Exists = true
	sum.Skipped, err = Each(rc, func(e core.LogEntry) {
		sum.Counts[e.Label]++
	})
	return sum, err
}

// FromStore returns the frequency table of the store
func FromStore(s store.Store) (Counts, error) {
	sum, err := Summarize(s)
	return sum.Counts, err
}

// Entries returns every valid entry of the store in append order
func Entries(s store.Store) ([]core.LogEntry, error) {
	rc, err := s.Open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer rc.Close()

	var entries []core.LogEntry
	_, err = Each(rc, func(e core.LogEntry) {
		entries = append(entries, e)
	})
	return entries, err
}
