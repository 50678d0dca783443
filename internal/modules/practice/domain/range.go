package domain

import (
	"strings"
	"time"

	apperrors "tempo/internal/platform/errors"
)

// Range is a fixed lookback window applied to the day-series for display.
// It never mutates the underlying data.
type Range int

const (
	RangeWeek Range = iota
	RangeMonth
	RangeQuarter
	RangeYear
	RangeAll
	rangeCount
)

func Ranges() []Range {
	return []Range{RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeAll}
}

func (r Range) Label() string {
	switch r {
	case RangeWeek:
		return "1W"
	case RangeMonth:
		return "1M"
	case RangeQuarter:
		return "3M"
	case RangeYear:
		return "1Y"
	case RangeAll:
		return "ALL"
	default:
		return "?"
	}
}

// Days returns the lookback window length in days; 0 means unbounded.
func (r Range) Days() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	case RangeQuarter:
		return 90
	case RangeYear:
		return 365
	default:
		return 0
	}
}

func (r Range) Next() Range {
	return (r + 1) % rangeCount
}

func (r Range) Prev() Range {
	return (r + rangeCount - 1) % rangeCount
}

func ParseRange(label string) (Range, error) {
	for _, r := range Ranges() {
		if strings.EqualFold(label, r.Label()) {
			return r, nil
		}
	}
	return RangeAll, apperrors.ErrInvalidInput
}

// FilterSeries returns the sub-sequence of entries visible under r.
// RangeAll returns the series unchanged. The shortest window is the one
// special case: it keeps the last 7 entries by count rather than by date,
// so a fresh dataset still fills the chart.
func FilterSeries(entries []DayEntry, r Range, today time.Time) []DayEntry {
	switch {
	case r == RangeAll:
		return entries
	case r == RangeWeek:
		if len(entries) <= 7 {
			return entries
		}
		return entries[len(entries)-7:]
	}

	cutoff := Day(today).AddDate(0, 0, -r.Days())
	for i, e := range entries {
		if !e.Date.Before(cutoff) {
			return entries[i:]
		}
	}
	return nil
}

// Trend compares the first and last values of a filtered window. A
// non-negative delta is considered positive.
type Trend struct {
	Delta    float64
	Positive bool
}

func SeriesTrend(entries []DayEntry) Trend {
	if len(entries) == 0 {
		return Trend{Positive: true}
	}
	delta := entries[len(entries)-1].AvgSec - entries[0].AvgSec
	return Trend{Delta: delta, Positive: delta >= 0}
}
