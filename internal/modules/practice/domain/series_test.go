package domain_test

import (
	"math"
	"testing"
	"time"

	"tempo/internal/modules/practice/domain"
)

func TestBuildDaySeriesCoversEveryDayThroughToday(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		session("ds-1", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), 600, domain.SourceDataset),
		session("ds-2", time.Date(2026, 8, 4, 21, 30, 0, 0, time.UTC), 900, domain.SourceDataset),
	}
	today := time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)

	entries := domain.BuildDaySeries(sessions, today)
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries (Aug 1..10 inclusive), got %d", len(entries))
	}
	for i, e := range entries {
		want := time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC)
		if !e.Date.Equal(want) {
			t.Fatalf("entry %d: expected %s, got %s", i, want, e.Date)
		}
	}
	// Rest days are explicit with zero totals.
	if entries[1].TotalSec != 0 || entries[9].TotalSec != 0 {
		t.Fatalf("rest days must carry zero totals: %+v", entries)
	}
}

func TestBuildDaySeriesCumulativeAverageIdentity(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		session("ds-1", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), 1200, domain.SourceDataset),
		session("ds-2", time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), 300, domain.SourceDataset),
		session("ds-3", time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC), 1500, domain.SourceDataset),
	}
	today := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)

	entries := domain.BuildDaySeries(sessions, today)
	want := float64(1200+300+1500) / float64(len(entries))
	got := entries[len(entries)-1].AvgSec
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("final cumulative average: expected %.4f, got %.4f", want, got)
	}
}

func TestBuildDaySeriesTwoDayScenario(t *testing.T) {
	t.Parallel()
	// Day 1 practices 600s, day 2 rests: averages converge [600, 300].
	sessions := []domain.Session{
		session("ds-1", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), 600, domain.SourceDataset),
	}
	today := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	entries := domain.BuildDaySeries(sessions, today)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].AvgSec != 600 || entries[1].AvgSec != 300 {
		t.Fatalf("expected averages [600 300], got [%.0f %.0f]", entries[0].AvgSec, entries[1].AvgSec)
	}
}

func TestBuildDaySeriesMultipleSessionsSameDay(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		session("ds-1", day.Add(9*time.Hour), 600, domain.SourceDataset),
		session("cal-1", day.Add(20*time.Hour), 900, domain.SourceCalendar),
	}

	entries := domain.BuildDaySeries(sessions, day)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].TotalSec != 1500 {
		t.Fatalf("expected same-day totals summed to 1500, got %d", entries[0].TotalSec)
	}
}

func TestBuildDaySeriesEmptyCollection(t *testing.T) {
	t.Parallel()
	if entries := domain.BuildDaySeries(nil, time.Now()); entries != nil {
		t.Fatalf("expected nil series for empty collection, got %+v", entries)
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0m"},
		{2700, "45m"},
		{3900, "1h 05m"},
		{7200, "2h 00m"},
	}
	for _, tc := range cases {
		if got := domain.FormatSeconds(tc.in); got != tc.want {
			t.Fatalf("FormatSeconds(%.0f): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
