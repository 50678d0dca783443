package domain_test

import (
	"testing"
	"time"

	"tempo/internal/modules/practice/domain"
)

func session(id string, start time.Time, durationSec int, source domain.Source) domain.Session {
	return domain.Session{ID: id, StartedAt: start, DurationSec: durationSec, Source: source}
}

func TestMergeSessionsDropsExactStartMatches(t *testing.T) {
	t.Parallel()
	day1 := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 18, 0, 0, 0, time.UTC)
	existing := []domain.Session{
		session("ds-1", day1, 600, domain.SourceDataset),
		session("ds-2", day2, 900, domain.SourceDataset),
	}

	fetched := []domain.Session{
		session("cal-a", day1, 1200, domain.SourceCalendar), // same start, dropped
		session("cal-b", day2.Add(2*time.Hour), 1800, domain.SourceCalendar),
	}
	merged, added, duplicates := domain.MergeSessions(existing, fetched)
	if added != 1 || duplicates != 1 {
		t.Fatalf("expected 1 added and 1 duplicate, got %d/%d", added, duplicates)
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 sessions after merge, got %d", len(merged))
	}
	// The duplicate's existing record must survive untouched.
	if merged[0].ID != "ds-1" || merged[0].DurationSec != 600 {
		t.Fatalf("existing record was replaced: %+v", merged[0])
	}
}

func TestMergeSessionsDuplicateIsNoOpOnSize(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	existing := []domain.Session{session("ds-1", start, 600, domain.SourceDataset)}

	merged, added, duplicates := domain.MergeSessions(existing,
		[]domain.Session{session("cal-a", start, 999, domain.SourceCalendar)})
	if len(merged) != len(existing) {
		t.Fatalf("duplicate merge must not change collection size: %d", len(merged))
	}
	if added != 0 || duplicates != 1 {
		t.Fatalf("expected 0 added and 1 duplicate, got %d/%d", added, duplicates)
	}
}

func TestMergeSessionsSortsByStartAscending(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	existing := []domain.Session{
		session("ds-3", base.AddDate(0, 0, 3), 300, domain.SourceDataset),
		session("ds-1", base, 300, domain.SourceDataset),
	}
	fetched := []domain.Session{
		session("cal-2", base.AddDate(0, 0, 2), 300, domain.SourceCalendar),
	}

	merged, _, _ := domain.MergeSessions(existing, fetched)
	for i := 1; i < len(merged); i++ {
		if merged[i].StartedAt.Before(merged[i-1].StartedAt) {
			t.Fatalf("merged collection not sorted at %d: %+v", i, merged)
		}
	}
}
