package domain

import (
	"fmt"
	"sort"
	"time"
)

type Source string

const (
	SourceDataset  Source = "dataset"
	SourceCalendar Source = "calendar"
)

// Session is a single recorded practice interval. Immutable once created.
// Identifier uniqueness is best-effort: dataset rows derive their id from
// the start time, calendar rows carry the event id.
type Session struct {
	ID          string
	StartedAt   time.Time
	DurationSec int
	Source      Source
}

func DatasetSessionID(startedAt time.Time) string {
	return fmt.Sprintf("ds-%d", startedAt.Unix())
}

func CalendarSessionID(eventID string) string {
	return "cal-" + eventID
}

// MergeSessions appends fetched sessions to the existing collection,
// dropping any fetched session whose start timestamp exactly matches an
// existing one. The rule is deliberately no stronger than an exact match;
// overlapping manual and calendar entries are accepted as distinct.
// The returned collection is sorted by start time ascending.
func MergeSessions(existing, fetched []Session) (merged []Session, added, duplicates int) {
	seen := make(map[int64]struct{}, len(existing))
	for _, s := range existing {
		seen[s.StartedAt.UnixNano()] = struct{}{}
	}

	merged = make([]Session, len(existing), len(existing)+len(fetched))
	copy(merged, existing)
	for _, s := range fetched {
		if _, dup := seen[s.StartedAt.UnixNano()]; dup {
			duplicates++
			continue
		}
		seen[s.StartedAt.UnixNano()] = struct{}{}
		merged = append(merged, s)
		added++
	}

	SortSessions(merged)
	return merged, added, duplicates
}

func SortSessions(sessions []Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.Before(sessions[j].StartedAt)
	})
}
