package dto

import "time"

type SessionOutput struct {
	ID          string
	StartedAt   time.Time
	DurationSec int
	Source      string
}

type DayEntryOutput struct {
	Date     time.Time
	Display  string
	TotalSec int
	AvgSec   float64
}

// SeriesSnapshot is the full derived day-series plus the session collection
// it was built from. Snapshots are immutable; a refresh produces a new one.
type SeriesSnapshot struct {
	Sessions    []SessionOutput
	Entries     []DayEntryOutput
	GeneratedAt time.Time
}

type ViewInput struct {
	Range string
}

// SeriesView is a range-filtered slice of the snapshot with the trend
// indicator already computed: First is the reference value the chart marks,
// Delta the signed first-vs-last difference.
type SeriesView struct {
	Range    string
	Entries  []DayEntryOutput
	First    float64
	Last     float64
	Delta    float64
	Positive bool
}

type RefreshOutput struct {
	Fetched    int
	Added      int
	Duplicates int
	Snapshot   SeriesSnapshot
}
