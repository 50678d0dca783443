package domain

import (
	"fmt"
	"time"
)

// DayEntry is one point of the derived day-series: a calendar day, the
// seconds practiced that day, and the cumulative average across all days
// since the first session. Rest days appear with TotalSec 0 and still count
// in the average denominator.
type DayEntry struct {
	Date     time.Time
	Display  string
	TotalSec int
	AvgSec   float64
}

// Day truncates t to UTC midnight. All day bucketing is done in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildDaySeries derives one entry per calendar day from the earliest
// session's date through today, inclusive. The cumulative average at day N
// is sum(day totals 1..N) / N, so the plotted series converges toward the
// current average practice rate.
func BuildDaySeries(sessions []Session, today time.Time) []DayEntry {
	if len(sessions) == 0 {
		return nil
	}

	totals := make(map[time.Time]int, len(sessions))
	earliest := Day(sessions[0].StartedAt)
	for _, s := range sessions {
		day := Day(s.StartedAt)
		totals[day] += s.DurationSec
		if day.Before(earliest) {
			earliest = day
		}
	}

	end := Day(today)
	if end.Before(earliest) {
		end = earliest
	}

	var entries []DayEntry
	sum := 0
	for day := earliest; !day.After(end); day = day.AddDate(0, 0, 1) {
		sum += totals[day]
		entries = append(entries, DayEntry{
			Date:     day,
			Display:  day.Format("Jan 2"),
			TotalSec: totals[day],
			AvgSec:   float64(sum) / float64(len(entries)+1),
		})
	}
	return entries
}

// FormatSeconds renders a duration in seconds as a compact label, e.g.
// "1h 05m" or "45m".
func FormatSeconds(seconds float64) string {
	total := int(seconds + 0.5)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
