package domain

import (
	"strings"
	"time"
)

type Calendar struct {
	ID      string
	Summary string
}

// Event is a single calendar entry. All-day events carry zero Start/End
// values and are not eligible as practice sessions.
type Event struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}

// Timed reports whether the event exposes both timed start and end fields.
func (e Event) Timed() bool {
	return !e.Start.IsZero() && !e.End.IsZero()
}

// MatchCalendar finds the first calendar whose summary equals name,
// case-insensitively.
func MatchCalendar(calendars []Calendar, name string) (Calendar, bool) {
	for _, c := range calendars {
		if strings.EqualFold(c.Summary, name) {
			return c, true
		}
	}
	return Calendar{}, false
}
