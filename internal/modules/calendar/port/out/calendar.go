package out

import (
	"context"
	"time"

	"tempo/internal/modules/calendar/domain"
)

// EventsAPI is the external calendar service: list the user's calendars and
// the events of one calendar after a cutoff, expanded to single instances
// ordered by start time.
type EventsAPI interface {
	Calendars(ctx context.Context) ([]domain.Calendar, error)
	Events(ctx context.Context, calendarID string, after time.Time) ([]domain.Event, error)
}

// Authorizer owns the oauth token lifecycle for the calendar service.
type Authorizer interface {
	AuthURL(state string) (string, error)
	Exchange(ctx context.Context, code string) error
	Authorized() bool
}
