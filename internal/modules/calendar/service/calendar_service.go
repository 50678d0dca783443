package service

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/calendar/domain"
	calendarout "tempo/internal/modules/calendar/port/out"
	apperrors "tempo/internal/platform/errors"
)

type CalendarService struct {
	api          calendarout.EventsAPI
	calendarName string
}

func NewCalendarService(api calendarout.EventsAPI, calendarName string) *CalendarService {
	return &CalendarService{api: api, calendarName: calendarName}
}

// FetchEvents resolves the configured calendar by case-insensitive name and
// returns its timed events after the cutoff. Events without timed start and
// end fields are silently excluded.
func (s *CalendarService) FetchEvents(ctx context.Context, after time.Time) ([]domain.Event, error) {
	calendars, err := s.api.Calendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	target, ok := domain.MatchCalendar(calendars, s.calendarName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrCalendarNotFound, s.calendarName)
	}

	events, err := s.api.Events(ctx, target.ID, after)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	eligible := events[:0:0]
	for _, ev := range events {
		if ev.Timed() {
			eligible = append(eligible, ev)
		}
	}
	return eligible, nil
}

func (s *CalendarService) Calendars(ctx context.Context) ([]domain.Calendar, error) {
	calendars, err := s.api.Calendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	return calendars, nil
}
