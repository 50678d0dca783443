package out

import (
	"context"
	"fmt"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"tempo/internal/modules/calendar/domain"
	calendarout "tempo/internal/modules/calendar/port/out"
)

// GoogleEventsAPI talks to the Google Calendar v3 API with the authorizer's
// stored token. Events are requested expanded to single instances ordered
// by start time; all-day entries come back with zero timestamps and are
// filtered by the service layer.
type GoogleEventsAPI struct {
	auth *OAuthAuthorizer
}

func NewGoogleEventsAPI(auth *OAuthAuthorizer) calendarout.EventsAPI {
	return &GoogleEventsAPI{auth: auth}
}

func (g *GoogleEventsAPI) service(ctx context.Context) (*gcalendar.Service, error) {
	client, err := g.auth.Client(ctx)
	if err != nil {
		return nil, err
	}
	svc, err := gcalendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("new calendar service: %w", err)
	}
	return svc, nil
}

func (g *GoogleEventsAPI) Calendars(ctx context.Context) ([]domain.Calendar, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}
	list, err := svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar list: %w", err)
	}
	calendars := make([]domain.Calendar, 0, len(list.Items))
	for _, item := range list.Items {
		calendars = append(calendars, domain.Calendar{ID: item.Id, Summary: item.Summary})
	}
	return calendars, nil
}

func (g *GoogleEventsAPI) Events(ctx context.Context, calendarID string, after time.Time) ([]domain.Event, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	pageToken := ""
	for {
		call := svc.Events.List(calendarID).
			TimeMin(after.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("events list: %w", err)
		}
		for _, item := range page.Items {
			events = append(events, domain.Event{
				ID:      item.Id,
				Summary: item.Summary,
				Start:   parseEventTime(item.Start),
				End:     parseEventTime(item.End),
			})
		}
		pageToken = page.NextPageToken
		if pageToken == "" {
			return events, nil
		}
	}
}

// parseEventTime returns the zero time for all-day events (Date without
// DateTime) and for malformed values, marking the event ineligible.
func parseEventTime(edt *gcalendar.EventDateTime) time.Time {
	if edt == nil || edt.DateTime == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
