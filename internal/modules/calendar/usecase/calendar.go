package usecase

import (
	"context"
	"time"

	calendardto "tempo/internal/modules/calendar/dto"
	calendarin "tempo/internal/modules/calendar/port/in"
	calendarout "tempo/internal/modules/calendar/port/out"
	"tempo/internal/modules/calendar/service"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/id"
)

type Interactor struct {
	svc   *service.CalendarService
	auth  calendarout.Authorizer
	idGen id.Generator
}

func NewInteractor(svc *service.CalendarService, auth calendarout.Authorizer, idGen id.Generator) calendarin.Usecase {
	return &Interactor{svc: svc, auth: auth, idGen: idGen}
}

func (i *Interactor) FetchEvents(ctx context.Context, after time.Time) ([]calendardto.EventOutput, error) {
	if i.auth == nil || !i.auth.Authorized() {
		return nil, apperrors.ErrNotAuthorized
	}
	events, err := i.svc.FetchEvents(ctx, after)
	if err != nil {
		return nil, err
	}
	out := make([]calendardto.EventOutput, len(events))
	for n, ev := range events {
		out[n] = calendardto.EventOutput{ID: ev.ID, Summary: ev.Summary, Start: ev.Start, End: ev.End}
	}
	return out, nil
}

func (i *Interactor) Calendars(ctx context.Context) ([]calendardto.CalendarOutput, error) {
	if i.auth == nil || !i.auth.Authorized() {
		return nil, apperrors.ErrNotAuthorized
	}
	calendars, err := i.svc.Calendars(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]calendardto.CalendarOutput, len(calendars))
	for n, c := range calendars {
		out[n] = calendardto.CalendarOutput{ID: c.ID, Summary: c.Summary}
	}
	return out, nil
}

func (i *Interactor) AuthURL(_ context.Context) (calendardto.AuthOutput, error) {
	if i.auth == nil {
		return calendardto.AuthOutput{}, apperrors.ErrNotAuthorized
	}
	state := i.idGen.New()
	url, err := i.auth.AuthURL(state)
	if err != nil {
		return calendardto.AuthOutput{}, err
	}
	return calendardto.AuthOutput{URL: url, State: state}, nil
}

func (i *Interactor) Authorize(ctx context.Context, code string) error {
	if i.auth == nil {
		return apperrors.ErrNotAuthorized
	}
	if code == "" {
		return apperrors.ErrInvalidInput
	}
	return i.auth.Exchange(ctx, code)
}
