package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/calendar/domain"
	"tempo/internal/modules/calendar/service"
	"tempo/internal/modules/calendar/usecase"
	apperrors "tempo/internal/platform/errors"
)

type fakeAuthorizer struct {
	authorized bool
	url        string
	lastState  string
	exchanged  string
	err        error
}

func (f *fakeAuthorizer) AuthURL(state string) (string, error) {
	f.lastState = state
	return f.url, f.err
}

func (f *fakeAuthorizer) Exchange(_ context.Context, code string) error {
	f.exchanged = code
	return f.err
}

func (f *fakeAuthorizer) Authorized() bool { return f.authorized }

type fakeID struct{ value string }

func (f fakeID) New() string { return f.value }

type stubEventsAPI struct{}

func (stubEventsAPI) Calendars(context.Context) ([]domain.Calendar, error) {
	return []domain.Calendar{{ID: "c1", Summary: "Practice"}}, nil
}

func (stubEventsAPI) Events(context.Context, string, time.Time) ([]domain.Event, error) {
	start := time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
	return []domain.Event{{ID: "ev-1", Start: start, End: start.Add(time.Hour)}}, nil
}

func TestFetchEventsRequiresAuthorization(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewCalendarService(stubEventsAPI{}, "Practice"),
		&fakeAuthorizer{authorized: false},
		fakeID{value: "state-1"},
	)

	if _, err := uc.FetchEvents(context.Background(), time.Time{}); !errors.Is(err, apperrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if _, err := uc.Calendars(context.Background()); !errors.Is(err, apperrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestFetchEventsMapsDomainEvents(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewCalendarService(stubEventsAPI{}, "Practice"),
		&fakeAuthorizer{authorized: true},
		fakeID{value: "state-1"},
	)

	events, err := uc.FetchEvents(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("FetchEvents: %v", err)
	}
	if len(events) != 1 || events[0].ID != "ev-1" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if !events[0].End.After(events[0].Start) {
		t.Fatalf("event times not mapped: %+v", events[0])
	}
}

func TestAuthURLCarriesGeneratedState(t *testing.T) {
	t.Parallel()
	auth := &fakeAuthorizer{url: "https://accounts.example/consent"}
	uc := usecase.NewInteractor(
		service.NewCalendarService(stubEventsAPI{}, "Practice"),
		auth,
		fakeID{value: "nonce-42"},
	)

	out, err := uc.AuthURL(context.Background())
	if err != nil {
		t.Fatalf("AuthURL: %v", err)
	}
	if out.State != "nonce-42" || auth.lastState != "nonce-42" {
		t.Fatalf("state nonce not threaded through: %+v / %q", out, auth.lastState)
	}
	if out.URL != "https://accounts.example/consent" {
		t.Fatalf("unexpected URL: %q", out.URL)
	}
}

func TestAuthorizeRejectsEmptyCode(t *testing.T) {
	t.Parallel()
	auth := &fakeAuthorizer{}
	uc := usecase.NewInteractor(
		service.NewCalendarService(stubEventsAPI{}, "Practice"),
		auth,
		fakeID{value: "state-1"},
	)

	if err := uc.Authorize(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := uc.Authorize(context.Background(), "code-1"); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if auth.exchanged != "code-1" {
		t.Fatalf("code not forwarded to the authorizer: %q", auth.exchanged)
	}
}
