package in

import (
	"context"
	"time"

	"tempo/internal/modules/calendar/dto"
)

type Usecase interface {
	FetchEvents(ctx context.Context, after time.Time) ([]dto.EventOutput, error)
	Calendars(ctx context.Context) ([]dto.CalendarOutput, error)
	AuthURL(ctx context.Context) (dto.AuthOutput, error)
	Authorize(ctx context.Context, code string) error
}
