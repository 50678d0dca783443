package in

import (
	"context"

	calendardto "tempo/internal/modules/calendar/dto"
	calendarin "tempo/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AuthURL(ctx context.Context) (calendardto.AuthOutput, error) {
	return h.usecase.AuthURL(ctx)
}

func (h CLIHandler) Authorize(ctx context.Context, code string) error {
	return h.usecase.Authorize(ctx, code)
}

func (h CLIHandler) Calendars(ctx context.Context) ([]calendardto.CalendarOutput, error) {
	return h.usecase.Calendars(ctx)
}
