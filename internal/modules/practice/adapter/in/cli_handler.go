package in

import (
	"context"

	practicedto "tempo/internal/modules/practice/dto"
	practicein "tempo/internal/modules/practice/port/in"
)

type CLIHandler struct {
	usecase practicein.Usecase
}

func NewCLIHandler(usecase practicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Snapshot(ctx context.Context) (practicedto.SeriesSnapshot, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) View(ctx context.Context, rangeLabel string) (practicedto.SeriesView, error) {
	return h.usecase.View(ctx, practicedto.ViewInput{Range: rangeLabel})
}

func (h CLIHandler) Refresh(ctx context.Context) (practicedto.RefreshOutput, error) {
	return h.usecase.Refresh(ctx)
}
