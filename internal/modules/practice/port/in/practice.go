package in

import (
	"context"

	"tempo/internal/modules/practice/dto"
)

type Usecase interface {
	Snapshot(ctx context.Context) (dto.SeriesSnapshot, error)
	View(ctx context.Context, input dto.ViewInput) (dto.SeriesView, error)
	Refresh(ctx context.Context) (dto.RefreshOutput, error)
}
