package out

import (
	"context"

	"tempo/internal/modules/practice/domain"
)

// DatasetStore supplies the static session dataset at initialization.
type DatasetStore interface {
	Load(ctx context.Context) ([]domain.Session, error)
}
