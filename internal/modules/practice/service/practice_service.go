package service

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/practice/domain"
	practiceout "tempo/internal/modules/practice/port/out"
	"tempo/internal/platform/clock"
)

type PracticeService struct {
	clock   clock.Clock
	dataset practiceout.DatasetStore
}

func NewPracticeService(clock clock.Clock, dataset practiceout.DatasetStore) *PracticeService {
	return &PracticeService{clock: clock, dataset: dataset}
}

// LoadDataset reads the static session collection and returns it sorted by
// start time ascending.
func (s *PracticeService) LoadDataset(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.dataset.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	domain.SortSessions(sessions)
	return sessions, nil
}

func (s *PracticeService) Merge(existing, fetched []domain.Session) ([]domain.Session, int, int) {
	merged, added, duplicates := domain.MergeSessions(existing, fetched)
	return merged, added, duplicates
}

// Series derives the day-series for the collection as of the current day.
func (s *PracticeService) Series(sessions []domain.Session) []domain.DayEntry {
	return domain.BuildDaySeries(sessions, s.clock.Now())
}

func (s *PracticeService) Now() time.Time {
	return s.clock.Now()
}
