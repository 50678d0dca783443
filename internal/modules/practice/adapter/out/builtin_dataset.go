package out

import (
	"context"
	"time"

	"tempo/internal/modules/practice/domain"
	practiceout "tempo/internal/modules/practice/port/out"
)

// BuiltinDatasetStore serves the seed dataset used when no dataset file is
// configured: the practice log kept by hand before calendar tracking began.
type BuiltinDatasetStore struct{}

func NewBuiltinDatasetStore() practiceout.DatasetStore {
	return BuiltinDatasetStore{}
}

type seedRecord struct {
	startedAt   string
	durationSec int
}

var seedDataset = []seedRecord{
	{"2026-06-02T18:30:00Z", 3600},
	{"2026-06-03T19:00:00Z", 2700},
	{"2026-06-05T18:15:00Z", 4500},
	{"2026-06-08T20:00:00Z", 1800},
	{"2026-06-09T18:45:00Z", 3600},
	{"2026-06-12T19:30:00Z", 5400},
	{"2026-06-15T18:00:00Z", 2400},
	{"2026-06-17T18:30:00Z", 3000},
	{"2026-06-20T10:00:00Z", 7200},
	{"2026-06-23T19:15:00Z", 2700},
	{"2026-06-26T18:30:00Z", 3600},
	{"2026-06-29T20:30:00Z", 1500},
}

func (BuiltinDatasetStore) Load(_ context.Context) ([]domain.Session, error) {
	sessions := make([]domain.Session, 0, len(seedDataset))
	for _, rec := range seedDataset {
		start, err := time.Parse(time.RFC3339, rec.startedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, domain.Session{
			ID:          domain.DatasetSessionID(start),
			StartedAt:   start,
			DurationSec: rec.durationSec,
			Source:      domain.SourceDataset,
		})
	}
	return sessions, nil
}
