package usecase

import (
	"context"
	"sync"
	"time"

	calendarin "tempo/internal/modules/calendar/port/in"
	"tempo/internal/modules/practice/domain"
	practicedto "tempo/internal/modules/practice/dto"
	practicein "tempo/internal/modules/practice/port/in"
	"tempo/internal/modules/practice/service"
	apperrors "tempo/internal/platform/errors"
)

// Interactor holds the current session collection as an immutable snapshot.
// Refresh builds a new collection and swaps it in wholesale; there is no
// partial-merge state to observe. The mutex serializes the swap against
// concurrent reads: the TUI runs Refresh and View on separate command
// goroutines, so the busy flag alone cannot order them.
type Interactor struct {
	svc      *service.PracticeService
	calendar calendarin.Usecase
	cutoff   time.Time

	mu       sync.Mutex
	sessions []domain.Session
	loaded   bool
}

func NewInteractor(svc *service.PracticeService, calendar calendarin.Usecase, cutoff time.Time) practicein.Usecase {
	return &Interactor{svc: svc, calendar: calendar, cutoff: cutoff}
}

func (i *Interactor) Snapshot(ctx context.Context) (practicedto.SeriesSnapshot, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return practicedto.SeriesSnapshot{}, err
	}
	return i.snapshot(), nil
}

func (i *Interactor) View(ctx context.Context, input practicedto.ViewInput) (practicedto.SeriesView, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return practicedto.SeriesView{}, err
	}
	r, err := domain.ParseRange(input.Range)
	if err != nil {
		return practicedto.SeriesView{}, err
	}

	entries := domain.FilterSeries(i.svc.Series(i.sessions), r, i.svc.Now())
	trend := domain.SeriesTrend(entries)
	view := practicedto.SeriesView{
		Range:    r.Label(),
		Entries:  toEntryOutputs(entries),
		Delta:    trend.Delta,
		Positive: trend.Positive,
	}
	if len(entries) > 0 {
		view.First = entries[0].AvgSec
		view.Last = entries[len(entries)-1].AvgSec
	}
	return view, nil
}

// Refresh fetches calendar events recorded after the cutoff and merges them
// into the collection. Any fetch error leaves the previous snapshot intact.
// The fetch runs unlocked so concurrent reads keep serving the prior
// snapshot; only the wholesale swap takes the mutex.
func (i *Interactor) Refresh(ctx context.Context) (practicedto.RefreshOutput, error) {
	i.mu.Lock()
	if err := i.ensureLoaded(ctx); err != nil {
		i.mu.Unlock()
		return practicedto.RefreshOutput{}, err
	}
	i.mu.Unlock()

	if i.calendar == nil {
		return practicedto.RefreshOutput{}, apperrors.ErrNotAuthorized
	}

	events, err := i.calendar.FetchEvents(ctx, i.cutoff)
	if err != nil {
		return practicedto.RefreshOutput{}, err
	}

	fetched := make([]domain.Session, 0, len(events))
	for _, ev := range events {
		duration := int(ev.End.Sub(ev.Start).Seconds())
		if duration < 0 {
			duration = 0
		}
		fetched = append(fetched, domain.Session{
			ID:          domain.CalendarSessionID(ev.ID),
			StartedAt:   ev.Start,
			DurationSec: duration,
			Source:      domain.SourceCalendar,
		})
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	merged, added, duplicates := i.svc.Merge(i.sessions, fetched)
	i.sessions = merged

	return practicedto.RefreshOutput{
		Fetched:    len(fetched),
		Added:      added,
		Duplicates: duplicates,
		Snapshot:   i.snapshot(),
	}, nil
}

// ensureLoaded lazily reads the static dataset. Callers hold mu.
func (i *Interactor) ensureLoaded(ctx context.Context) error {
	if i.loaded {
		return nil
	}
	sessions, err := i.svc.LoadDataset(ctx)
	if err != nil {
		return err
	}
	i.sessions = sessions
	i.loaded = true
	return nil
}

func (i *Interactor) snapshot() practicedto.SeriesSnapshot {
	out := practicedto.SeriesSnapshot{
		Sessions:    make([]practicedto.SessionOutput, len(i.sessions)),
		Entries:     toEntryOutputs(i.svc.Series(i.sessions)),
		GeneratedAt: i.svc.Now(),
	}
	for n, s := range i.sessions {
		out.Sessions[n] = practicedto.SessionOutput{
			ID:          s.ID,
			StartedAt:   s.StartedAt,
			DurationSec: s.DurationSec,
			Source:      string(s.Source),
		}
	}
	return out
}

func toEntryOutputs(entries []domain.DayEntry) []practicedto.DayEntryOutput {
	out := make([]practicedto.DayEntryOutput, len(entries))
	for n, e := range entries {
		out[n] = practicedto.DayEntryOutput{
			Date:     e.Date,
			Display:  e.Display,
			TotalSec: e.TotalSec,
			AvgSec:   e.AvgSec,
		}
	}
	return out
}
