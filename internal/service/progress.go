package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/pkg/apperr"
	"exusiai.dev/roadmap-tracker/internal/pkg/observability"
	"exusiai.dev/roadmap-tracker/internal/repo"
	"exusiai.dev/roadmap-tracker/internal/util"
)

const storageTimeout = time.Second * 5

// Progress owns the in-memory progress store. Every mutation is applied under
// mu, published, then written to the storage slot before the lock is released.
// Storage failures are logged and counted but never fail the mutation.
type Progress struct {
	CatalogRepo  *repo.Catalog
	ProgressRepo *repo.Progress

	mu      sync.Mutex
	current model.Progress
}

func NewProgress(catalogRepo *repo.Catalog, progressRepo *repo.Progress) *Progress {
	s := &Progress{
		CatalogRepo:  catalogRepo,
		ProgressRepo: progressRepo,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	s.current = s.load(ctx)
	s.observe(s.current)

	return s
}

// GetProgress returns the current progress. The value is never modified after
// it is returned; callers must not modify it either.
func (s *Progress) GetProgress() model.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ToggleDay flips one day of a catalog week.
func (s *Progress) ToggleDay(ctx context.Context, phaseID string, weekID, day int) (*model.WeekOverview, error) {
	week, err := s.findWeek(phaseID, weekID)
	if err != nil {
		return nil, err
	}
	if day < 0 || day >= len(week.Days) {
		return nil, apperr.ErrInvalidReq.Msg("day %d is out of range for week %d, which has %d days", day, weekID, len(week.Days))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, "toggle_day", s.current.ToggleDay(phaseID, weekID, day))

	return util.BuildWeekOverview(phaseID, week, s.current), nil
}

// ToggleWeek sets every day of a catalog week to completed.
func (s *Progress) ToggleWeek(ctx context.Context, phaseID string, weekID int, completed bool) (*model.WeekOverview, error) {
	week, err := s.findWeek(phaseID, weekID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, "toggle_week", s.current.SetWeek(phaseID, weekID, len(week.Days), completed))

	return util.BuildWeekOverview(phaseID, week, s.current), nil
}

// Reset clears all progress and removes the saved slot. It refuses to do
// anything unless confirmed is true.
func (s *Progress) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return apperr.ErrConfirmationRequired.Msg("reset all progress? confirm explicitly to proceed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = model.NewProgress()
	observability.Mutations.WithLabelValues("reset").Inc()

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.ProgressRepo.DeleteProgress(ctx); err != nil {
		observability.StorageFailures.WithLabelValues("delete").Inc()
		log.Warn().Err(err).Str("evt.name", "storage.delete.failed").Msg("failed to remove saved progress")
	}
	s.observe(s.current)

	log.Info().Str("evt.name", "progress.reset").Msg("progress has been reset")
	return nil
}

func (s *Progress) Overview(query string) *model.Overview {
	return util.BuildOverview(s.CatalogRepo.GetCatalog(), s.GetProgress(), query)
}

func (s *Progress) PhaseOverview(phaseID, query string) (*model.PhaseOverview, error) {
	phase := s.CatalogRepo.GetCatalog().Phase(phaseID)
	if phase == nil {
		return nil, apperr.ErrNotFound.Msg("phase %q not found", phaseID)
	}
	return util.BuildPhaseOverview(phase, s.GetProgress(), query), nil
}

func (s *Progress) findWeek(phaseID string, weekID int) (*model.Week, error) {
	phase, week := s.CatalogRepo.GetCatalog().Week(phaseID, weekID)
	if phase == nil {
		return nil, apperr.ErrNotFound.Msg("phase %q not found", phaseID)
	}
	if week == nil {
		return nil, apperr.ErrNotFound.Msg("week %d not found in %s", weekID, phaseID)
	}
	return week, nil
}

// commit publishes next and persists it. Callers hold mu.
func (s *Progress) commit(ctx context.Context, kind string, next model.Progress) {
	s.current = next
	observability.Mutations.WithLabelValues(kind).Inc()
	s.save(ctx, next)
	s.observe(next)
}

func (s *Progress) load(ctx context.Context) model.Progress {
	p, err := s.ProgressRepo.GetProgress(ctx)
	if err != nil {
		observability.StorageFailures.WithLabelValues("load").Inc()
		log.Warn().Err(err).Str("evt.name", "storage.load.failed").Msg("failed to load saved progress, starting empty")
		return model.NewProgress()
	}
	return p
}

func (s *Progress) save(ctx context.Context, p model.Progress) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.ProgressRepo.SaveProgress(ctx, p); err != nil {
		observability.StorageFailures.WithLabelValues("save").Inc()
		log.Warn().Err(err).Str("evt.name", "storage.save.failed").Msg("failed to save progress, keeping in-memory state only")
	}
}

func (s *Progress) observe(p model.Progress) {
	catalog := s.CatalogRepo.GetCatalog()
	set := func(phase string, c model.Completion) {
		observability.CompletedDays.WithLabelValues(phase).Set(float64(c.Completed))
		observability.TotalDays.WithLabelValues(phase).Set(float64(c.Total))
		observability.CompletionPercent.WithLabelValues(phase).Set(float64(c.Percent()))
	}
	for _, phase := range catalog.Phases {
		set(phase.ID, util.PhaseCompletion(phase, p))
	}
	set(observability.PhaseAll, util.GlobalCompletion(catalog, p))
}
