package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/platform/textnorm"
)

type CoachDetail struct {
	Coach         coach.Coach
	Impact        coach.Impact
	ImpactHistory []coach.ImpactRecord
}

type CoachService struct {
	coachRepo coach.Repository
	provider  FootballProvider
	fallback  fallback
}

func NewCoachService(
	coachRepo coach.Repository,
	provider FootballProvider,
	resolver *datamode.Resolver,
	logger *logging.Logger,
) *CoachService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CoachService{
		coachRepo: coachRepo,
		provider:  provider,
		fallback:  fallback{resolver: resolver, logger: logger},
	}
}

// Search returns coaches whose name contains q. Upstream mode needs a
// non-empty q and returns nothing without one.
func (s *CoachService) Search(ctx context.Context, q string) ([]coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Search")
	defer span.End()

	coaches, err := s.list(ctx, q)
	if err != nil {
		return nil, err
	}

	needle := textnorm.Normalize(q)
	if needle == "" {
		return coaches, nil
	}
	out := make([]coach.Coach, 0, len(coaches))
	for _, c := range coaches {
		if textnorm.Contains(c.Nome, needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CoachService) Get(ctx context.Context, coachID int) (CoachDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Get")
	defer span.End()

	item, found, err := s.find(ctx, coachID)
	if err != nil {
		return CoachDetail{}, err
	}
	if !found {
		return CoachDetail{}, notFound("Treinador não encontrado")
	}

	history := coach.ImpactHistory(item.ID)
	return CoachDetail{
		Coach:         item,
		Impact:        coach.LastImpact(history),
		ImpactHistory: history,
	}, nil
}

func (s *CoachService) list(ctx context.Context, q string) ([]coach.Coach, error) {
	if !s.fallback.upstream() {
		return s.listLocal(ctx)
	}

	q = strings.TrimSpace(q)
	if q == "" {
		s.fallback.succeeded(ctx)
		return []coach.Coach{}, nil
	}

	coaches, err := s.provider.SearchCoaches(ctx, q)
	if err != nil {
		if s.fallback.absorb(ctx, "coaches", err) {
			return s.listLocal(ctx)
		}
		return nil, err
	}
	s.fallback.succeeded(ctx)
	return coaches, nil
}

func (s *CoachService) find(ctx context.Context, coachID int) (coach.Coach, bool, error) {
	if s.fallback.upstream() {
		item, found, err := s.provider.CoachByID(ctx, coachID)
		switch {
		case err == nil:
			s.fallback.succeeded(ctx)
			return item, found, nil
		case !s.fallback.absorb(ctx, "coach", err):
			return coach.Coach{}, false, err
		}
	}

	coaches, err := s.listLocal(ctx)
	if err != nil {
		return coach.Coach{}, false, err
	}
	for _, c := range coaches {
		if c.ID == coachID {
			return c, true, nil
		}
	}
	return coach.Coach{}, false, nil
}

func (s *CoachService) listLocal(ctx context.Context) ([]coach.Coach, error) {
	coaches, err := s.coachRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local coaches: %w", err)
	}
	return coaches, nil
}
