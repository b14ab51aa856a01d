package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lodestar/internal/app"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/alexanderramin/lodestar/internal/match"
	"github.com/alexanderramin/lodestar/internal/repository"
)

// ProfileService implements app.ProfileUseCase over the history store.
type ProfileService struct {
	history  repository.HistoryRepo
	observer UseCaseObserver
}

func NewProfileService(history repository.HistoryRepo, observers ...UseCaseObserver) *ProfileService {
	return &ProfileService{history: history, observer: useCaseObserverOrNoop(observers)}
}

var _ app.ProfileUseCase = (*ProfileService)(nil)

func (s *ProfileService) Add(ctx context.Context, p *domain.HistoricalProfile) error {
	start := time.Now()
	err := s.history.Append(ctx, p)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "profile_add",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
	})
	return err
}

func (s *ProfileService) List(ctx context.Context) ([]*domain.HistoricalProfile, error) {
	return s.history.ListAll(ctx)
}

func (s *ProfileService) SearchByMajor(ctx context.Context, major string) ([]*domain.HistoricalProfile, error) {
	profiles, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return match.NewIndex(profiles).SearchByMajor(major), nil
}

func (s *ProfileService) SearchByCollege(ctx context.Context, college string) ([]*domain.HistoricalProfile, error) {
	profiles, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return match.NewIndex(profiles).SearchByCollege(college), nil
}

// OpportunityService implements app.OpportunityUseCase over the
// opportunity store.
type OpportunityService struct {
	opportunities repository.OpportunityRepo
}

func NewOpportunityService(opportunities repository.OpportunityRepo) *OpportunityService {
	return &OpportunityService{opportunities: opportunities}
}

var _ app.OpportunityUseCase = (*OpportunityService)(nil)

func (s *OpportunityService) List(ctx context.Context) ([]*domain.Opportunity, error) {
	return s.opportunities.ListAll(ctx)
}

func (s *OpportunityService) Relevant(ctx context.Context, grade domain.GradeLevel, interests []string) ([]*domain.Opportunity, error) {
	opps, err := s.opportunities.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return match.NewOpportunityFilter(opps).Relevant(grade, interests), nil
}
