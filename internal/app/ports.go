package app

import (
	"context"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// PlanUseCase runs the full pipeline: validate, retrieve, refine, explain.
type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

// ProfileUseCase manages and queries the historical profile store.
type ProfileUseCase interface {
	Add(ctx context.Context, p *domain.HistoricalProfile) error
	List(ctx context.Context) ([]*domain.HistoricalProfile, error)
	SearchByMajor(ctx context.Context, major string) ([]*domain.HistoricalProfile, error)
	SearchByCollege(ctx context.Context, college string) ([]*domain.HistoricalProfile, error)
}

// OpportunityUseCase queries the opportunity store.
type OpportunityUseCase interface {
	List(ctx context.Context) ([]*domain.Opportunity, error)
	Relevant(ctx context.Context, grade domain.GradeLevel, interests []string) ([]*domain.Opportunity, error)
}
