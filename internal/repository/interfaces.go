package repository

import (
	"context"

	"github.com/alexanderramin/lodestar/internal/domain"
)

// HistoryRepo is the historical profile store. ListAll returns profiles in
// insertion order; the similarity index depends on that order for stable
// tie-breaks.
type HistoryRepo interface {
	Append(ctx context.Context, p *domain.HistoricalProfile) error
	ListAll(ctx context.Context) ([]*domain.HistoricalProfile, error)
}

// OpportunityRepo is the opportunity reference-data store, insertion-order
// preserving like HistoryRepo.
type OpportunityRepo interface {
	Append(ctx context.Context, o *domain.Opportunity) error
	ListAll(ctx context.Context) ([]*domain.Opportunity, error)
}
