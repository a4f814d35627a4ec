package interfaces

import (
	"context"

	"aerodetail/internal/domain/entities"
)

// IRecommendationRepository abstracts DynamoDB persistence for
// Recommendation rows keyed by account.

type IRecommendationRepository interface {
	CreateBatch(ctx context.Context, recs []entities.Recommendation) ([]entities.Recommendation, error)
	ListByAccountID(ctx context.Context, accountID string) ([]entities.Recommendation, error)
	MarkActedOn(ctx context.Context, id string) (entities.Recommendation, error)
	Dismiss(ctx context.Context, id string) (entities.Recommendation, error)
}

// IAccountStatsRepository aggregates quote/completion history into the
// scorer's input.

type IAccountStatsRepository interface {
	Stats(ctx context.Context, accountID string) (entities.AccountStats, error)
}
