package interfaces

import (
	"context"
	"time"

	"aerodetail/internal/domain/entities"
)

// IJobCompletionRepository abstracts DynamoDB persistence for JobCompletion.
//
// CreateAndComplete writes the completion record and moves the quote to
// completed in one transaction: either both happen or neither does. A zero-ID
// quote with a nil error means the transaction was cancelled (quote missing,
// not in an allowed status, or a record already exists).

type IJobCompletionRepository interface {
	CreateAndComplete(ctx context.Context, rec entities.JobCompletion, allowedFrom []entities.QuoteStatus, completedAt time.Time) (entities.Quote, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.JobCompletion, error)
}
