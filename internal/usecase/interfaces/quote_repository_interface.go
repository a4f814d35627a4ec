package interfaces

import (
	"context"
	"time"

	"aerodetail/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Concurrency contract: every status-changing call is a compare-and-set on
// the stored status. When the condition fails (another writer won the race,
// or the id does not exist) the call returns a zero-ID quote and a nil
// error; the caller re-reads and re-validates instead of overwriting.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByShareToken(ctx context.Context, token string) (entities.Quote, error)

	// TransitionStatus moves the quote from one of the expected statuses to
	// the target status, stamping the matching timestamp field (sent_at,
	// paid_at) for transitions that carry one.
	TransitionStatus(ctx context.Context, id string, from []entities.QuoteStatus, to entities.QuoteStatus, at time.Time) (entities.Quote, error)

	// MarkViewed records the first viewed event; re-observations are
	// no-ops that return the current quote unchanged.
	MarkViewed(ctx context.Context, id string, at time.Time) (entities.Quote, error)

	// Schedule moves a paid quote to scheduled and stores the job date.
	Schedule(ctx context.Context, id string, date time.Time, at time.Time) (entities.Quote, error)
}
