package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"
)

var (
	ErrInvalidActualHours     = errors.New("actual hours must be greater than zero")
	ErrInvalidCompletionInput = errors.New("invalid completion input")
	ErrQuoteNotCompletable    = errors.New("quote must be paid before completion")
	ErrCompletionExists       = errors.New("completion record already exists for this quote")
	ErrCompletionNotFound     = errors.New("completion record not found")
)

// completableFrom lists the post-payment statuses a completion may close
// out. A job can be completed straight from paid when no scheduling step was
// recorded.
var completableFrom = []entities.QuoteStatus{
	entities.QuoteStatusPaid,
	entities.QuoteStatusScheduled,
	entities.QuoteStatusInProgress,
}

// CompletionInput is what the detailer logs when closing out a job.
type CompletionInput struct {
	ActualHours         float64
	ProductCost         float64
	WaitTimeMinutes     float64
	RepositioningNeeded bool
	CustomerLate        bool
	Issues              string
}

// IJobCompletionUseCase records actual-vs-quoted variance and drives the
// completed transition. The record and the status change happen atomically;
// a rejected completion leaves the quote untouched.

type IJobCompletionUseCase interface {
	Complete(ctx context.Context, quoteID string, in CompletionInput) (entities.JobCompletion, entities.Quote, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.JobCompletion, error)
}

type JobCompletionUseCase struct {
	completions interfaces.IJobCompletionRepository
	quotes      interfaces.IQuoteRepository
	now         func() time.Time
}

var _ IJobCompletionUseCase = (*JobCompletionUseCase)(nil)

func NewJobCompletionUseCase(completions interfaces.IJobCompletionRepository, quotes interfaces.IQuoteRepository) *JobCompletionUseCase {
	return &JobCompletionUseCase{completions: completions, quotes: quotes, now: time.Now}
}

func (u *JobCompletionUseCase) Complete(ctx context.Context, quoteID string, in CompletionInput) (entities.JobCompletion, entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.JobCompletion{}, entities.Quote{}, ErrInvalidQuoteID
	}
	if in.ActualHours <= 0 {
		return entities.JobCompletion{}, entities.Quote{}, ErrInvalidActualHours
	}
	if in.ProductCost < 0 || in.WaitTimeMinutes < 0 {
		return entities.JobCompletion{}, entities.Quote{}, ErrInvalidCompletionInput
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.JobCompletion{}, entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.JobCompletion{}, entities.Quote{}, ErrQuoteNotFound
	}
	if !completable(q.Status) {
		return entities.JobCompletion{}, entities.Quote{}, ErrQuoteNotCompletable
	}

	now := u.now().UTC()
	rec := entities.JobCompletion{
		QuoteID:             q.ID,
		ActualHours:         in.ActualHours,
		ProductCost:         in.ProductCost,
		WaitTimeMinutes:     in.WaitTimeMinutes,
		RepositioningNeeded: in.RepositioningNeeded,
		CustomerLate:        in.CustomerLate,
		Issues:              strings.TrimSpace(in.Issues),
		VarianceHours:       in.ActualHours - q.TotalHours,
		CreatedAt:           now,
	}

	updated, err := u.completions.CreateAndComplete(ctx, rec, completableFrom, now)
	if err != nil {
		return entities.JobCompletion{}, entities.Quote{}, err
	}
	if updated.ID == "" {
		// The transaction was cancelled; observe current state to report
		// the precise reason.
		if existing, err := u.completions.GetByQuoteID(ctx, q.ID); err == nil && existing.QuoteID != "" {
			return entities.JobCompletion{}, entities.Quote{}, ErrCompletionExists
		}
		current, err := u.quotes.GetByID(ctx, q.ID)
		if err != nil {
			return entities.JobCompletion{}, entities.Quote{}, err
		}
		if current.ID == "" {
			return entities.JobCompletion{}, entities.Quote{}, ErrQuoteNotFound
		}
		return entities.JobCompletion{}, entities.Quote{}, ErrQuoteNotCompletable
	}

	log.Printf("[completion][usecase] completed quote_id=%s actual_hours=%.2f variance_hours=%+.2f", updated.ID, rec.ActualHours, rec.VarianceHours)
	return rec, updated, nil
}

func (u *JobCompletionUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.JobCompletion, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.JobCompletion{}, ErrInvalidQuoteID
	}
	rec, err := u.completions.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.JobCompletion{}, err
	}
	if rec.QuoteID == "" {
		return entities.JobCompletion{}, ErrCompletionNotFound
	}
	return rec, nil
}

func completable(s entities.QuoteStatus) bool {
	for _, allowed := range completableFrom {
		if s == allowed {
			return true
		}
	}
	return false
}
