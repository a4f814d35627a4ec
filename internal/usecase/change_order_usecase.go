package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoValidChangeOrderItems = errors.New("change order has no valid line items")
	ErrQuoteNotPaid            = errors.New("change orders require a paid quote")
)

// IChangeOrderUseCase appends extra work to an already-paid quote.
//
// The change order is an additive ledger entry: the original quote's total
// and line items are never rewritten. Downstream billing reconciles the
// additional amount separately.

type IChangeOrderUseCase interface {
	Create(ctx context.Context, quoteID string, items []entities.ChangeOrderItem, reason string) (entities.ChangeOrder, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ChangeOrder, error)
}

type ChangeOrderUseCase struct {
	changeOrders interfaces.IChangeOrderRepository
	quotes       interfaces.IQuoteRepository
	now          func() time.Time
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(changeOrders interfaces.IChangeOrderRepository, quotes interfaces.IQuoteRepository) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{changeOrders: changeOrders, quotes: quotes, now: time.Now}
}

func (u *ChangeOrderUseCase) Create(ctx context.Context, quoteID string, items []entities.ChangeOrderItem, reason string) (entities.ChangeOrder, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ChangeOrder{}, ErrInvalidQuoteID
	}

	// Entries missing a name or amount are discarded, not rejected.
	var valid []entities.ChangeOrderItem
	var additional float64
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" || item.Amount <= 0 {
			continue
		}
		valid = append(valid, item)
		additional += item.Amount
	}
	if len(valid) == 0 {
		return entities.ChangeOrder{}, ErrNoValidChangeOrderItems
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if q.ID == "" {
		return entities.ChangeOrder{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusPaid {
		return entities.ChangeOrder{}, ErrQuoteNotPaid
	}

	co := entities.ChangeOrder{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		Items:     valid,
		Reason:    strings.TrimSpace(reason),
		Amount:    additional,
		NewTotal:  q.Total + additional,
		CreatedAt: u.now().UTC(),
	}

	created, err := u.changeOrders.Create(ctx, co)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	log.Printf("[changeorder][usecase] created change_order_id=%s quote_id=%s amount=%.2f new_total=%.2f", created.ID, created.QuoteID, created.Amount, created.NewTotal)
	return created, nil
}

func (u *ChangeOrderUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ChangeOrder, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.changeOrders.ListByQuoteID(ctx, quoteID)
}
