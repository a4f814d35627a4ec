package interfaces

import (
	"context"

	"aerodetail/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.
// Change orders are append-only; the original quote row is never touched.

type IChangeOrderRepository interface {
	Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ChangeOrder, error)
}
