package interfaces

import (
	"context"

	"aerodetail/internal/domain/entities"
)

// INotifier abstracts the email/SMS collaborator. The engine hands it a
// self-contained quote snapshot; template rendering and delivery mechanics
// live outside this service.
type INotifier interface {
	// SendQuote delivers a quote to the customer. A send transition is only
	// recorded after this succeeds.
	SendQuote(ctx context.Context, snapshot entities.QuoteSnapshot) error

	// NotifyQuoteRequested tells the detailer a customer wants a fresh
	// quote to replace an expired one.
	NotifyQuoteRequested(ctx context.Context, quote entities.Quote) error
}
