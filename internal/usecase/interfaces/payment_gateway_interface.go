package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The engine passes the amount to charge and the quote id for
// reconciliation; the provider response payload is persisted for
// traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, quoteID string, amount float64, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
