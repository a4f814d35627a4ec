package entities

import "time"

// ChangeOrderItem is one {name, amount} addition on a change order.
type ChangeOrderItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ChangeOrder is an additive amendment to an already-paid quote for extra
// work discovered mid-job. It never mutates the original quote's stored
// total or line items; downstream billing reconciles it separately.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (quote_id-index): quote_id
type ChangeOrder struct {
	ID      string            `json:"id"`
	QuoteID string            `json:"quote_id"`
	Items   []ChangeOrderItem `json:"items"`
	Reason  string            `json:"reason,omitempty"`

	// Amount is the sum of item amounts; NewTotal is the original quote
	// total plus Amount, recorded for the billing layer's convenience.
	Amount   float64 `json:"amount"`
	NewTotal float64 `json:"new_total"`

	CreatedAt time.Time `json:"created_at"`
}
