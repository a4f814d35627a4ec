package entities

import "time"

// QuoteSnapshot is the outbound contract handed to the notification
// collaborator: enough to render an email/SMS without reading the store.
type QuoteSnapshot struct {
	QuoteID       string     `json:"quote_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	AircraftLabel string     `json:"aircraft_label"`
	LineItems     []LineItem `json:"line_items"`
	Total         float64    `json:"total"`
	ValidUntil    time.Time  `json:"valid_until"`
	ShareToken    string     `json:"share_token"`
	Notes         string     `json:"notes,omitempty"`
}

// SnapshotForNotification builds the notification payload from a quote.
func (q Quote) SnapshotForNotification() QuoteSnapshot {
	return QuoteSnapshot{
		QuoteID:       q.ID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		AircraftLabel: q.AircraftLabel,
		LineItems:     q.LineItems,
		Total:         q.Total,
		ValidUntil:    q.ValidUntil,
		ShareToken:    q.ShareToken,
		Notes:         q.Notes,
	}
}
