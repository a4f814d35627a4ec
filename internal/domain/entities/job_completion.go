package entities

import "time"

// JobCompletion captures actual-vs-quoted variance at the completed
// transition. Exactly one record exists per quote and it is immutable once
// written.
//
// Storage model (DynamoDB):
//   - PK: quote_id (one-to-one with the quote)
type JobCompletion struct {
	QuoteID             string  `json:"quote_id"`
	ActualHours         float64 `json:"actual_hours"`
	ProductCost         float64 `json:"product_cost"`
	WaitTimeMinutes     float64 `json:"wait_time_minutes"`
	RepositioningNeeded bool    `json:"repositioning_needed"`
	CustomerLate        bool    `json:"customer_late"`
	Issues              string  `json:"issues,omitempty"`

	// VarianceHours = actual hours - quoted total hours; positive means the
	// job ran long. Feeds pricing-drift analysis.
	VarianceHours float64 `json:"variance_hours"`

	CreatedAt time.Time `json:"created_at"`
}
