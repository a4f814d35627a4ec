package entities

import "time"

// RecommendationType identifies the operational suggestion category.

type RecommendationType string

const (
	RecommendationRateIncrease    RecommendationType = "rate_increase"
	RecommendationProblemCustomer RecommendationType = "problem_customer"
	RecommendationPaymentTerms    RecommendationType = "payment_terms"
	RecommendationTimeAccuracy    RecommendationType = "time_accuracy"
	RecommendationUpsell          RecommendationType = "upsell"
)

// RecommendationTTL is how long a generated recommendation stays active.
const RecommendationTTL = 7 * 24 * time.Hour

// Recommendation is a prioritized operational suggestion derived from quote
// and customer history. Higher priority means more urgent.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (account_id-index): account_id
type Recommendation struct {
	ID        string             `json:"id"`
	AccountID string             `json:"account_id"`
	Type      RecommendationType `json:"type"`
	Priority  int                `json:"priority"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`

	// Data is a structured payload the caller acts on, e.g. pre-filling a
	// rate-increase form.
	Data map[string]any `json:"data,omitempty"`

	ActedOn   bool      `json:"acted_on"`
	Dismissed bool      `json:"dismissed"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsActive reports whether the recommendation still counts against the
// regeneration guard: not expired, not acted on, not dismissed.
func (r Recommendation) IsActive(now time.Time) bool {
	return !r.ActedOn && !r.Dismissed && now.Before(r.ExpiresAt)
}

// CustomerStats aggregates one customer's quote/job history for scoring.
type CustomerStats struct {
	CustomerID           string     `json:"customer_id"`
	CustomerName         string     `json:"customer_name"`
	TotalJobs            int        `json:"total_jobs"`
	LastRateIncreaseDate *time.Time `json:"last_rate_increase_date,omitempty"`
	TotalWaitTimeMinutes float64    `json:"total_wait_time_minutes"`
	RepositioningEvents  int        `json:"repositioning_events"`
	AvgDaysToPay         float64    `json:"avg_days_to_pay"`
	UsedExterior         bool       `json:"used_exterior"`
	UsedInterior         bool       `json:"used_interior"`
}

// CompletionSample pairs quoted and actual hours from one completed job.
type CompletionSample struct {
	QuoteID     string  `json:"quote_id"`
	QuotedHours float64 `json:"quoted_hours"`
	ActualHours float64 `json:"actual_hours"`
}

// AccountStats is the aggregated input the recommendation scorer consumes.
type AccountStats struct {
	AccountID         string             `json:"account_id"`
	LaborRate         float64            `json:"labor_rate"`
	Customers         []CustomerStats    `json:"customers"`
	CompletionSamples []CompletionSample `json:"completion_samples"`
}
