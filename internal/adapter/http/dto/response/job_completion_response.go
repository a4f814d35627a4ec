package response

import (
	"time"

	"aerodetail/internal/domain/entities"
)

type JobCompletionResponse struct {
	QuoteID             string    `json:"quote_id"`
	QuoteStatus         string    `json:"quote_status,omitempty"`
	ActualHours         float64   `json:"actual_hours"`
	ProductCost         float64   `json:"product_cost"`
	WaitTimeMinutes     float64   `json:"wait_time_minutes"`
	RepositioningNeeded bool      `json:"repositioning_needed"`
	CustomerLate        bool      `json:"customer_late"`
	Issues              string    `json:"issues,omitempty"`
	VarianceHours       float64   `json:"variance_hours"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromJobCompletion(rec entities.JobCompletion, quoteStatus entities.QuoteStatus) JobCompletionResponse {
	return JobCompletionResponse{
		QuoteID:             rec.QuoteID,
		QuoteStatus:         string(quoteStatus),
		ActualHours:         rec.ActualHours,
		ProductCost:         rec.ProductCost,
		WaitTimeMinutes:     rec.WaitTimeMinutes,
		RepositioningNeeded: rec.RepositioningNeeded,
		CustomerLate:        rec.CustomerLate,
		Issues:              rec.Issues,
		VarianceHours:       rec.VarianceHours,
		CreatedAt:           rec.CreatedAt,
	}
}
