package request

// JobCompletionRequest closes out a job. ActualHours is required and must be
// positive; everything else is optional operational detail.
type JobCompletionRequest struct {
	ActualHours         float64 `json:"actual_hours"`
	ProductCost         float64 `json:"product_cost"`
	WaitTimeMinutes     float64 `json:"wait_time_minutes"`
	RepositioningNeeded bool    `json:"repositioning_needed"`
	CustomerLate        bool    `json:"customer_late"`
	Issues              string  `json:"issues"`
}
