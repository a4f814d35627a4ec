package response

import (
	"time"

	"aerodetail/internal/domain/entities"
)

type LineItemResponse struct {
	ServiceID  string  `json:"service_id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Amount     float64 `json:"amount"`
	Included   bool    `json:"included,omitempty"`
}

type QuoteResponse struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`

	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	AircraftID    string `json:"aircraft_id"`
	AircraftLabel string `json:"aircraft_label"`

	ServiceIDs []string `json:"service_ids,omitempty"`
	PackageID  string   `json:"package_id,omitempty"`

	LineItems        []LineItemResponse `json:"line_items"`
	TotalHours       float64            `json:"total_hours"`
	CalculatedPrice  float64            `json:"calculated_price"`
	IsMinimumApplied bool               `json:"is_minimum_applied"`
	Total            float64            `json:"total"`
	LaborTotal       float64            `json:"labor_total"`
	ProductsTotal    float64            `json:"products_total"`
	PackageSavings   float64            `json:"package_savings,omitempty"`
	AccessDifficulty float64            `json:"access_difficulty"`

	JobLocation string `json:"job_location,omitempty"`
	Notes       string `json:"notes,omitempty"`
	ShareToken  string `json:"share_token"`

	Status        string     `json:"status"`
	ValidUntil    time.Time  `json:"valid_until"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ViewedAt    *time.Time `json:"viewed_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, LineItemResponse{
			ServiceID:  li.ServiceID,
			Name:       li.Name,
			Type:       string(li.Type),
			Hours:      li.Hours,
			HourlyRate: li.HourlyRate,
			Amount:     li.Amount,
			Included:   li.Included,
		})
	}
	return QuoteResponse{
		ID:               q.ID,
		AccountID:        q.AccountID,
		CustomerID:       q.CustomerID,
		CustomerName:     q.CustomerName,
		CustomerEmail:    q.CustomerEmail,
		CustomerPhone:    q.CustomerPhone,
		AircraftID:       q.AircraftID,
		AircraftLabel:    q.AircraftLabel,
		ServiceIDs:       q.ServiceIDs,
		PackageID:        q.PackageID,
		LineItems:        items,
		TotalHours:       q.TotalHours,
		CalculatedPrice:  q.CalculatedPrice,
		IsMinimumApplied: q.IsMinimumApplied,
		Total:            q.Total,
		LaborTotal:       q.LaborTotal,
		ProductsTotal:    q.ProductsTotal,
		PackageSavings:   q.PackageSavings,
		AccessDifficulty: q.AccessDifficulty,
		JobLocation:      q.JobLocation,
		Notes:            q.Notes,
		ShareToken:       q.ShareToken,
		Status:           string(q.Status),
		ValidUntil:       q.ValidUntil,
		ScheduledDate:    q.ScheduledDate,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
		SentAt:           q.SentAt,
		ViewedAt:         q.ViewedAt,
		PaidAt:           q.PaidAt,
		CompletedAt:      q.CompletedAt,
	}
}

// SharedQuoteResponse is the customer-facing view served by share links. It
// omits internal identifiers and operational notes.
type SharedQuoteResponse struct {
	CustomerName  string             `json:"customer_name,omitempty"`
	AircraftLabel string             `json:"aircraft_label"`
	LineItems     []LineItemResponse `json:"line_items"`
	TotalHours    float64            `json:"total_hours"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
	ValidUntil    time.Time          `json:"valid_until"`
}

func SharedFromQuote(q entities.Quote) SharedQuoteResponse {
	full := FromQuote(q)
	return SharedQuoteResponse{
		CustomerName:  full.CustomerName,
		AircraftLabel: full.AircraftLabel,
		LineItems:     full.LineItems,
		TotalHours:    full.TotalHours,
		Total:         full.Total,
		Status:        full.Status,
		ValidUntil:    full.ValidUntil,
	}
}
