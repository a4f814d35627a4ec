package request

import (
	"strings"
	"time"
)

// CreateQuoteRequest is the payload for opening a new quote. ServiceIDs and
// PackageID are mutually exclusive; AccessDifficulty of zero means the
// standard preset.
type CreateQuoteRequest struct {
	AccountID     string `json:"account_id" binding:"required"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	AircraftID       string   `json:"aircraft_id" binding:"required"`
	ServiceIDs       []string `json:"service_ids"`
	PackageID        string   `json:"package_id"`
	AccessDifficulty float64  `json:"access_difficulty"`
	JobLocation      string   `json:"job_location"`
	Notes            string   `json:"notes"`
}

// ResolveServiceIDs drops blank entries so a sloppy client payload doesn't
// read as a manual selection.
func (r CreateQuoteRequest) ResolveServiceIDs() []string {
	var ids []string
	for _, id := range r.ServiceIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

type SendQuoteRequest struct {
	DestinationEmail string `json:"destination_email"`
}

type ScheduleQuoteRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}
