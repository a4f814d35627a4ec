package response

import (
	"time"

	"aerodetail/internal/domain/entities"
)

type PaymentResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      p.ID,
		QuoteID: p.QuoteID,
		Amount:  p.Amount,
		Date:    p.Date,
		Status:  string(p.Status),
	}
}
