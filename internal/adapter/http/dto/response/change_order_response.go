package response

import (
	"time"

	"aerodetail/internal/domain/entities"
)

type ChangeOrderItemResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type ChangeOrderResponse struct {
	ID        string                    `json:"id"`
	QuoteID   string                    `json:"quote_id"`
	Items     []ChangeOrderItemResponse `json:"items"`
	Reason    string                    `json:"reason,omitempty"`
	Amount    float64                   `json:"amount"`
	NewTotal  float64                   `json:"new_total"`
	CreatedAt time.Time                 `json:"created_at"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	items := make([]ChangeOrderItemResponse, 0, len(co.Items))
	for _, item := range co.Items {
		items = append(items, ChangeOrderItemResponse{Name: item.Name, Amount: item.Amount})
	}
	return ChangeOrderResponse{
		ID:        co.ID,
		QuoteID:   co.QuoteID,
		Items:     items,
		Reason:    co.Reason,
		Amount:    co.Amount,
		NewTotal:  co.NewTotal,
		CreatedAt: co.CreatedAt,
	}
}

func FromChangeOrders(cos []entities.ChangeOrder) []ChangeOrderResponse {
	out := make([]ChangeOrderResponse, 0, len(cos))
	for _, co := range cos {
		out = append(out, FromChangeOrder(co))
	}
	return out
}
