package request

type ChangeOrderItemRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ChangeOrderRequest adds work discovered after payment. Items without a
// name or a positive amount are dropped server-side rather than rejected.
type ChangeOrderRequest struct {
	Items  []ChangeOrderItemRequest `json:"items" binding:"required"`
	Reason string                   `json:"reason"`
}
