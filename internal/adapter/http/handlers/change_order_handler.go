package handlers

import (
	"errors"
	"log"
	"net/http"

	request "aerodetail/internal/adapter/http/dto/request"
	response "aerodetail/internal/adapter/http/dto/response"
	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase"
	"aerodetail/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
)

// ChangeOrderHandler handles HTTP requests for mid-job extra work.

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// CreateChangeOrder adds billable extras to a paid quote.
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	quoteID := c.Param("id")

	var payload request.ChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	items := make([]entities.ChangeOrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, entities.ChangeOrderItem{Name: item.Name, Amount: item.Amount})
	}

	created, err := h.usecase.Create(c.Request.Context(), quoteID, items, payload.Reason)
	if err != nil {
		log.Printf("[changeorder][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[changeorder][handler] create success quote_id=%s change_order_id=%s amount=%.2f", quoteID, created.ID, created.Amount)

	c.JSON(http.StatusCreated, response.FromChangeOrder(created))
}

// ListChangeOrders returns a quote's change orders, oldest first.
func (h *ChangeOrderHandler) ListChangeOrders(c *gin.Context) {
	quoteID := c.Param("id")

	cos, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[changeorder][handler] list failed quote_id=%s err=%v", quoteID, err)
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrders(cos))
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrNoValidChangeOrderItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPaid):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PAID", "Change orders require a paid quote", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
