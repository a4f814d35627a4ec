package handlers

import (
	"context"
	"errors"
	"io"
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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes and their lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote prices the selected work and opens a draft quote.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in := usecase.CreateQuoteInput{
		AccountID:        payload.AccountID,
		CustomerID:       payload.CustomerID,
		CustomerName:     payload.CustomerName,
		CustomerEmail:    payload.CustomerEmail,
		CustomerPhone:    payload.CustomerPhone,
		AircraftID:       payload.AircraftID,
		ServiceIDs:       payload.ResolveServiceIDs(),
		PackageID:        payload.PackageID,
		AccessDifficulty: payload.AccessDifficulty,
		JobLocation:      payload.JobLocation,
		Notes:            payload.Notes,
	}

	quote, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[quote][handler] create failed account_id=%s err=%v", payload.AccountID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create success quote_id=%s total=%.2f", quote.ID, quote.Total)

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuoteByID returns a quote with its effective status.
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	id := c.Param("id")

	quote, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuoteByShareToken serves the customer-facing view of a quote and
// records the first view.
func (h *QuoteHandler) GetQuoteByShareToken(c *gin.Context) {
	token := c.Param("token")

	quote, err := h.usecase.GetByShareToken(c.Request.Context(), token)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SharedFromQuote(quote))
}

// SendQuote delivers the quote to the customer and moves it to sent.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	id := c.Param("id")

	// An empty body means "send to the customer email on file".
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	log.Printf("[quote][handler] send start quote_id=%s", id)
	quote, err := h.usecase.Send(c.Request.Context(), id, payload.DestinationEmail)
	if err != nil {
		log.Printf("[quote][handler] send failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] send success quote_id=%s", id)

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// MarkQuoteViewed records that the customer opened the quote.
func (h *QuoteHandler) MarkQuoteViewed(c *gin.Context) {
	h.patchQuoteStatus(c, "viewed", h.usecase.MarkViewed)
}

// ScheduleQuote books a paid quote for a service date.
func (h *QuoteHandler) ScheduleQuote(c *gin.Context) {
	id := c.Param("id")

	var payload request.ScheduleQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Schedule(c.Request.Context(), id, payload.ScheduledDate)
	if err != nil {
		log.Printf("[quote][handler] schedule failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] schedule success quote_id=%s date=%s", id, payload.ScheduledDate.Format("2006-01-02"))

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// StartQuote moves a paid or scheduled quote into in_progress.
func (h *QuoteHandler) StartQuote(c *gin.Context) {
	h.patchQuoteStatus(c, "start", h.usecase.Start)
}

// DeclineQuote records that the customer turned the quote down.
func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.patchQuoteStatus(c, "decline", h.usecase.Decline)
}

// RequestNewQuote lets a customer ask for fresh pricing on an expired quote.
func (h *QuoteHandler) RequestNewQuote(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.RequestNewQuote(c.Request.Context(), id); err != nil {
		log.Printf("[quote][handler] request-new failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] request-new success quote_id=%s", id)

	c.JSON(http.StatusAccepted, gin.H{"status": "requested"})
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	id := c.Param("id")

	quote, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] %s failed quote_id=%s err=%v", action, id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] %s success quote_id=%s status=%s", action, id, quote.Status)

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidAccountID),
		errors.Is(err, usecase.ErrInvalidAircraftID),
		errors.Is(err, usecase.ErrInvalidShareToken),
		errors.Is(err, usecase.ErrAmbiguousSelection),
		errors.Is(err, usecase.ErrInvalidAccessDifficulty),
		errors.Is(err, usecase.ErrInvalidScheduleDate),
		errors.Is(err, usecase.ErrMissingDestination):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAircraftNotFound):
		return pkg.NewDomainErrorSimple("AIRCRAFT_NOT_FOUND", "Aircraft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotExpired):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EXPIRED", "Quote has not expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrZeroPriceSend):
		return pkg.NewDomainErrorSimple("QUOTE_ZERO_TOTAL", "Quote total must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotSendable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SENDABLE", "Quote cannot be sent from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotViewable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_VIEWABLE", "Quote has not been sent yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotSchedulable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SCHEDULABLE", "Quote must be paid before scheduling", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotStartable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_STARTABLE", "Quote must be paid or scheduled to start work", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotDeclinable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_DECLINABLE", "Quote cannot be declined from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainErrorSimple("NOTIFICATION_FAILED", "Quote could not be delivered", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
