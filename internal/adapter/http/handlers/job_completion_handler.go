package handlers

import (
	"errors"
	"log"
	"net/http"

	request "aerodetail/internal/adapter/http/dto/request"
	response "aerodetail/internal/adapter/http/dto/response"
	"aerodetail/internal/usecase"
	"aerodetail/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCompletionPayload = pkg.NewDomainErrorSimple("INVALID_COMPLETION_INPUT", "Invalid completion payload", http.StatusBadRequest)
)

// JobCompletionHandler handles HTTP requests for closing out jobs.

type JobCompletionHandler struct {
	usecase usecase.IJobCompletionUseCase
}

func NewJobCompletionHandler(uc usecase.IJobCompletionUseCase) *JobCompletionHandler {
	return &JobCompletionHandler{usecase: uc}
}

// CompleteJob records the job's actuals and moves the quote to completed.
func (h *JobCompletionHandler) CompleteJob(c *gin.Context) {
	quoteID := c.Param("id")

	var payload request.JobCompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompletionPayload.HTTPStatus, errInvalidCompletionPayload.ToHTTPError())
		return
	}

	in := usecase.CompletionInput{
		ActualHours:         payload.ActualHours,
		ProductCost:         payload.ProductCost,
		WaitTimeMinutes:     payload.WaitTimeMinutes,
		RepositioningNeeded: payload.RepositioningNeeded,
		CustomerLate:        payload.CustomerLate,
		Issues:              payload.Issues,
	}

	rec, quote, err := h.usecase.Complete(c.Request.Context(), quoteID, in)
	if err != nil {
		log.Printf("[completion][handler] complete failed quote_id=%s err=%v", quoteID, err)
		appErr := mapJobCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[completion][handler] complete success quote_id=%s variance_hours=%.2f", quoteID, rec.VarianceHours)

	c.JSON(http.StatusCreated, response.FromJobCompletion(rec, quote.Status))
}

// GetJobCompletion returns the completion record for a quote.
func (h *JobCompletionHandler) GetJobCompletion(c *gin.Context) {
	quoteID := c.Param("id")

	rec, err := h.usecase.GetByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapJobCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobCompletion(rec, ""))
}

func mapJobCompletionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidActualHours),
		errors.Is(err, usecase.ErrInvalidCompletionInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompletionNotFound):
		return pkg.NewDomainErrorSimple("COMPLETION_NOT_FOUND", "Completion record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompletionExists):
		return pkg.NewDomainErrorSimple("COMPLETION_ALREADY_EXISTS", "Completion record already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotCompletable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_COMPLETABLE", "Quote must be paid before completion", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
