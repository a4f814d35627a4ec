package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	response "aerodetail/internal/adapter/http/dto/response"
	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase"
	"aerodetail/pkg"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler handles HTTP requests for pricing recommendations.

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// GenerateRecommendations scores an account's history and persists the
// resulting suggestions.
func (h *RecommendationHandler) GenerateRecommendations(c *gin.Context) {
	accountID := c.Param("account_id")
	log.Printf("[recommendation][handler] generate start account_id=%s", accountID)

	recs, err := h.usecase.Generate(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[recommendation][handler] generate failed account_id=%s err=%v", accountID, err)
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[recommendation][handler] generate success account_id=%s count=%d", accountID, len(recs))

	c.JSON(http.StatusOK, response.FromRecommendations(recs))
}

// ListActiveRecommendations returns an account's live suggestions.
func (h *RecommendationHandler) ListActiveRecommendations(c *gin.Context) {
	accountID := c.Param("account_id")

	recs, err := h.usecase.ListActive(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[recommendation][handler] list failed account_id=%s err=%v", accountID, err)
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecommendations(recs))
}

// MarkRecommendationActedOn flags a suggestion the operator followed.
func (h *RecommendationHandler) MarkRecommendationActedOn(c *gin.Context) {
	h.patchRecommendation(c, "act-on", h.usecase.MarkActedOn)
}

// DismissRecommendation flags a suggestion the operator rejected.
func (h *RecommendationHandler) DismissRecommendation(c *gin.Context) {
	h.patchRecommendation(c, "dismiss", h.usecase.Dismiss)
}

func (h *RecommendationHandler) patchRecommendation(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, id string) (entities.Recommendation, error),
) {
	id := c.Param("id")

	rec, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[recommendation][handler] %s failed recommendation_id=%s err=%v", action, id, err)
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[recommendation][handler] %s success recommendation_id=%s", action, rec.ID)

	c.JSON(http.StatusOK, response.FromRecommendation(rec))
}

func mapRecommendationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountID), errors.Is(err, usecase.ErrInvalidRecommendation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecommendationNotFound):
		return pkg.NewDomainErrorSimple("RECOMMENDATION_NOT_FOUND", "Recommendation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
