package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aerodetail/internal/adapter/http/handlers/mocks"
	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRecommendationHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecommendationUseCase(ctrl)
		h := NewRecommendationHandler(uc)

		r := gin.New()
		r.POST("/v1/accounts/:account_id/recommendations/generate", h.GenerateRecommendations)

		now := time.Now().UTC()
		uc.EXPECT().Generate(gomock.Any(), "acc-1").Return([]entities.Recommendation{
			{ID: "rec-1", AccountID: "acc-1", Type: entities.RecommendationProblemCustomer, Priority: 9, CreatedAt: now, ExpiresAt: now.Add(7 * 24 * time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/acc-1/recommendations/generate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "rec-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecommendationUseCase(ctrl)
		h := NewRecommendationHandler(uc)

		r := gin.New()
		r.POST("/v1/accounts/:account_id/recommendations/generate", h.GenerateRecommendations)

		uc.EXPECT().Generate(gomock.Any(), " ").Return(nil, usecase.ErrInvalidAccountID)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/%20/recommendations/generate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRecommendationHandler_ListActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRecommendationUseCase(ctrl)
	h := NewRecommendationHandler(uc)

	r := gin.New()
	r.GET("/v1/accounts/:account_id/recommendations", h.ListActiveRecommendations)

	uc.EXPECT().ListActive(gomock.Any(), "acc-1").Return([]entities.Recommendation{
		{ID: "rec-1", AccountID: "acc-1", Priority: 8},
		{ID: "rec-2", AccountID: "acc-1", Priority: 7},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/acc-1/recommendations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestRecommendationHandler_Patch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("act on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecommendationUseCase(ctrl)
		h := NewRecommendationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/recommendations/:id/act", h.MarkRecommendationActedOn)

		uc.EXPECT().MarkActedOn(gomock.Any(), "rec-1").Return(entities.Recommendation{ID: "rec-1", ActedOn: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/recommendations/rec-1/act", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["acted_on"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("dismiss not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecommendationUseCase(ctrl)
		h := NewRecommendationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/recommendations/:id/dismiss", h.DismissRecommendation)

		uc.EXPECT().Dismiss(gomock.Any(), "rec-404").Return(entities.Recommendation{}, usecase.ErrRecommendationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/recommendations/rec-404/dismiss", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
