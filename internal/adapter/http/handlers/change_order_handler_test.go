package handlers

import (
	"bytes"
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

func TestChangeOrderHandler_CreateChangeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChangeOrderUseCase(ctrl)
		h := NewChangeOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/change-orders", h.CreateChangeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/change-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChangeOrderUseCase(ctrl)
		h := NewChangeOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/change-orders", h.CreateChangeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/change-orders", bytes.NewBufferString(`{"reason":"extra"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChangeOrderUseCase(ctrl)
		h := NewChangeOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/change-orders", h.CreateChangeOrder)

		uc.EXPECT().Create(gomock.Any(), "q-1", gomock.Any(), "").Return(entities.ChangeOrder{}, usecase.ErrQuoteNotPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/change-orders", bytes.NewBufferString(`{"items":[{"name":"Brightwork polish","amount":85}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChangeOrderUseCase(ctrl)
		h := NewChangeOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/change-orders", h.CreateChangeOrder)

		items := []entities.ChangeOrderItem{{Name: "Brightwork polish", Amount: 85}, {Name: "De-bug leading edges", Amount: 50}}
		uc.EXPECT().Create(gomock.Any(), "q-1", items, "customer asked on site").Return(entities.ChangeOrder{
			ID:        "co-1",
			QuoteID:   "q-1",
			Items:     items,
			Reason:    "customer asked on site",
			Amount:    135,
			NewTotal:  455,
			CreatedAt: time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/change-orders", bytes.NewBufferString(`{"items":[{"name":"Brightwork polish","amount":85},{"name":"De-bug leading edges","amount":50}],"reason":"customer asked on site"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["new_total"] != 455.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestChangeOrderHandler_ListChangeOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChangeOrderUseCase(ctrl)
		h := NewChangeOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/change-orders", h.ListChangeOrders)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.ChangeOrder{{ID: "co-1", QuoteID: "q-1", Amount: 85, NewTotal: 405}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/change-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "co-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChangeOrderUseCase(ctrl)
		h := NewChangeOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/change-orders", h.ListChangeOrders)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-404").Return(nil, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404/change-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
