package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aerodetail/internal/domain/entities"
	mock_interfaces "aerodetail/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newChangeOrderUseCaseForTest(t *testing.T) (*ChangeOrderUseCase, *mock_interfaces.MockIChangeOrderRepository, *mock_interfaces.MockIQuoteRepository) {
	ctrl := gomock.NewController(t)
	changeOrders := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewChangeOrderUseCase(changeOrders, quotes)
	uc.now = func() time.Time { return ucNow }
	return uc, changeOrders, quotes
}

func TestChangeOrderUseCase_Create(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc, _, _ := newChangeOrderUseCaseForTest(t)
		_, err := uc.Create(context.Background(), " ", []entities.ChangeOrderItem{{Name: "x", Amount: 1}}, "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("all items filtered out", func(t *testing.T) {
		uc, _, _ := newChangeOrderUseCaseForTest(t)
		_, err := uc.Create(context.Background(), "q-1", []entities.ChangeOrderItem{
			{Name: "   ", Amount: 50},
			{Name: "Brightwork polish", Amount: 0},
			{Name: "Refund", Amount: -20},
		}, "")
		if !errors.Is(err, ErrNoValidChangeOrderItems) {
			t.Fatalf("expected ErrNoValidChangeOrderItems, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, _, quotes := newChangeOrderUseCaseForTest(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Create(context.Background(), "q-1", []entities.ChangeOrderItem{{Name: "x", Amount: 1}}, "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("sent quote rejects change orders", func(t *testing.T) {
		uc, _, quotes := newChangeOrderUseCaseForTest(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID:     "q-1",
			Status: entities.QuoteStatusSent,
			Total:  320,
		}, nil)

		_, err := uc.Create(context.Background(), "q-1", []entities.ChangeOrderItem{{Name: "Corrosion spot", Amount: 85}}, "")
		if !errors.Is(err, ErrQuoteNotPaid) {
			t.Fatalf("expected ErrQuoteNotPaid, got %v", err)
		}
	})

	t.Run("sums valid items against a paid quote", func(t *testing.T) {
		uc, changeOrders, quotes := newChangeOrderUseCaseForTest(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID:     "q-1",
			Status: entities.QuoteStatusPaid,
			Total:  320,
		}, nil)
		changeOrders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ChangeOrder{})).DoAndReturn(
			func(_ context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
				if co.ID == "" || co.QuoteID != "q-1" {
					t.Fatalf("unexpected change order: %+v", co)
				}
				if len(co.Items) != 2 || co.Amount != 135 || co.NewTotal != 455 {
					t.Fatalf("unexpected totals: %+v", co)
				}
				return co, nil
			},
		)

		co, err := uc.Create(context.Background(), "q-1", []entities.ChangeOrderItem{
			{Name: "Corrosion spot treatment", Amount: 85},
			{Name: "  ", Amount: 999},
			{Name: "Extra bug removal", Amount: 50},
		}, "found during exterior wash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if co.Reason != "found during exterior wash" {
			t.Fatalf("expected reason preserved, got %q", co.Reason)
		}
	})
}

func TestChangeOrderUseCase_ListByQuoteID(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc, _, _ := newChangeOrderUseCaseForTest(t)
		_, err := uc.ListByQuoteID(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("passes through", func(t *testing.T) {
		uc, changeOrders, _ := newChangeOrderUseCaseForTest(t)
		changeOrders.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.ChangeOrder{{ID: "co-1"}}, nil)

		list, err := uc.ListByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].ID != "co-1" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})
}
