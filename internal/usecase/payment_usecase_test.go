package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aerodetail/internal/domain/entities"
	mock_interfaces "aerodetail/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	payments *mock_interfaces.MockIPaymentRepository
	quotes   *mock_interfaces.MockIQuoteRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPaymentUseCase(m.payments, m.quotes, m.gateway)
	uc.now = func() time.Time { return ucNow }
	return uc, m
}

func payableQuote() entities.Quote {
	return entities.Quote{
		ID:         "q-1",
		Status:     entities.QuoteStatusSent,
		Total:      320,
		ValidUntil: ucNow.AddDate(0, 0, 14),
	}
}

func TestPaymentUseCase_CaptureAndMarkPaid(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.CaptureAndMarkPaid(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidPaymentQuote) {
			t.Fatalf("expected ErrInvalidPaymentQuote, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", json.RawMessage("{not json"))
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("expired quote is not payable", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		q := payableQuote()
		q.ValidUntil = ucNow.AddDate(0, 0, -1)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		q := payableQuote()
		q.Status = entities.QuoteStatusPaid
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrQuoteAlreadyPaid) {
			t.Fatalf("expected ErrQuoteAlreadyPaid, got %v", err)
		}
	})

	t.Run("draft quote is not payable", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		q := payableQuote()
		q.Status = entities.QuoteStatusDraft
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrQuoteNotPayable) {
			t.Fatalf("expected ErrQuoteNotPayable, got %v", err)
		}
	})

	declineCases := []struct {
		name   string
		detail string
		want   error
	}{
		{name: "insufficient funds", detail: "cc_rejected_insufficient_amount", want: ErrInsufficientFunds},
		{name: "card expired", detail: "cc_rejected_card_expired", want: ErrCardExpired},
		{name: "bad expiry date", detail: "cc_rejected_bad_filled_date", want: ErrCardExpired},
		{name: "generic decline", detail: "cc_rejected_other_reason", want: ErrPaymentDeclined},
	}
	for _, tc := range declineCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCaseForTest(t)
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(payableQuote(), nil)
			resp := json.RawMessage(`{"status":"rejected","status_detail":"` + tc.detail + `"}`)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), "q-1", 320.0, gomock.Any()).
				Return("mp-1", "rejected", resp, nil)
			m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.Payment) (entities.Payment, error) {
					if p.Status != entities.PaymentStatusDeclined {
						t.Fatalf("expected declined audit row, got %s", p.Status)
					}
					return p, nil
				},
			)

			_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("gateway unauthorized", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(payableQuote(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), "q-1", 320.0, gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrPaymentUnauthorized) {
			t.Fatalf("expected ErrPaymentUnauthorized, got %v", err)
		}
	})

	t.Run("gateway outage", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(payableQuote(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), "q-1", 320.0, gomock.Any()).
			Return("", "", nil, errors.New("connection refused"))

		_, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrPaymentProviderDown) {
			t.Fatalf("expected ErrPaymentProviderDown, got %v", err)
		}
	})

	t.Run("approved capture marks the quote paid", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(payableQuote(), nil)
		resp := json.RawMessage(`{"status":"approved","status_detail":"accredited"}`)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), "q-1", 320.0, gomock.Any()).
			Return("mp-1", "approved", resp, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "mp-1" || p.QuoteID != "q-1" || p.Amount != 320 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved, got %s", p.Status)
				}
				return p, nil
			},
		)
		paid := payableQuote()
		paid.Status = entities.QuoteStatusPaid
		m.quotes.EXPECT().TransitionStatus(gomock.Any(), "q-1",
			[]entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusViewed},
			entities.QuoteStatusPaid, ucNow).Return(paid, nil)

		p, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-1" {
			t.Fatalf("expected provider payment id, got %s", p.ID)
		}
	})

	t.Run("capture racing a webhook is idempotent", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(payableQuote(), nil)
		resp := json.RawMessage(`{"status":"approved"}`)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), "q-1", 320.0, gomock.Any()).
			Return("mp-1", "approved", resp, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		m.quotes.EXPECT().TransitionStatus(gomock.Any(), "q-1", gomock.Any(), entities.QuoteStatusPaid, ucNow).
			Return(entities.Quote{}, nil)
		paid := payableQuote()
		paid.Status = entities.QuoteStatusPaid
		paid.PaidAt = &ucNow
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(paid, nil)

		p, err := uc.CaptureAndMarkPaid(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-1" {
			t.Fatalf("expected payment returned despite lost race, got %+v", p)
		}
	})
}

func TestPaymentUseCase_GetLatestByQuoteID(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.payments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

		_, err := uc.GetLatestByQuoteID(context.Background(), "q-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("picks the most recent attempt", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.payments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Payment{
			{ID: "p-1", Date: ucNow.Add(-2 * time.Hour), Status: entities.PaymentStatusDeclined},
			{ID: "p-2", Date: ucNow.Add(-time.Hour), Status: entities.PaymentStatusApproved},
		}, nil)

		p, err := uc.GetLatestByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-2" {
			t.Fatalf("expected p-2, got %s", p.ID)
		}
	})
}
