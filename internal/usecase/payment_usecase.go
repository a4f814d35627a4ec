package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidPaymentQuote = errors.New("invalid quote id for payment")
	ErrInvalidPaymentInput = errors.New("invalid payment payload")
	ErrQuoteNotPayable     = errors.New("quote cannot be paid from its current status")
	ErrQuoteAlreadyPaid    = errors.New("quote is already paid")
	ErrPaymentDeclined     = errors.New("payment declined")
	ErrInsufficientFunds   = errors.New("payment declined: insufficient funds")
	ErrCardExpired         = errors.New("payment declined: card expired")
	ErrPaymentUnauthorized = errors.New("payment provider unauthorized")
	ErrPaymentProviderDown = errors.New("payment provider unavailable")
)

// IPaymentUseCase encapsulates payment capture and the paid transition.
//
// Contract: a capture failure of any kind leaves the quote in its
// pre-attempt state. The typed errors map provider decline codes to
// user-facing categories; raw provider text never reaches the customer.

type IPaymentUseCase interface {
	CaptureAndMarkPaid(ctx context.Context, quoteID string, payload json.RawMessage) (entities.Payment, error)
	GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	quotes   interfaces.IQuoteRepository
	gateway  interfaces.IPaymentGateway
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(payments interfaces.IPaymentRepository, quotes interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, quotes: quotes, gateway: gateway, now: time.Now}
}

func (u *PaymentUseCase) CaptureAndMarkPaid(ctx context.Context, quoteID string, payload json.RawMessage) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuote
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if q.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}

	now := u.now().UTC()
	switch q.EffectiveStatus(now) {
	case entities.QuoteStatusSent, entities.QuoteStatusViewed:
		// payable
	case entities.QuoteStatusExpired:
		return entities.Payment{}, ErrQuoteExpired
	case entities.QuoteStatusPaid, entities.QuoteStatusScheduled, entities.QuoteStatusInProgress, entities.QuoteStatusCompleted:
		return entities.Payment{}, ErrQuoteAlreadyPaid
	default:
		return entities.Payment{}, ErrQuoteNotPayable
	}

	log.Printf("[payment][usecase] capture start quote_id=%s amount=%.2f", q.ID, q.Total)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, q.ID, q.Total, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed quote_id=%s err=%v", q.ID, err)
		return entities.Payment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", q.ID, err)
	}

	p := entities.Payment{
		ID:                 providerID,
		QuoteID:            q.ID,
		Amount:             q.Total,
		Date:               u.now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	if providerStatus != "approved" {
		// Persist the declined attempt for audit, then surface the mapped
		// category. The quote stays in its prior state.
		p.Status = entities.PaymentStatusDeclined
		if _, repoErr := u.payments.Create(ctx, p); repoErr != nil {
			log.Printf("[payment][usecase] declined payment persist failed quote_id=%s err=%v", q.ID, repoErr)
		}
		declineErr := classifyDecline(parsed)
		log.Printf("[payment][usecase] declined quote_id=%s provider_status=%s err=%v", q.ID, providerStatus, declineErr)
		return entities.Payment{}, declineErr
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	from := []entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusViewed}
	updated, err := u.quotes.TransitionStatus(ctx, q.ID, from, entities.QuoteStatusPaid, u.now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		// A concurrent writer moved the quote first. If it is already paid
		// (webhook racing the checkout callback) the capture reconciles
		// against that state and the call is idempotent.
		current, err := u.quotes.GetByID(ctx, q.ID)
		if err != nil {
			return entities.Payment{}, err
		}
		if current.ID != "" && current.HasBeenPaid() {
			log.Printf("[payment][usecase] quote already marked paid quote_id=%s payment_id=%s", q.ID, created.ID)
			return created, nil
		}
		log.Printf("[payment][usecase] paid transition lost race quote_id=%s status=%s", q.ID, current.Status)
		return entities.Payment{}, ErrQuoteNotPayable
	}

	log.Printf("[payment][usecase] capture success quote_id=%s payment_id=%s", updated.ID, created.ID)
	return created, nil
}

func (u *PaymentUseCase) GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuote
	}
	payments, err := u.payments.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// classifyDecline maps the provider's status_detail to a user-facing decline
// category instead of exposing raw provider text.
func classifyDecline(providerResp map[string]interface{}) error {
	detail, _ := providerResp["status_detail"].(string)
	switch {
	case strings.Contains(detail, "insufficient_amount"):
		return ErrInsufficientFunds
	case strings.Contains(detail, "card_expired"), strings.Contains(detail, "bad_filled_date"):
		return ErrCardExpired
	default:
		return ErrPaymentDeclined
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrInvalidPaymentInput
	default:
		return ErrPaymentProviderDown
	}
}
