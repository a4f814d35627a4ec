package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/domain/pricing"
	"aerodetail/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrPackageNotFound  = errors.New("package not found")

	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidAccountID        = errors.New("invalid account id")
	ErrInvalidAircraftID       = errors.New("invalid aircraft id")
	ErrInvalidShareToken       = errors.New("invalid share token")
	ErrAmbiguousSelection      = errors.New("package and manual services are mutually exclusive")
	ErrInvalidAccessDifficulty = errors.New("access difficulty is not one of the presets")
	ErrZeroPriceSend           = errors.New("quote total must be greater than zero to send")
	ErrMissingDestination      = errors.New("quote has no destination email")
	ErrInvalidScheduleDate     = errors.New("scheduled date must be in the future")

	ErrQuoteNotSendable    = errors.New("quote cannot be sent from its current status")
	ErrQuoteNotViewable    = errors.New("quote has not been sent yet")
	ErrQuoteNotSchedulable = errors.New("quote must be paid before scheduling")
	ErrQuoteNotStartable   = errors.New("quote must be paid or scheduled to start work")
	ErrQuoteNotDeclinable  = errors.New("quote cannot be declined from its current status")
	ErrQuoteExpired        = errors.New("quote has expired")
	ErrQuoteNotExpired     = errors.New("quote has not expired")

	ErrNotificationFailed = errors.New("notification delivery failed")
)

// CreateQuoteInput carries everything needed to price and open a draft
// quote. ServiceIDs and PackageID are mutually exclusive.
type CreateQuoteInput struct {
	AccountID     string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	AircraftID       string
	ServiceIDs       []string
	PackageID        string
	AccessDifficulty float64
	JobLocation      string
	Notes            string
}

// IQuoteUseCase exposes the quote lifecycle operations.
//
// Reads return the quote with its effective status: a quote past its
// validity window reads as expired unless it was paid or completed.

type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByShareToken(ctx context.Context, token string) (entities.Quote, error)
	Send(ctx context.Context, id string, destinationEmail string) (entities.Quote, error)
	MarkViewed(ctx context.Context, id string) (entities.Quote, error)
	Schedule(ctx context.Context, id string, date time.Time) (entities.Quote, error)
	Start(ctx context.Context, id string) (entities.Quote, error)
	Decline(ctx context.Context, id string) (entities.Quote, error)
	RequestNewQuote(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	quotes   interfaces.IQuoteRepository
	catalog  interfaces.ICatalogRepository
	accounts interfaces.IAccountRepository
	notifier interfaces.INotifier
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, catalog interfaces.ICatalogRepository, accounts interfaces.IAccountRepository, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:   quotes,
		catalog:  catalog,
		accounts: accounts,
		notifier: notifier,
		now:      time.Now,
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	in.AccountID = strings.TrimSpace(in.AccountID)
	in.AircraftID = strings.TrimSpace(in.AircraftID)
	in.PackageID = strings.TrimSpace(in.PackageID)
	if in.AccountID == "" {
		return entities.Quote{}, ErrInvalidAccountID
	}
	if in.AircraftID == "" {
		return entities.Quote{}, ErrInvalidAircraftID
	}
	if in.PackageID != "" && len(in.ServiceIDs) > 0 {
		return entities.Quote{}, ErrAmbiguousSelection
	}
	if in.AccessDifficulty == 0 {
		in.AccessDifficulty = pricing.AccessStandard
	}
	if !pricing.ValidAccessDifficulty(in.AccessDifficulty) {
		return entities.Quote{}, ErrInvalidAccessDifficulty
	}

	aircraft, err := u.catalog.GetAircraft(ctx, in.AircraftID)
	if err != nil {
		return entities.Quote{}, err
	}
	if aircraft.ID == "" {
		return entities.Quote{}, ErrAircraftNotFound
	}

	calcInput := pricing.Input{Aircraft: aircraft, AccessDifficulty: in.AccessDifficulty}
	if in.PackageID != "" {
		pkg, err := u.catalog.GetPackage(ctx, in.PackageID)
		if err != nil {
			return entities.Quote{}, err
		}
		if pkg.ID == "" {
			return entities.Quote{}, ErrPackageNotFound
		}
		included, err := u.resolveServices(ctx, pkg.ServiceIDs)
		if err != nil {
			return entities.Quote{}, err
		}
		calcInput.Package = &pkg
		calcInput.PackageServices = included
	} else if len(in.ServiceIDs) > 0 {
		selected, err := u.resolveServices(ctx, in.ServiceIDs)
		if err != nil {
			return entities.Quote{}, err
		}
		calcInput.Services = selected
	}

	settings, err := u.accounts.GetSettings(ctx, in.AccountID)
	if err != nil {
		return entities.Quote{}, err
	}

	breakdown := pricing.Calculate(calcInput)
	applied, total := pricing.ApplyMinimumFee(breakdown.CalculatedPrice, pricing.MinimumFee{
		Amount:    settings.MinimumFee,
		Locations: settings.MinimumFeeLocations,
	}, in.JobLocation)
	labor, products := pricing.Split(total)

	now := u.now().UTC()
	q := entities.Quote{
		ID:               uuid.NewString(),
		AccountID:        in.AccountID,
		CustomerID:       strings.TrimSpace(in.CustomerID),
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerEmail:    strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:    strings.TrimSpace(in.CustomerPhone),
		AircraftID:       aircraft.ID,
		AircraftLabel:    aircraft.Label(),
		ServiceIDs:       in.ServiceIDs,
		PackageID:        in.PackageID,
		LineItems:        breakdown.LineItems,
		TotalHours:       breakdown.TotalHours,
		CalculatedPrice:  breakdown.CalculatedPrice,
		IsMinimumApplied: applied,
		Total:            total,
		LaborTotal:       labor,
		ProductsTotal:    products,
		PackageSavings:   breakdown.PackageSavings,
		AccessDifficulty: in.AccessDifficulty,
		JobLocation:      strings.TrimSpace(in.JobLocation),
		Notes:            in.Notes,
		ShareToken:       uuid.NewString(),
		Status:           entities.QuoteStatusDraft,
		ValidUntil:       now.AddDate(0, 0, settings.EffectiveValidityDays()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s account_id=%s total=%.2f minimum_applied=%t", created.ID, created.AccountID, created.Total, created.IsMinimumApplied)
	return created, nil
}

func (u *QuoteUseCase) resolveServices(ctx context.Context, ids []string) ([]entities.Service, error) {
	services, err := u.catalog.ListServices(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, ErrServiceNotFound
	}
	return services, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q.Status = q.EffectiveStatus(u.now().UTC())
	return q, nil
}

// GetByShareToken resolves a customer share-link fetch and records the view
// event when the quote is still open.
func (u *QuoteUseCase) GetByShareToken(ctx context.Context, token string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Quote{}, ErrInvalidShareToken
	}
	q, err := u.quotes.GetByShareToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	now := u.now().UTC()
	if effective := q.EffectiveStatus(now); effective == entities.QuoteStatusSent || effective == entities.QuoteStatusViewed {
		viewed, err := u.markViewed(ctx, q.ID)
		if err == nil && viewed.ID != "" {
			q = viewed
		}
	}
	q.Status = q.EffectiveStatus(now)
	return q, nil
}

func (u *QuoteUseCase) Send(ctx context.Context, id string, destinationEmail string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusSent) {
		return entities.Quote{}, ErrQuoteNotSendable
	}
	if q.Total <= 0 {
		return entities.Quote{}, ErrZeroPriceSend
	}

	destination := strings.TrimSpace(destinationEmail)
	if destination == "" {
		destination = q.CustomerEmail
	}
	if destination == "" {
		return entities.Quote{}, ErrMissingDestination
	}

	snapshot := q.SnapshotForNotification()
	snapshot.CustomerEmail = destination
	if err := u.notifier.SendQuote(ctx, snapshot); err != nil {
		// The quote stays in draft; the caller may retry.
		log.Printf("[quote][usecase] send notification failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, ErrNotificationFailed
	}

	updated, err := u.quotes.TransitionStatus(ctx, id, []entities.QuoteStatus{entities.QuoteStatusDraft}, entities.QuoteStatusSent, now)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Lost a race; observe the winner's state and report precisely.
		return entities.Quote{}, u.conflictFor(ctx, id, ErrQuoteNotSendable)
	}
	log.Printf("[quote][usecase] sent quote_id=%s destination=%s", updated.ID, destination)
	return updated, nil
}

func (u *QuoteUseCase) MarkViewed(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	return u.markViewed(ctx, id)
}

func (u *QuoteUseCase) markViewed(ctx context.Context, id string) (entities.Quote, error) {
	now := u.now().UTC()
	updated, err := u.quotes.MarkViewed(ctx, id, now)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID != "" {
		return updated, nil
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	// A view event on a quote that already moved forward (paid, scheduled,
	// completed) is harmless; status never moves backward.
	if q.Status == entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteNotViewable
	}
	return q, nil
}

func (u *QuoteUseCase) Schedule(ctx context.Context, id string, date time.Time) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	now := u.now().UTC()
	if !date.After(now) {
		return entities.Quote{}, ErrInvalidScheduleDate
	}

	updated, err := u.quotes.Schedule(ctx, id, date.UTC(), now)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, u.conflictFor(ctx, id, ErrQuoteNotSchedulable)
	}
	log.Printf("[quote][usecase] scheduled quote_id=%s date=%s", updated.ID, date.UTC().Format(time.RFC3339))
	return updated, nil
}

func (u *QuoteUseCase) Start(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	from := []entities.QuoteStatus{entities.QuoteStatusPaid, entities.QuoteStatusScheduled}
	updated, err := u.quotes.TransitionStatus(ctx, id, from, entities.QuoteStatusInProgress, u.now().UTC())
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, u.conflictFor(ctx, id, ErrQuoteNotStartable)
	}
	log.Printf("[quote][usecase] started quote_id=%s", updated.ID)
	return updated, nil
}

func (u *QuoteUseCase) Decline(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	now := u.now().UTC()
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}

	from := []entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusViewed}
	updated, err := u.quotes.TransitionStatus(ctx, id, from, entities.QuoteStatusDeclined, now)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, u.conflictFor(ctx, id, ErrQuoteNotDeclinable)
	}
	log.Printf("[quote][usecase] declined quote_id=%s", updated.ID)
	return updated, nil
}

// RequestNewQuote signals the detailer that the customer wants a fresh quote
// to replace an expired one. The expired quote itself is not mutated.
func (u *QuoteUseCase) RequestNewQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuoteNotFound
	}
	if q.EffectiveStatus(u.now().UTC()) != entities.QuoteStatusExpired {
		return ErrQuoteNotExpired
	}

	if err := u.notifier.NotifyQuoteRequested(ctx, q); err != nil {
		log.Printf("[quote][usecase] request-new notification failed quote_id=%s err=%v", q.ID, err)
		return ErrNotificationFailed
	}
	log.Printf("[quote][usecase] new quote requested quote_id=%s", q.ID)
	return nil
}

// conflictFor re-reads a quote after a failed compare-and-set and picks the
// precise error: not found when the id never resolved, expired when the
// validity window passed, otherwise the operation's conflict sentinel.
func (u *QuoteUseCase) conflictFor(ctx context.Context, id string, conflict error) error {
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuoteNotFound
	}
	if q.IsExpired(u.now().UTC()) {
		return ErrQuoteExpired
	}
	return conflict
}
