package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - "expired" is never stored; it is derived at read time from validUntil
//     (see EffectiveStatus). A paid or completed quote never expires.
//   - Transitions are validated centrally through CanTransitionTo; callers
//     must not compare raw status strings to decide what is allowed.

type QuoteStatus string

const (
	QuoteStatusDraft      QuoteStatus = "draft"
	QuoteStatusSent       QuoteStatus = "sent"
	QuoteStatusViewed     QuoteStatus = "viewed"
	QuoteStatusPaid       QuoteStatus = "paid"
	QuoteStatusScheduled  QuoteStatus = "scheduled"
	QuoteStatusInProgress QuoteStatus = "in_progress"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusExpired    QuoteStatus = "expired"
	QuoteStatusDeclined   QuoteStatus = "declined"
)

// quoteTransitions is the single source of truth for stored transitions.
// A customer may pay straight from "sent" without a recorded view; the
// source system allows it and we preserve that.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:      {QuoteStatusSent},
	QuoteStatusSent:       {QuoteStatusViewed, QuoteStatusPaid, QuoteStatusDeclined},
	QuoteStatusViewed:     {QuoteStatusViewed, QuoteStatusPaid, QuoteStatusDeclined},
	QuoteStatusPaid:       {QuoteStatusScheduled, QuoteStatusInProgress, QuoteStatusCompleted},
	QuoteStatusScheduled:  {QuoteStatusInProgress, QuoteStatusCompleted},
	QuoteStatusInProgress: {QuoteStatusCompleted},
}

// CanTransitionTo reports whether the stored transition from s to target is
// allowed by the state machine.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further stored transition can leave s.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusCompleted || s == QuoteStatusExpired || s == QuoteStatusDeclined
}

// IsValid reports whether s is one of the known statuses.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed, QuoteStatusPaid,
		QuoteStatusScheduled, QuoteStatusInProgress, QuoteStatusCompleted,
		QuoteStatusExpired, QuoteStatusDeclined:
		return true
	}
	return false
}

// LineItem is a per-service price line on a quote. Services included through
// a package are listed with Included=true and a zero amount.
type LineItem struct {
	ServiceID  string      `json:"service_id"`
	Name       string      `json:"name"`
	Type       ServiceType `json:"type"`
	Hours      float64     `json:"hours"`
	HourlyRate float64     `json:"hourly_rate"`
	Amount     float64     `json:"amount"`
	Included   bool        `json:"included,omitempty"`
}

// Quote is a priced, time-bounded offer for detailing services tied to one
// aircraft and one customer.
//
// Invariant: Total equals the minimum fee when IsMinimumApplied is true and
// CalculatedPrice otherwise; the two must never silently diverge once
// persisted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (share_token-index): share_token
//   - GSI (account_id-index): account_id
type Quote struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`

	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	AircraftID    string `json:"aircraft_id"`
	AircraftLabel string `json:"aircraft_label"`

	// ServiceIDs and PackageID are mutually exclusive: selecting a package
	// clears manual services and vice versa.
	ServiceIDs []string `json:"service_ids,omitempty"`
	PackageID  string   `json:"package_id,omitempty"`

	LineItems        []LineItem `json:"line_items"`
	TotalHours       float64    `json:"total_hours"`
	CalculatedPrice  float64    `json:"calculated_price"`
	IsMinimumApplied bool       `json:"is_minimum_applied"`
	Total            float64    `json:"total"`
	LaborTotal       float64    `json:"labor_total"`
	ProductsTotal    float64    `json:"products_total"`
	PackageSavings   float64    `json:"package_savings,omitempty"`
	AccessDifficulty float64    `json:"access_difficulty"`

	JobLocation string `json:"job_location,omitempty"`
	Notes       string `json:"notes,omitempty"`
	ShareToken  string `json:"share_token"`

	Status        QuoteStatus `json:"status"`
	ValidUntil    time.Time   `json:"valid_until"`
	ScheduledDate *time.Time  `json:"scheduled_date,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ViewedAt    *time.Time `json:"viewed_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsExpired reports whether the quote's validity window has passed. Paid and
// completed quotes never expire regardless of validUntil.
func (q Quote) IsExpired(now time.Time) bool {
	switch q.Status {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed:
		return !q.ValidUntil.IsZero() && now.After(q.ValidUntil)
	}
	return false
}

// EffectiveStatus is the status a reader observes: the stored status, or
// "expired" when the validity window has passed on a not-yet-paid quote.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q.IsExpired(now) {
		return QuoteStatusExpired
	}
	return q.Status
}

// HasBeenPaid reports whether the quote passed through the paid transition.
func (q Quote) HasBeenPaid() bool {
	return q.PaidAt != nil
}
