package entities

// ServiceType selects which baseline hours field of the aircraft a service
// consumes.

type ServiceType string

const (
	ServiceTypeInterior ServiceType = "interior"
	ServiceTypeExterior ServiceType = "exterior"
)

// Service is a billable detailing service from the account's catalog.
//
// Hours are aircraft-dependent (exterior vs interior baseline hours), not
// stored on the service itself.
//
// Storage model (DynamoDB):
//   - PK: id
type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ServiceType `json:"type"`
	HourlyRate  float64     `json:"hourly_rate"`
	Description string      `json:"description"`
}

// Package is a bundled, fixed-price set of services offered as an alternative
// to itemized selection. Selecting a package is mutually exclusive with
// manual service selection.
//
// Storage model (DynamoDB):
//   - PK: id
type Package struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	ServiceIDs []string `json:"service_ids"`
}

// AccountSettings carries the per-account pricing policy the engine reads:
// the minimum callout fee with optional location scoping, the labor rate
// used for problem-customer cost estimates, and the quote validity window.
//
// Storage model (DynamoDB):
//   - PK: account_id
type AccountSettings struct {
	AccountID           string   `json:"account_id"`
	MinimumFee          float64  `json:"minimum_fee"`
	MinimumFeeLocations []string `json:"minimum_fee_locations"`
	LaborRate           float64  `json:"labor_rate"`
	QuoteValidityDays   int      `json:"quote_validity_days"`
}

const (
	// DefaultLaborRate is assumed when an account never configured one.
	DefaultLaborRate = 75.0
	// DefaultQuoteValidityDays bounds a quote's validUntil when the account
	// has no explicit window configured.
	DefaultQuoteValidityDays = 14
)

// EffectiveLaborRate returns the configured labor rate or the default.
func (s AccountSettings) EffectiveLaborRate() float64 {
	if s.LaborRate > 0 {
		return s.LaborRate
	}
	return DefaultLaborRate
}

// EffectiveValidityDays returns the configured quote validity window or the
// default.
func (s AccountSettings) EffectiveValidityDays() int {
	if s.QuoteValidityDays > 0 {
		return s.QuoteValidityDays
	}
	return DefaultQuoteValidityDays
}
