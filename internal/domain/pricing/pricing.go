// Package pricing computes quote price breakdowns from aircraft baselines,
// service selections and adjustment factors. All functions are pure.
package pricing

import "aerodetail/internal/domain/entities"

// Access difficulty presets. The multiplier applies to the entire
// pre-minimum-fee subtotal, package price included.
const (
	AccessStandard  = 1.0
	AccessModerate  = 1.15
	AccessDifficult = 1.3
	AccessSevere    = 1.5
)

// Labor/products revenue split. Policy constants, not derived from actual
// costs.
const (
	LaborShare    = 0.7
	ProductsShare = 0.3
)

// ValidAccessDifficulty reports whether v is one of the discrete presets.
func ValidAccessDifficulty(v float64) bool {
	switch v {
	case AccessStandard, AccessModerate, AccessDifficult, AccessSevere:
		return true
	}
	return false
}

// Input groups everything the calculator needs. Services and Package are
// mutually exclusive; the caller enforces the selection rule and passes only
// one of them.
type Input struct {
	Aircraft         entities.Aircraft
	Services         []entities.Service
	Package          *entities.Package
	PackageServices  []entities.Service
	AccessDifficulty float64
}

// Result is the full pricing output attached to a quote.
type Result struct {
	TotalHours      float64
	CalculatedPrice float64
	LineItems       []entities.LineItem
	LaborTotal      float64
	ProductsTotal   float64
	PackageSavings  float64
}

// serviceHours resolves the aircraft-dependent hours a service consumes.
func serviceHours(a entities.Aircraft, s entities.Service) float64 {
	if s.Type == entities.ServiceTypeInterior {
		return a.InteriorHours
	}
	return a.ExteriorHours
}

// Calculate produces the price breakdown for a selection.
//
// Package mode prices the bundle at the fixed package price times the access
// multiplier; included services appear as zero-amount line items so the
// customer still sees what the bundle covers. Manual mode prices each
// service at aircraft hours times hourly rate, with the multiplier applied
// per line. TotalHours is summed in both modes because scheduling estimates
// need it even when a package hides per-service pricing.
func Calculate(in Input) Result {
	difficulty := in.AccessDifficulty
	if difficulty <= 0 {
		difficulty = AccessStandard
	}

	var out Result

	if in.Package != nil {
		itemized := 0.0
		for _, s := range in.PackageServices {
			hours := serviceHours(in.Aircraft, s)
			itemized += hours * s.HourlyRate
			out.TotalHours += hours
			out.LineItems = append(out.LineItems, entities.LineItem{
				ServiceID:  s.ID,
				Name:       s.Name,
				Type:       s.Type,
				Hours:      hours,
				HourlyRate: s.HourlyRate,
				Amount:     0,
				Included:   true,
			})
		}
		out.CalculatedPrice = in.Package.Price * difficulty
		if savings := itemized - in.Package.Price; savings > 0 {
			out.PackageSavings = savings
		}
	} else {
		for _, s := range in.Services {
			hours := serviceHours(in.Aircraft, s)
			amount := hours * s.HourlyRate * difficulty
			out.TotalHours += hours
			out.CalculatedPrice += amount
			out.LineItems = append(out.LineItems, entities.LineItem{
				ServiceID:  s.ID,
				Name:       s.Name,
				Type:       s.Type,
				Hours:      hours,
				HourlyRate: s.HourlyRate,
				Amount:     amount,
			})
		}
	}

	out.LaborTotal, out.ProductsTotal = Split(out.CalculatedPrice)
	return out
}

// Split divides a total into the fixed labor/products revenue shares. When a
// minimum fee overrides the calculated price the split is re-derived from
// the final total so the two never diverge.
func Split(total float64) (labor, products float64) {
	return total * LaborShare, total * ProductsShare
}
