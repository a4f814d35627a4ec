package pricing

import "strings"

// MinimumFee is the account-level callout-fee floor, optionally restricted
// to jobs whose entered location matches one of the configured substrings.
type MinimumFee struct {
	Amount    float64
	Locations []string
}

// ApplyMinimumFee decides whether the calculated price is overridden by the
// minimum callout fee. Rules, evaluated in order with short-circuit:
//
//  1. fee <= 0: never applied
//  2. calculated price already >= fee: not applied
//  3. location scoping configured: the job location must be non-empty and
//     contain one of the configured substrings (case-insensitive)
//  4. no scoping: applied unconditionally once price < fee
//
// Matching is deliberately naive substring containment, mirroring how
// detailers enter free-form airport locations; exact airport-code matching
// would reject entries like "Teterboro (KTEB)".
func ApplyMinimumFee(calculatedPrice float64, fee MinimumFee, jobLocation string) (applied bool, total float64) {
	if fee.Amount <= 0 {
		return false, calculatedPrice
	}
	if calculatedPrice >= fee.Amount {
		return false, calculatedPrice
	}
	if len(fee.Locations) > 0 {
		loc := strings.ToUpper(strings.TrimSpace(jobLocation))
		if loc == "" {
			return false, calculatedPrice
		}
		for _, candidate := range fee.Locations {
			candidate = strings.ToUpper(strings.TrimSpace(candidate))
			if candidate != "" && strings.Contains(loc, candidate) {
				return true, fee.Amount
			}
		}
		return false, calculatedPrice
	}
	return true, fee.Amount
}
