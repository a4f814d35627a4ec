// Package scoring derives prioritized operational suggestions from
// aggregated quote and customer history. All functions are pure; persistence
// and regeneration guards live in the usecase layer.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"

	"aerodetail/internal/domain/entities"
)

// Rule thresholds. Priorities are fixed per rule; higher is more urgent.
const (
	rateIncreaseMinMonths  = 12
	rateIncreaseMinJobs    = 3
	neverIncreasedMinJobs  = 5
	waitTimeThresholdMin   = 120.0
	repositioningThreshold = 3
	slowPayerThresholdDays = 30.0
	slowPayerMinJobs       = 3
	timeAccuracyMinSamples = 5
	timeAccuracyDriftHours = 0.5
	upsellMinJobs          = 3
	maxRecommendations     = 10
)

// Suggestion is one scored recommendation before ids and timestamps are
// assigned.
type Suggestion struct {
	Type     entities.RecommendationType
	Priority int
	Title    string
	Message  string
	Data     map[string]any
}

// Score evaluates every rule against the account aggregates and returns the
// suggestions sorted by descending priority, truncated to the top ten.
func Score(stats entities.AccountStats, now time.Time) []Suggestion {
	laborRate := stats.LaborRate
	if laborRate <= 0 {
		laborRate = entities.DefaultLaborRate
	}

	var out []Suggestion
	for _, c := range stats.Customers {
		out = append(out, scoreCustomer(c, laborRate, now)...)
	}
	if s, ok := scoreTimeAccuracy(stats.CompletionSamples); ok {
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

func scoreCustomer(c entities.CustomerStats, laborRate float64, now time.Time) []Suggestion {
	var out []Suggestion

	if s, ok := scoreRateIncrease(c, now); ok {
		out = append(out, s)
	}

	if c.TotalWaitTimeMinutes >= waitTimeThresholdMin {
		cost := c.TotalWaitTimeMinutes / 60.0 * laborRate
		out = append(out, Suggestion{
			Type:     entities.RecommendationProblemCustomer,
			Priority: 9,
			Title:    "Chronic wait time",
			Message: fmt.Sprintf("%s has kept you waiting %.0f minutes across %d jobs, roughly $%.2f of unbilled time. Consider a wait-time fee.",
				c.CustomerName, c.TotalWaitTimeMinutes, c.TotalJobs, cost),
			Data: map[string]any{
				"customer_id":       c.CustomerID,
				"wait_time_minutes": c.TotalWaitTimeMinutes,
				"estimated_cost":    cost,
			},
		})
	}

	if c.RepositioningEvents >= repositioningThreshold {
		out = append(out, Suggestion{
			Type:     entities.RecommendationProblemCustomer,
			Priority: 8,
			Title:    "Frequent repositioning",
			Message: fmt.Sprintf("%s required aircraft repositioning %d times. Consider a repositioning surcharge.",
				c.CustomerName, c.RepositioningEvents),
			Data: map[string]any{
				"customer_id":          c.CustomerID,
				"repositioning_events": c.RepositioningEvents,
			},
		})
	}

	if c.AvgDaysToPay >= slowPayerThresholdDays && c.TotalJobs >= slowPayerMinJobs {
		out = append(out, Suggestion{
			Type:     entities.RecommendationPaymentTerms,
			Priority: 7,
			Title:    "Slow payer",
			Message: fmt.Sprintf("%s takes %.0f days on average to pay. Consider requiring payment up front.",
				c.CustomerName, c.AvgDaysToPay),
			Data: map[string]any{
				"customer_id":     c.CustomerID,
				"avg_days_to_pay": c.AvgDaysToPay,
			},
		})
	}

	if c.TotalJobs >= upsellMinJobs && c.UsedExterior && !c.UsedInterior {
		out = append(out, Suggestion{
			Type:     entities.RecommendationUpsell,
			Priority: 6,
			Title:    "Interior upsell",
			Message: fmt.Sprintf("%s has booked %d exterior jobs but never an interior service. Offer an interior add-on on the next quote.",
				c.CustomerName, c.TotalJobs),
			Data: map[string]any{
				"customer_id": c.CustomerID,
				"total_jobs":  c.TotalJobs,
			},
		})
	}

	return out
}

func scoreRateIncrease(c entities.CustomerStats, now time.Time) (Suggestion, bool) {
	if c.LastRateIncreaseDate != nil {
		months := monthsBetween(*c.LastRateIncreaseDate, now)
		if months >= rateIncreaseMinMonths && c.TotalJobs >= rateIncreaseMinJobs {
			return Suggestion{
				Type:     entities.RecommendationRateIncrease,
				Priority: 8,
				Title:    "Rate increase overdue",
				Message: fmt.Sprintf("Rates for %s were last raised %d months ago over %d jobs. Time to revisit.",
					c.CustomerName, months, c.TotalJobs),
				Data: map[string]any{
					"customer_id":           c.CustomerID,
					"months_since_increase": months,
				},
			}, true
		}
		return Suggestion{}, false
	}

	if c.TotalJobs >= neverIncreasedMinJobs {
		return Suggestion{
			Type:     entities.RecommendationRateIncrease,
			Priority: 7,
			Title:    "Never raised rates",
			Message: fmt.Sprintf("You have completed %d jobs for %s without ever raising rates.",
				c.TotalJobs, c.CustomerName),
			Data: map[string]any{
				"customer_id": c.CustomerID,
				"total_jobs":  c.TotalJobs,
			},
		}, true
	}
	return Suggestion{}, false
}

func scoreTimeAccuracy(samples []entities.CompletionSample) (Suggestion, bool) {
	// Only jobs with both quoted and actual hours recorded count toward the
	// drift sample.
	var usable []entities.CompletionSample
	for _, s := range samples {
		if s.QuotedHours > 0 && s.ActualHours > 0 {
			usable = append(usable, s)
		}
	}
	if len(usable) < timeAccuracyMinSamples {
		return Suggestion{}, false
	}

	var sum float64
	for _, s := range usable {
		sum += s.ActualHours - s.QuotedHours
	}
	mean := sum / float64(len(usable))
	if mean < timeAccuracyDriftHours {
		return Suggestion{}, false
	}

	paddingMinutes := int(math.Ceil(mean * 60))
	return Suggestion{
		Type:     entities.RecommendationTimeAccuracy,
		Priority: 8,
		Title:    "Jobs run long",
		Message: fmt.Sprintf("Across %d completed jobs you averaged %.1f hours over quote. Pad estimates by about %d minutes.",
			len(usable), mean, paddingMinutes),
		Data: map[string]any{
			"sample_size":         len(usable),
			"mean_overrun_hours":  mean,
			"suggested_padding_m": paddingMinutes,
		},
	}, true
}

// monthsBetween counts whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
