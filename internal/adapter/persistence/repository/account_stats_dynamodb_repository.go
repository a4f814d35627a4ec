package repository

import (
	"context"
	"sort"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"
)

// AccountStatsDynamoRepository derives the scorer's input from the quote,
// completion and account tables. It reads through the typed repositories
// instead of issuing its own queries so the table layout stays defined in
// one place.

type AccountStatsDynamoRepository struct {
	quotes      *QuoteDynamoRepository
	completions *JobCompletionDynamoRepository
	accounts    *AccountDynamoRepository
}

var _ interfaces.IAccountStatsRepository = (*AccountStatsDynamoRepository)(nil)

func NewAccountStatsDynamoRepository(quotes *QuoteDynamoRepository, completions *JobCompletionDynamoRepository, accounts *AccountDynamoRepository) *AccountStatsDynamoRepository {
	return &AccountStatsDynamoRepository{
		quotes:      quotes,
		completions: completions,
		accounts:    accounts,
	}
}

func (r *AccountStatsDynamoRepository) Stats(ctx context.Context, accountID string) (entities.AccountStats, error) {
	settings, err := r.accounts.GetSettings(ctx, accountID)
	if err != nil {
		return entities.AccountStats{}, err
	}

	quotes, err := r.quotes.ListByAccountID(ctx, accountID)
	if err != nil {
		return entities.AccountStats{}, err
	}

	completions := make(map[string]entities.JobCompletion)
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusCompleted {
			continue
		}
		rec, err := r.completions.GetByQuoteID(ctx, q.ID)
		if err != nil {
			return entities.AccountStats{}, err
		}
		if rec.QuoteID != "" {
			completions[q.ID] = rec
		}
	}

	return buildAccountStats(accountID, settings.EffectiveLaborRate(), quotes, completions), nil
}

// buildAccountStats aggregates the scorer's input. A quote joins a customer's
// history once it has been paid; later states keep it there. Fields that
// depend on on-site actuals come only from completion records.
func buildAccountStats(accountID string, laborRate float64, quotes []entities.Quote, completions map[string]entities.JobCompletion) entities.AccountStats {
	stats := entities.AccountStats{
		AccountID: accountID,
		LaborRate: laborRate,
	}

	byCustomer := make(map[string][]entities.Quote)
	for _, q := range quotes {
		if !q.HasBeenPaid() {
			continue
		}
		if q.CustomerID != "" {
			byCustomer[q.CustomerID] = append(byCustomer[q.CustomerID], q)
		}

		if rec, ok := completions[q.ID]; ok {
			stats.CompletionSamples = append(stats.CompletionSamples, entities.CompletionSample{
				QuoteID:     q.ID,
				QuotedHours: q.TotalHours,
				ActualHours: rec.ActualHours,
			})
		}
	}

	customerIDs := make([]string, 0, len(byCustomer))
	for id := range byCustomer {
		customerIDs = append(customerIDs, id)
	}
	sort.Strings(customerIDs)

	for _, id := range customerIDs {
		stats.Customers = append(stats.Customers, customerStats(id, byCustomer[id], completions))
	}
	return stats
}

func customerStats(customerID string, quotes []entities.Quote, completions map[string]entities.JobCompletion) entities.CustomerStats {
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.Before(quotes[j].CreatedAt)
	})

	cs := entities.CustomerStats{
		CustomerID:   customerID,
		CustomerName: quotes[len(quotes)-1].CustomerName,
		TotalJobs:    len(quotes),
	}

	var payDaysSum float64
	var payDaysCount int
	var prevRate float64
	for _, q := range quotes {
		for _, li := range q.LineItems {
			switch li.Type {
			case entities.ServiceTypeExterior:
				cs.UsedExterior = true
			case entities.ServiceTypeInterior:
				cs.UsedInterior = true
			}
		}

		if q.SentAt != nil && q.PaidAt != nil && q.PaidAt.After(*q.SentAt) {
			payDaysSum += q.PaidAt.Sub(*q.SentAt).Hours() / 24
			payDaysCount++
		}

		// A jump in the blended hourly rate between consecutive quotes counts
		// as a rate increase for this customer.
		if rate := blendedRate(q); rate > 0 {
			if prevRate > 0 && rate > prevRate {
				created := q.CreatedAt
				cs.LastRateIncreaseDate = &created
			}
			prevRate = rate
		}

		rec, ok := completions[q.ID]
		if !ok {
			continue
		}
		cs.TotalWaitTimeMinutes += rec.WaitTimeMinutes
		if rec.RepositioningNeeded {
			cs.RepositioningEvents++
		}
	}

	if payDaysCount > 0 {
		cs.AvgDaysToPay = payDaysSum / float64(payDaysCount)
	}
	return cs
}

// blendedRate is the quote's effective hourly rate across billed line items.
func blendedRate(q entities.Quote) float64 {
	var hours, amount float64
	for _, li := range q.LineItems {
		if li.Included || li.Hours <= 0 {
			continue
		}
		hours += li.Hours
		amount += li.Amount
	}
	if hours == 0 {
		return 0
	}
	return amount / hours
}
