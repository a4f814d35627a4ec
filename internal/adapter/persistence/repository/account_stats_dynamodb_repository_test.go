package repository

import (
	"testing"
	"time"

	"aerodetail/internal/domain/entities"
)

var statsBase = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func paidQuote(id, customerID string, status entities.QuoteStatus, createdDays, payDays int) entities.Quote {
	created := statsBase.AddDate(0, 0, createdDays)
	sent := created.Add(time.Hour)
	paid := sent.AddDate(0, 0, payDays)
	return entities.Quote{
		ID:           id,
		AccountID:    "acc-1",
		CustomerID:   customerID,
		CustomerName: "Hangar One Aviation",
		TotalHours:   6,
		Status:       status,
		CreatedAt:    created,
		SentAt:       &sent,
		PaidAt:       &paid,
	}
}

func TestBuildAccountStats_PaidQuotesCountAsJobs(t *testing.T) {
	q1 := paidQuote("q-1", "cust-1", entities.QuoteStatusCompleted, 0, 2)
	q1.LineItems = []entities.LineItem{{ServiceID: "svc-ext", Type: entities.ServiceTypeExterior, Hours: 4, Amount: 200}}
	q2 := paidQuote("q-2", "cust-1", entities.QuoteStatusCompleted, 10, 4)
	q3 := paidQuote("q-3", "cust-1", entities.QuoteStatusPaid, 20, 6)
	q3.LineItems = []entities.LineItem{{ServiceID: "svc-int", Type: entities.ServiceTypeInterior, Hours: 3, Amount: 120}}
	q4 := paidQuote("q-4", "cust-1", entities.QuoteStatusScheduled, 30, 8)

	// Never paid, so it stays out of the history entirely.
	q5 := entities.Quote{ID: "q-5", AccountID: "acc-1", CustomerID: "cust-1", Status: entities.QuoteStatusSent, CreatedAt: statsBase.AddDate(0, 0, 40)}

	completions := map[string]entities.JobCompletion{
		"q-1": {QuoteID: "q-1", ActualHours: 8, WaitTimeMinutes: 60, RepositioningNeeded: true},
		"q-2": {QuoteID: "q-2", ActualHours: 5, WaitTimeMinutes: 30},
	}

	stats := buildAccountStats("acc-1", 75, []entities.Quote{q1, q2, q3, q4, q5}, completions)

	if stats.AccountID != "acc-1" || stats.LaborRate != 75 {
		t.Fatalf("unexpected header: %+v", stats)
	}
	if len(stats.Customers) != 1 {
		t.Fatalf("customers = %d, want 1", len(stats.Customers))
	}

	cs := stats.Customers[0]
	if cs.TotalJobs != 4 {
		t.Fatalf("total jobs = %d, want 4 (paid quotes must count)", cs.TotalJobs)
	}
	if cs.AvgDaysToPay != 5 {
		t.Fatalf("avg days to pay = %v, want 5", cs.AvgDaysToPay)
	}
	if cs.TotalWaitTimeMinutes != 90 {
		t.Fatalf("wait minutes = %v, want 90", cs.TotalWaitTimeMinutes)
	}
	if cs.RepositioningEvents != 1 {
		t.Fatalf("repositioning events = %d, want 1", cs.RepositioningEvents)
	}
	if !cs.UsedExterior || !cs.UsedInterior {
		t.Fatalf("service usage flags = ext %v int %v, want both true", cs.UsedExterior, cs.UsedInterior)
	}

	if len(stats.CompletionSamples) != 2 {
		t.Fatalf("completion samples = %d, want 2 (only completed jobs have actuals)", len(stats.CompletionSamples))
	}
	if stats.CompletionSamples[0].QuoteID != "q-1" || stats.CompletionSamples[0].ActualHours != 8 {
		t.Fatalf("unexpected first sample: %+v", stats.CompletionSamples[0])
	}
}

func TestBuildAccountStats_NoHistory(t *testing.T) {
	drafts := []entities.Quote{
		{ID: "q-1", AccountID: "acc-1", CustomerID: "cust-1", Status: entities.QuoteStatusDraft, CreatedAt: statsBase},
		{ID: "q-2", AccountID: "acc-1", CustomerID: "cust-2", Status: entities.QuoteStatusDeclined, CreatedAt: statsBase},
	}

	stats := buildAccountStats("acc-1", 75, drafts, nil)

	if len(stats.Customers) != 0 || len(stats.CompletionSamples) != 0 {
		t.Fatalf("expected empty history, got %+v", stats)
	}
}
