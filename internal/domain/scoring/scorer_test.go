package scoring

import (
	"testing"
	"time"

	"aerodetail/internal/domain/entities"
)

var scoreNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func findByType(suggestions []Suggestion, typ entities.RecommendationType) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.Type == typ {
			return s, true
		}
	}
	return Suggestion{}, false
}

func TestScore_RateIncreaseOverdue(t *testing.T) {
	lastIncrease := scoreNow.AddDate(-1, -2, 0)
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{{
			CustomerID:           "cust-1",
			CustomerName:         "Hangar One Aviation",
			TotalJobs:            4,
			LastRateIncreaseDate: &lastIncrease,
		}},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationRateIncrease)
	if !ok {
		t.Fatal("expected a rate_increase recommendation")
	}
	if s.Priority != 8 {
		t.Fatalf("priority = %d, want 8", s.Priority)
	}
	if s.Data["months_since_increase"] != 14 {
		t.Fatalf("months_since_increase = %v, want 14", s.Data["months_since_increase"])
	}
}

func TestScore_RateIncreaseNeverRaised(t *testing.T) {
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{{CustomerID: "cust-1", CustomerName: "Acme Jets", TotalJobs: 5}},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationRateIncrease)
	if !ok {
		t.Fatal("expected a rate_increase recommendation")
	}
	if s.Priority != 7 {
		t.Fatalf("priority = %d, want 7", s.Priority)
	}
}

func TestScore_RateIncreaseBelowThresholds(t *testing.T) {
	recent := scoreNow.AddDate(0, -6, 0)
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{
			{CustomerID: "cust-1", TotalJobs: 10, LastRateIncreaseDate: &recent},
			{CustomerID: "cust-2", TotalJobs: 4},
		},
	}
	if got := Score(stats, scoreNow); len(got) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(got))
	}
}

func TestScore_WaitTimeUsesLaborRate(t *testing.T) {
	stats := entities.AccountStats{
		LaborRate: 90,
		Customers: []entities.CustomerStats{{
			CustomerID:           "cust-1",
			CustomerName:         "Slow Ramp LLC",
			TotalJobs:            3,
			TotalWaitTimeMinutes: 180,
		}},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationProblemCustomer)
	if !ok {
		t.Fatal("expected a problem_customer recommendation")
	}
	if s.Priority != 9 {
		t.Fatalf("priority = %d, want 9", s.Priority)
	}
	if cost := s.Data["estimated_cost"].(float64); cost != 270 {
		t.Fatalf("estimated_cost = %v, want 270", cost)
	}
}

func TestScore_WaitTimeDefaultsLaborRate(t *testing.T) {
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{{CustomerID: "cust-1", TotalWaitTimeMinutes: 120}},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationProblemCustomer)
	if !ok {
		t.Fatal("expected a problem_customer recommendation")
	}
	// 2h at the default 75/h
	if cost := s.Data["estimated_cost"].(float64); cost != 150 {
		t.Fatalf("estimated_cost = %v, want 150", cost)
	}
}

func TestScore_Repositioning(t *testing.T) {
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{{CustomerID: "cust-1", RepositioningEvents: 3}},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationProblemCustomer)
	if !ok {
		t.Fatal("expected a problem_customer recommendation")
	}
	if s.Priority != 8 {
		t.Fatalf("priority = %d, want 8", s.Priority)
	}
}

func TestScore_SlowPayer(t *testing.T) {
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{
			{CustomerID: "cust-1", TotalJobs: 3, AvgDaysToPay: 31},
			{CustomerID: "cust-2", TotalJobs: 2, AvgDaysToPay: 45},
		},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationPaymentTerms)
	if !ok {
		t.Fatal("expected a payment_terms recommendation")
	}
	if s.Priority != 7 {
		t.Fatalf("priority = %d, want 7", s.Priority)
	}
	if s.Data["customer_id"] != "cust-1" {
		t.Fatalf("customer_id = %v, want cust-1", s.Data["customer_id"])
	}
}

func TestScore_TimeAccuracy(t *testing.T) {
	samples := []entities.CompletionSample{
		{QuoteID: "q1", QuotedHours: 4, ActualHours: 4.5},
		{QuoteID: "q2", QuotedHours: 3, ActualHours: 4},
		{QuoteID: "q3", QuotedHours: 5, ActualHours: 5.75},
		{QuoteID: "q4", QuotedHours: 2, ActualHours: 2.5},
		{QuoteID: "q5", QuotedHours: 6, ActualHours: 6.75},
		{QuoteID: "q6", QuotedHours: 0, ActualHours: 3}, // missing quoted hours, excluded
	}
	stats := entities.AccountStats{CompletionSamples: samples}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationTimeAccuracy)
	if !ok {
		t.Fatal("expected a time_accuracy recommendation")
	}
	if s.Priority != 8 {
		t.Fatalf("priority = %d, want 8", s.Priority)
	}
	// mean overrun = (0.5+1+0.75+0.5+0.75)/5 = 0.7h -> 42 minutes
	if s.Data["suggested_padding_m"] != 42 {
		t.Fatalf("suggested_padding_m = %v, want 42", s.Data["suggested_padding_m"])
	}
	if s.Data["sample_size"] != 5 {
		t.Fatalf("sample_size = %v, want 5", s.Data["sample_size"])
	}
}

func TestScore_TimeAccuracyNeedsFiveSamples(t *testing.T) {
	stats := entities.AccountStats{CompletionSamples: []entities.CompletionSample{
		{QuotedHours: 1, ActualHours: 5},
		{QuotedHours: 1, ActualHours: 5},
		{QuotedHours: 1, ActualHours: 5},
		{QuotedHours: 1, ActualHours: 5},
	}}
	if got := Score(stats, scoreNow); len(got) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(got))
	}
}

func TestScore_Upsell(t *testing.T) {
	stats := entities.AccountStats{
		Customers: []entities.CustomerStats{
			{CustomerID: "cust-1", TotalJobs: 3, UsedExterior: true},
			{CustomerID: "cust-2", TotalJobs: 6, UsedExterior: true, UsedInterior: true},
		},
	}

	got := Score(stats, scoreNow)
	s, ok := findByType(got, entities.RecommendationUpsell)
	if !ok {
		t.Fatal("expected an upsell recommendation")
	}
	if s.Priority != 6 {
		t.Fatalf("priority = %d, want 6", s.Priority)
	}
	if s.Data["customer_id"] != "cust-1" {
		t.Fatalf("customer_id = %v, want cust-1", s.Data["customer_id"])
	}
}

func TestScore_SortedAndTruncated(t *testing.T) {
	var customers []entities.CustomerStats
	for i := 0; i < 12; i++ {
		customers = append(customers, entities.CustomerStats{
			CustomerID:           "cust",
			TotalJobs:            6,
			TotalWaitTimeMinutes: 200, // priority 9
			RepositioningEvents:  4,   // priority 8
			AvgDaysToPay:         40,  // priority 7
		})
	}

	got := Score(entities.AccountStats{Customers: customers}, scoreNow)
	if len(got) != 10 {
		t.Fatalf("expected truncation to 10, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority {
			t.Fatalf("not sorted by priority at index %d", i)
		}
	}
	if got[0].Priority != 9 {
		t.Fatalf("top priority = %d, want 9", got[0].Priority)
	}
}
