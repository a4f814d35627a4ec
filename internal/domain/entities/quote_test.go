package entities

import (
	"testing"
	"time"
)

func TestQuoteStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to QuoteStatus
	}{
		{QuoteStatusDraft, QuoteStatusSent},
		{QuoteStatusSent, QuoteStatusViewed},
		{QuoteStatusSent, QuoteStatusPaid}, // fast checkout skips the viewed event
		{QuoteStatusSent, QuoteStatusDeclined},
		{QuoteStatusViewed, QuoteStatusViewed},
		{QuoteStatusViewed, QuoteStatusPaid},
		{QuoteStatusPaid, QuoteStatusScheduled},
		{QuoteStatusPaid, QuoteStatusInProgress},
		{QuoteStatusPaid, QuoteStatusCompleted},
		{QuoteStatusScheduled, QuoteStatusInProgress},
		{QuoteStatusScheduled, QuoteStatusCompleted},
		{QuoteStatusInProgress, QuoteStatusCompleted},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	rejected := []struct {
		from, to QuoteStatus
	}{
		{QuoteStatusDraft, QuoteStatusPaid},
		{QuoteStatusDraft, QuoteStatusCompleted},
		{QuoteStatusSent, QuoteStatusScheduled},
		{QuoteStatusPaid, QuoteStatusSent},
		{QuoteStatusCompleted, QuoteStatusScheduled},
		{QuoteStatusCompleted, QuoteStatusCompleted},
		{QuoteStatusDeclined, QuoteStatusPaid},
		{QuoteStatusExpired, QuoteStatusSent},
		{QuoteStatusPaid, QuoteStatusDeclined},
	}
	for _, tc := range rejected {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestQuoteStatus_IsTerminal(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusCompleted, QuoteStatusExpired, QuoteStatusDeclined} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []QuoteStatus{QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed, QuoteStatusPaid, QuoteStatusScheduled, QuoteStatusInProgress} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestQuote_EffectiveStatus(t *testing.T) {
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name       string
		status     QuoteStatus
		validUntil time.Time
		want       QuoteStatus
	}{
		{"sent within window", QuoteStatusSent, future, QuoteStatusSent},
		{"sent past window", QuoteStatusSent, past, QuoteStatusExpired},
		{"viewed past window", QuoteStatusViewed, past, QuoteStatusExpired},
		{"draft past window", QuoteStatusDraft, past, QuoteStatusExpired},
		{"paid never expires", QuoteStatusPaid, past, QuoteStatusPaid},
		{"completed never expires", QuoteStatusCompleted, past, QuoteStatusCompleted},
		{"declined stays declined", QuoteStatusDeclined, past, QuoteStatusDeclined},
		{"no validUntil means no expiry", QuoteStatusSent, time.Time{}, QuoteStatusSent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Quote{Status: tc.status, ValidUntil: tc.validUntil}
			if got := q.EffectiveStatus(now); got != tc.want {
				t.Fatalf("EffectiveStatus = %s, want %s", got, tc.want)
			}
		})
	}
}
