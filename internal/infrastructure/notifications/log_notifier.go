package notifications

import (
	"context"
	"encoding/json"
	"log"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"
)

// LogNotifier writes outbound notifications to the service log. Delivery
// through a real email/SMS provider happens in a separate worker that tails
// these structured lines; the engine only guarantees the payload is complete.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendQuote(ctx context.Context, snapshot entities.QuoteSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	log.Printf("[notification][quote] send quote_id=%s to=%s payload=%s", snapshot.QuoteID, snapshot.CustomerEmail, b)
	return nil
}

func (n *LogNotifier) NotifyQuoteRequested(ctx context.Context, quote entities.Quote) error {
	log.Printf("[notification][quote] new quote requested quote_id=%s account_id=%s customer=%s aircraft=%s",
		quote.ID, quote.AccountID, quote.CustomerName, quote.AircraftLabel)
	return nil
}
