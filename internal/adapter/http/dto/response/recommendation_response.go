package response

import (
	"time"

	"aerodetail/internal/domain/entities"
)

type RecommendationResponse struct {
	ID        string         `json:"id"`
	AccountID string         `json:"account_id"`
	Type      string         `json:"type"`
	Priority  int            `json:"priority"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	ActedOn   bool           `json:"acted_on"`
	Dismissed bool           `json:"dismissed"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

func FromRecommendation(rec entities.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:        rec.ID,
		AccountID: rec.AccountID,
		Type:      string(rec.Type),
		Priority:  rec.Priority,
		Title:     rec.Title,
		Message:   rec.Message,
		Data:      rec.Data,
		ActedOn:   rec.ActedOn,
		Dismissed: rec.Dismissed,
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
	}
}

func FromRecommendations(recs []entities.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromRecommendation(rec))
	}
	return out
}
