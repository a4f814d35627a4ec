package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/domain/scoring"
	"aerodetail/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrInvalidRecommendation  = errors.New("invalid recommendation id")
)

// suppressionWindow and suppressionCount guard against recommendation
// flooding: while this many active recommendations were generated inside
// the window, a scoring run returns the existing set instead of inserting
// more.
const (
	suppressionWindow = 24 * time.Hour
	suppressionCount  = 3
)

// IRecommendationUseCase generates and manages operational recommendations
// for an account.

type IRecommendationUseCase interface {
	Generate(ctx context.Context, accountID string) ([]entities.Recommendation, error)
	ListActive(ctx context.Context, accountID string) ([]entities.Recommendation, error)
	MarkActedOn(ctx context.Context, id string) (entities.Recommendation, error)
	Dismiss(ctx context.Context, id string) (entities.Recommendation, error)
}

type RecommendationUseCase struct {
	recommendations interfaces.IRecommendationRepository
	stats           interfaces.IAccountStatsRepository
	now             func() time.Time

	// accountLocks serializes generation per account so two near-simultaneous
	// runs don't both insert overlapping sets.
	accountLocks sync.Map
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(recommendations interfaces.IRecommendationRepository, stats interfaces.IAccountStatsRepository) *RecommendationUseCase {
	return &RecommendationUseCase{recommendations: recommendations, stats: stats, now: time.Now}
}

func (u *RecommendationUseCase) Generate(ctx context.Context, accountID string) ([]entities.Recommendation, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}

	lock, _ := u.accountLocks.LoadOrStore(accountID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	now := u.now().UTC()
	existing, err := u.recommendations.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var active []entities.Recommendation
	recentCount := 0
	for _, r := range existing {
		if !r.IsActive(now) {
			continue
		}
		active = append(active, r)
		if now.Sub(r.CreatedAt) <= suppressionWindow {
			recentCount++
		}
	}
	if recentCount >= suppressionCount {
		log.Printf("[recommendation][usecase] generation suppressed account_id=%s active=%d", accountID, len(active))
		return active, nil
	}

	stats, err := u.stats.Stats(ctx, accountID)
	if err != nil {
		return nil, err
	}

	suggestions := scoring.Score(stats, now)
	if len(suggestions) == 0 {
		return active, nil
	}

	recs := make([]entities.Recommendation, 0, len(suggestions))
	for _, s := range suggestions {
		recs = append(recs, entities.Recommendation{
			ID:        uuid.NewString(),
			AccountID: accountID,
			Type:      s.Type,
			Priority:  s.Priority,
			Title:     s.Title,
			Message:   s.Message,
			Data:      s.Data,
			CreatedAt: now,
			ExpiresAt: now.Add(entities.RecommendationTTL),
		})
	}

	created, err := u.recommendations.CreateBatch(ctx, recs)
	if err != nil {
		return nil, err
	}
	log.Printf("[recommendation][usecase] generated account_id=%s count=%d", accountID, len(created))
	return created, nil
}

func (u *RecommendationUseCase) ListActive(ctx context.Context, accountID string) ([]entities.Recommendation, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}
	all, err := u.recommendations.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	var active []entities.Recommendation
	for _, r := range all {
		if r.IsActive(now) {
			active = append(active, r)
		}
	}
	return active, nil
}

func (u *RecommendationUseCase) MarkActedOn(ctx context.Context, id string) (entities.Recommendation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Recommendation{}, ErrInvalidRecommendation
	}
	rec, err := u.recommendations.MarkActedOn(ctx, id)
	if err != nil {
		return entities.Recommendation{}, err
	}
	if rec.ID == "" {
		return entities.Recommendation{}, ErrRecommendationNotFound
	}
	return rec, nil
}

func (u *RecommendationUseCase) Dismiss(ctx context.Context, id string) (entities.Recommendation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Recommendation{}, ErrInvalidRecommendation
	}
	rec, err := u.recommendations.Dismiss(ctx, id)
	if err != nil {
		return entities.Recommendation{}, err
	}
	if rec.ID == "" {
		return entities.Recommendation{}, ErrRecommendationNotFound
	}
	return rec, nil
}
