package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"aerodetail/internal/usecase"
	"aerodetail/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
)

const defaultRecommendationCron = "0 3 * * *"

// RecommendationScheduler runs the recommendation scan for every account on
// a cron schedule. Suppression inside the usecase keeps overlapping runs
// from flooding an account.

type RecommendationScheduler struct {
	cron            *cron.Cron
	recommendations usecase.IRecommendationUseCase
	accounts        interfaces.IAccountRepository
	spec            string
}

func NewRecommendationScheduler(recommendations usecase.IRecommendationUseCase, accounts interfaces.IAccountRepository) *RecommendationScheduler {
	spec := os.Getenv("RECOMMENDATION_CRON")
	if spec == "" {
		spec = defaultRecommendationCron
	}
	return &RecommendationScheduler{
		cron:            cron.New(),
		recommendations: recommendations,
		accounts:        accounts,
		spec:            spec,
	}
}

func (s *RecommendationScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.scanAllAccounts); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[recommendation][scheduler] started spec=%q", s.spec)
	return nil
}

func (s *RecommendationScheduler) Stop() {
	s.cron.Stop()
	log.Printf("[recommendation][scheduler] stopped")
}

func (s *RecommendationScheduler) scanAllAccounts() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ids, err := s.accounts.ListAccountIDs(ctx)
	if err != nil {
		log.Printf("[recommendation][scheduler] account listing failed err=%v", err)
		return
	}

	for _, accountID := range ids {
		recs, err := s.recommendations.Generate(ctx, accountID)
		if err != nil {
			log.Printf("[recommendation][scheduler] scan failed account_id=%s err=%v", accountID, err)
			continue
		}
		log.Printf("[recommendation][scheduler] scan done account_id=%s active=%d", accountID, len(recs))
	}
}
