package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aerodetail/internal/domain/entities"
	mock_interfaces "aerodetail/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRecommendationUseCaseForTest(t *testing.T) (*RecommendationUseCase, *mock_interfaces.MockIRecommendationRepository, *mock_interfaces.MockIAccountStatsRepository) {
	ctrl := gomock.NewController(t)
	recs := mock_interfaces.NewMockIRecommendationRepository(ctrl)
	stats := mock_interfaces.NewMockIAccountStatsRepository(ctrl)
	uc := NewRecommendationUseCase(recs, stats)
	uc.now = func() time.Time { return ucNow }
	return uc, recs, stats
}

func activeRec(id string, createdAgo time.Duration) entities.Recommendation {
	created := ucNow.Add(-createdAgo)
	return entities.Recommendation{
		ID:        id,
		AccountID: "acct-1",
		Type:      entities.RecommendationUpsell,
		Priority:  6,
		CreatedAt: created,
		ExpiresAt: created.Add(entities.RecommendationTTL),
	}
}

func TestRecommendationUseCase_Generate(t *testing.T) {
	t.Run("invalid account id", func(t *testing.T) {
		uc, _, _ := newRecommendationUseCaseForTest(t)
		_, err := uc.Generate(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("suppressed while three recent recs are active", func(t *testing.T) {
		uc, recs, _ := newRecommendationUseCaseForTest(t)
		recs.EXPECT().ListByAccountID(gomock.Any(), "acct-1").Return([]entities.Recommendation{
			activeRec("r-1", 2*time.Hour),
			activeRec("r-2", 2*time.Hour),
			activeRec("r-3", 2*time.Hour),
		}, nil)

		out, err := uc.Generate(context.Background(), "acct-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected existing set returned, got %d", len(out))
		}
	})

	t.Run("dismissed recs do not count toward suppression", func(t *testing.T) {
		uc, recs, stats := newRecommendationUseCaseForTest(t)
		dismissed := activeRec("r-1", time.Hour)
		dismissed.Dismissed = true
		recs.EXPECT().ListByAccountID(gomock.Any(), "acct-1").Return([]entities.Recommendation{
			dismissed,
			activeRec("r-2", time.Hour),
			activeRec("r-3", time.Hour),
		}, nil)
		stats.EXPECT().Stats(gomock.Any(), "acct-1").Return(entities.AccountStats{AccountID: "acct-1"}, nil)

		out, err := uc.Generate(context.Background(), "acct-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Nothing scored, so the active set comes back unchanged.
		if len(out) != 2 {
			t.Fatalf("expected 2 active recs, got %d", len(out))
		}
	})

	t.Run("old active recs do not suppress a new run", func(t *testing.T) {
		uc, recs, stats := newRecommendationUseCaseForTest(t)
		recs.EXPECT().ListByAccountID(gomock.Any(), "acct-1").Return([]entities.Recommendation{
			activeRec("r-1", 30*time.Hour),
			activeRec("r-2", 30*time.Hour),
			activeRec("r-3", 30*time.Hour),
		}, nil)
		stats.EXPECT().Stats(gomock.Any(), "acct-1").Return(entities.AccountStats{
			AccountID: "acct-1",
			LaborRate: 75,
			Customers: []entities.CustomerStats{{
				CustomerID:           "cust-1",
				CustomerName:         "N123AB LLC",
				TotalJobs:            6,
				TotalWaitTimeMinutes: 180,
			}},
		}, nil)
		recs.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []entities.Recommendation) ([]entities.Recommendation, error) {
				if len(batch) != 2 {
					t.Fatalf("expected wait-time and never-raised suggestions, got %d", len(batch))
				}
				for _, r := range batch {
					if r.ID == "" || r.AccountID != "acct-1" {
						t.Fatalf("unexpected rec: %+v", r)
					}
					if !r.CreatedAt.Equal(ucNow) || !r.ExpiresAt.Equal(ucNow.Add(entities.RecommendationTTL)) {
						t.Fatalf("unexpected timestamps: %+v", r)
					}
				}
				if batch[0].Priority < batch[1].Priority {
					t.Fatalf("expected descending priority, got %d then %d", batch[0].Priority, batch[1].Priority)
				}
				return batch, nil
			},
		)

		out, err := uc.Generate(context.Background(), "acct-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 generated recs, got %d", len(out))
		}
	})

	t.Run("stats error propagates", func(t *testing.T) {
		uc, recs, stats := newRecommendationUseCaseForTest(t)
		recs.EXPECT().ListByAccountID(gomock.Any(), "acct-1").Return(nil, nil)
		stats.EXPECT().Stats(gomock.Any(), "acct-1").Return(entities.AccountStats{}, errors.New("db"))

		_, err := uc.Generate(context.Background(), "acct-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRecommendationUseCase_ListActive(t *testing.T) {
	t.Run("filters acted-on, dismissed and expired", func(t *testing.T) {
		uc, recs, _ := newRecommendationUseCaseForTest(t)
		acted := activeRec("r-acted", time.Hour)
		acted.ActedOn = true
		dismissed := activeRec("r-dismissed", time.Hour)
		dismissed.Dismissed = true
		expired := activeRec("r-expired", 8*24*time.Hour)
		recs.EXPECT().ListByAccountID(gomock.Any(), "acct-1").Return([]entities.Recommendation{
			activeRec("r-live", time.Hour),
			acted,
			dismissed,
			expired,
		}, nil)

		out, err := uc.ListActive(context.Background(), "acct-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "r-live" {
			t.Fatalf("expected only r-live, got %+v", out)
		}
	})
}

func TestRecommendationUseCase_MarkActedOn(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, recs, _ := newRecommendationUseCaseForTest(t)
		recs.EXPECT().MarkActedOn(gomock.Any(), "r-1").Return(entities.Recommendation{}, nil)

		_, err := uc.MarkActedOn(context.Background(), "r-1")
		if !errors.Is(err, ErrRecommendationNotFound) {
			t.Fatalf("expected ErrRecommendationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, recs, _ := newRecommendationUseCaseForTest(t)
		rec := activeRec("r-1", time.Hour)
		rec.ActedOn = true
		recs.EXPECT().MarkActedOn(gomock.Any(), "r-1").Return(rec, nil)

		out, err := uc.MarkActedOn(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.ActedOn {
			t.Fatalf("expected acted_on set, got %+v", out)
		}
	})
}

func TestRecommendationUseCase_Dismiss(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newRecommendationUseCaseForTest(t)
		_, err := uc.Dismiss(context.Background(), "")
		if !errors.Is(err, ErrInvalidRecommendation) {
			t.Fatalf("expected ErrInvalidRecommendation, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, recs, _ := newRecommendationUseCaseForTest(t)
		rec := activeRec("r-1", time.Hour)
		rec.Dismissed = true
		recs.EXPECT().Dismiss(gomock.Any(), "r-1").Return(rec, nil)

		out, err := uc.Dismiss(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Dismissed {
			t.Fatalf("expected dismissed set, got %+v", out)
		}
	})
}
