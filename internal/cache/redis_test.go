package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/zpredict/prediction-service/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, time.Minute), mr
}

func testPredictionRequest() domain.PredictionRequest {
	return domain.PredictionRequest{
		Year:           2024,
		ZScore:         1.85,
		Stream:         "Physical Science",
		District:       "Colombo",
		AllIslandMerit: true,
	}
}

func TestPredictionsRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	req := testPredictionRequest()

	preds := []domain.CoursePrediction{
		{UniversityName: "University of Colombo", CourseName: "Computer Science",
			PredictedCutoff: 1.92, PredictedProbability: 0.81, Recommendation: domain.StatusHighlyRecommended},
	}

	if _, found, err := c.GetPredictions(ctx, req); err != nil || found {
		t.Fatalf("expected clean miss, found=%v err=%v", found, err)
	}

	if err := c.SetPredictions(ctx, req, preds); err != nil {
		t.Fatalf("SetPredictions failed: %v", err)
	}

	got, found, err := c.GetPredictions(ctx, req)
	if err != nil {
		t.Fatalf("GetPredictions failed: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].CourseName != "Computer Science" {
		t.Errorf("unexpected cached payload: %+v", got)
	}
}

func TestPredictionKeyDistinguishesRequests(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	req := testPredictionRequest()
	if err := c.SetPredictions(ctx, req, []domain.CoursePrediction{{CourseName: "Engineering"}}); err != nil {
		t.Fatal(err)
	}

	other := req
	other.ZScore = 1.2
	if _, found, _ := c.GetPredictions(ctx, other); found {
		t.Error("different z-score must not hit the same cache entry")
	}
}

func TestCareersRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	recs := []domain.CareerRecommendation{
		{Title: "Software Developers", SimilarityScore: 0.93, Vacancies: 120, CombinedScore: 0.72, CareerCode: "15-1252.00"},
	}

	if err := c.SetCareers(ctx, "Software Engineering", recs); err != nil {
		t.Fatalf("SetCareers failed: %v", err)
	}

	// Key is case-normalized.
	got, found, err := c.GetCareers(ctx, "  software engineering ")
	if err != nil || !found {
		t.Fatalf("expected hit, found=%v err=%v", found, err)
	}
	if got[0].CareerCode != "15-1252.00" {
		t.Errorf("unexpected cached payload: %+v", got)
	}
}

func TestClearPredictions(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	req := testPredictionRequest()

	if err := c.SetPredictions(ctx, req, []domain.CoursePrediction{{CourseName: "Medicine"}}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetCareers(ctx, "medicine", []domain.CareerRecommendation{{Title: "Physicians"}}); err != nil {
		t.Fatal(err)
	}

	if err := c.ClearPredictions(ctx); err != nil {
		t.Fatalf("ClearPredictions failed: %v", err)
	}

	if _, found, _ := c.GetPredictions(ctx, req); found {
		t.Error("prediction entries should be cleared")
	}
	if _, found, _ := c.GetCareers(ctx, "medicine"); !found {
		t.Error("career entries should survive ClearPredictions")
	}
}

func TestEntryExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	req := testPredictionRequest()

	if err := c.SetPredictions(ctx, req, []domain.CoursePrediction{{CourseName: "Medicine"}}); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Minute)

	if _, found, _ := c.GetPredictions(ctx, req); found {
		t.Error("entry should expire after TTL")
	}
}
