package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zpredict/prediction-service/internal/domain"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func predictionKey(req domain.PredictionRequest) string {
	return fmt.Sprintf("pred:%d:%.3f:%s:%s:%t:%t",
		req.Year, req.ZScore,
		strings.ToLower(req.Stream), strings.ToUpper(req.District),
		req.AptitudeTest, req.AllIslandMerit)
}

func careerKey(degreeProgram string) string {
	return "career:" + strings.ToLower(strings.TrimSpace(degreeProgram))
}

// Get prediction results from cache
func (c *Cache) GetPredictions(ctx context.Context, req domain.PredictionRequest) ([]domain.CoursePrediction, bool, error) {
	key := predictionKey(req)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get predictions from cache: %w", err)
	}

	var preds []domain.CoursePrediction
	if err := json.Unmarshal([]byte(val), &preds); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal predictions %s: %w", key, err)
	}
	return preds, true, nil
}

// Store prediction results in cache
func (c *Cache) SetPredictions(ctx context.Context, req domain.PredictionRequest, preds []domain.CoursePrediction) error {
	key := predictionKey(req)
	val, err := json.Marshal(preds)
	if err != nil {
		return fmt.Errorf("failed to marshal predictions: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set predictions in cache: %w", err)
	}
	return nil
}

// Get career recommendations from cache
func (c *Cache) GetCareers(ctx context.Context, degreeProgram string) ([]domain.CareerRecommendation, bool, error) {
	key := careerKey(degreeProgram)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get careers from cache: %w", err)
	}

	var recs []domain.CareerRecommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal careers %s: %w", key, err)
	}
	return recs, true, nil
}

// Store career recommendations in cache
func (c *Cache) SetCareers(ctx context.Context, degreeProgram string, recs []domain.CareerRecommendation) error {
	key := careerKey(degreeProgram)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal careers: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set careers in cache: %w", err)
	}
	return nil
}

// Clear cached predictions: used when model artifacts are republished
func (c *Cache) ClearPredictions(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "pred:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
