package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/cache"
	"github.com/zpredict/prediction-service/internal/career"
	"github.com/zpredict/prediction-service/internal/domain"
	"github.com/zpredict/prediction-service/internal/predictor"
)

const (
	// pairLimit caps how many course/university pairs are scored per request.
	pairLimit = 100

	defaultCourseLimit = 50
	maxCourseLimit     = 200
)

// Store persists prediction and career sessions.
type Store interface {
	CreatePredictionSession(ctx context.Context, session *domain.PredictionSession) (string, error)
	GetPredictionSession(ctx context.Context, sessionID string) (*domain.PredictionSession, error)
	SavePredictions(ctx context.Context, sessionID string, preds []domain.CoursePrediction, notes string) (int, error)
	GetSavedPredictions(ctx context.Context, sessionID string) ([]domain.SavedPrediction, error)
	CreateCareerSession(ctx context.Context, session *domain.CareerSession) (string, error)
}

type Service struct {
	store       Store
	cache       *cache.Cache
	predictor   *predictor.Predictor
	recommender *career.Recommender
	log         *zap.Logger
}

func NewService(store Store, cache *cache.Cache, pred *predictor.Predictor, rec *career.Recommender, log *zap.Logger) *Service {
	return &Service{
		store:       store,
		cache:       cache,
		predictor:   pred,
		recommender: rec,
		log:         log,
	}
}

// GeneratePredictions scores every course/university pair available for the
// request's stream. A failure on a single pair is logged and skipped, never
// aborting the batch; the call fails only when every pair fails.
func (s *Service) GeneratePredictions(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	if req.Year == 0 || req.ZScore == 0 || req.Stream == "" || req.District == "" {
		return nil, &domain.ValidationError{Msg: "year, z_score, stream and district are required"}
	}

	// Check cache
	cached, found, err := s.cache.GetPredictions(ctx, req)
	if err != nil {
		s.log.Warn("cache get error", zap.Error(err))
	}
	if found {
		sessionID, err := s.createSession(ctx, req, len(cached))
		if err != nil {
			return nil, err
		}
		return &domain.PredictionResult{
			Predictions: cached,
			SessionID:   sessionID,
			CacheHit:    true,
		}, nil
	}

	pairs, err := s.predictor.AvailableCourses(req.Stream, pairLimit)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, domain.ErrStreamNotFound
	}

	predictions := make([]domain.CoursePrediction, 0, len(pairs))
	for _, pair := range pairs {
		pairReq := req
		pairReq.University = pair.UniversityName
		pairReq.CourseName = pair.CourseName

		cutoff, err := s.predictor.PredictCutoff(pairReq)
		if err != nil {
			s.log.Warn("cutoff prediction failed, skipping pair",
				zap.String("course", pair.CourseName),
				zap.String("university", pair.UniversityName),
				zap.Error(err))
			continue
		}

		probability, err := s.predictor.PredictSelectionProbability(pairReq)
		if err != nil {
			s.log.Warn("probability prediction failed, skipping pair",
				zap.String("course", pair.CourseName),
				zap.String("university", pair.UniversityName),
				zap.Error(err))
			continue
		}

		predictions = append(predictions, domain.CoursePrediction{
			UniversityName:       pair.UniversityName,
			CourseName:           pair.CourseName,
			PredictedCutoff:      round3(cutoff),
			PredictedProbability: round3(probability),
			Recommendation:       predictor.RecommendationStatus(probability),
		})
	}

	if len(predictions) == 0 {
		s.log.Error("all course/university pairs failed", zap.Int("pairs", len(pairs)))
		return nil, domain.ErrNoPredictions
	}

	// Sort by probability descending
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].PredictedProbability > predictions[j].PredictedProbability
	})

	sessionID, err := s.createSession(ctx, req, len(predictions))
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.SetPredictions(ctx, req, predictions); cacheErr != nil {
		s.log.Warn("cache set error", zap.Error(cacheErr))
	}

	return &domain.PredictionResult{
		Predictions: predictions,
		SessionID:   sessionID,
		CacheHit:    false,
	}, nil
}

func (s *Service) createSession(ctx context.Context, req domain.PredictionRequest, total int) (string, error) {
	if s.store == nil {
		return "", nil
	}
	sessionID, err := s.store.CreatePredictionSession(ctx, &domain.PredictionSession{
		Year:             req.Year,
		ZScore:           req.ZScore,
		Stream:           req.Stream,
		District:         req.District,
		TotalPredictions: total,
	})
	if err != nil {
		return "", fmt.Errorf("create prediction session: %w", err)
	}
	return sessionID, nil
}

// ListCourses enumerates course/university pairs for a stream. Never fails:
// unresolvable streams and unloaded bundles both yield an empty list.
func (s *Service) ListCourses(ctx context.Context, stream string, limit int) []domain.CourseOption {
	if limit <= 0 {
		limit = defaultCourseLimit
	} else if limit > maxCourseLimit {
		limit = maxCourseLimit
	}

	pairs, err := s.predictor.AvailableCourses(stream, limit)
	if err != nil {
		s.log.Warn("course listing unavailable", zap.String("stream", stream), zap.Error(err))
		return nil
	}
	return pairs
}

// RecommendCareers ranks careers for a degree/program description, optionally
// recording a career session.
func (s *Service) RecommendCareers(ctx context.Context, degreeProgram string, saveSession bool) (*domain.CareerResult, error) {
	if degreeProgram == "" {
		return nil, &domain.ValidationError{Msg: "degree_program is required"}
	}

	recs, found, err := s.cache.GetCareers(ctx, degreeProgram)
	if err != nil {
		s.log.Warn("cache get error", zap.Error(err))
	}
	cacheHit := found
	if !found {
		recs = s.recommender.Recommend(career.Input{DegreeProgram: degreeProgram})
		if len(recs) > 0 {
			if cacheErr := s.cache.SetCareers(ctx, degreeProgram, recs); cacheErr != nil {
				s.log.Warn("cache set error", zap.Error(cacheErr))
			}
		}
	}

	result := &domain.CareerResult{
		Recommendations: recs,
		CacheHit:        cacheHit,
	}

	if saveSession && s.store != nil {
		sessionID, err := s.store.CreateCareerSession(ctx, &domain.CareerSession{
			DegreeProgram:   degreeProgram,
			Recommendations: len(recs),
		})
		if err != nil {
			return nil, fmt.Errorf("create career session: %w", err)
		}
		result.SessionID = sessionID
	}
	return result, nil
}

// SaveSelectedPredictions stores the predictions a student picked out of a
// session's results.
func (s *Service) SaveSelectedPredictions(ctx context.Context, sessionID string, preds []domain.CoursePrediction, notes string) (int, error) {
	if sessionID == "" {
		return 0, &domain.ValidationError{Msg: "session_id is required"}
	}
	if len(preds) == 0 {
		return 0, &domain.ValidationError{Msg: "no predictions selected"}
	}
	return s.store.SavePredictions(ctx, sessionID, preds, notes)
}

// PredictionHistory lists the saved predictions of a session.
func (s *Service) PredictionHistory(ctx context.Context, sessionID string) ([]domain.SavedPrediction, error) {
	if sessionID == "" {
		return nil, &domain.ValidationError{Msg: "session_id is required"}
	}
	return s.store.GetSavedPredictions(ctx, sessionID)
}

// ModelInfo reports artifact load state for the health endpoint.
func (s *Service) ModelInfo() predictor.Info {
	return s.predictor.Info()
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
