// Package predictor scores student profiles against the pre-trained admission
// models: a regressor for the Z-score cutoff and a classifier for the
// selection probability.
package predictor

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/artifact"
	"github.com/zpredict/prediction-service/internal/domain"
)

type Predictor struct {
	loader *artifact.Loader[artifact.Bundle]
	log    *zap.Logger
}

func New(loader *artifact.Loader[artifact.Bundle], log *zap.Logger) *Predictor {
	return &Predictor{loader: loader, log: log}
}

// PredictCutoff predicts the admission Z-score cutoff for a course/university
// pair. NaN or infinite model output is recovered as 0.0 with a warning;
// negative finite values pass through unchanged.
func (p *Predictor) PredictCutoff(req domain.PredictionRequest) (float64, error) {
	if req.Year == 0 || req.University == "" || req.CourseName == "" || req.District == "" || req.Stream == "" {
		return 0, &domain.ValidationError{Msg: "year, university, course_name, district and stream are required"}
	}

	b, err := p.loader.Load()
	if err != nil {
		return 0, err
	}
	if b.Regressor == nil {
		return 0, &domain.NotLoadedError{Component: "regressor"}
	}
	if b.FeatureEncoder == nil {
		return 0, &domain.NotLoadedError{Component: "feature encoder"}
	}

	// Categorical order is RegressorSchema's contract:
	// [University, Course Name, District, Stream].
	encoded, err := b.FeatureEncoder.Transform([]string{
		req.University,
		req.CourseName,
		strings.ToUpper(req.District),
		req.Stream,
	})
	if err != nil {
		return 0, err
	}

	// Numeric features precede the encoded categorical block.
	features := append([]float64{
		float64(req.Year),
		boolToFloat(req.AptitudeTest),
		boolToFloat(req.AllIslandMerit),
	}, encoded...)

	result, err := b.Regressor.Predict(features)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		p.log.Warn("invalid cutoff prediction, returning default value",
			zap.String("course", req.CourseName), zap.String("university", req.University))
		return 0.0, nil
	}
	return result, nil
}

// PredictSelectionProbability predicts the probability that the student is
// selected for a course/university pair, clamped into [0,1].
func (p *Predictor) PredictSelectionProbability(req domain.PredictionRequest) (float64, error) {
	if req.University == "" || req.CourseName == "" || req.District == "" || req.Stream == "" {
		return 0, &domain.ValidationError{Msg: "university, course_name, district and stream are required"}
	}

	b, err := p.loader.Load()
	if err != nil {
		return 0, err
	}
	if b.Classifier == nil {
		return 0, &domain.NotLoadedError{Component: "classifier"}
	}
	if b.ClassifierEncoder == nil {
		return 0, &domain.NotLoadedError{Component: "classifier encoder"}
	}

	// Categorical order here differs from the cutoff path: the two encoders
	// were fitted independently (see ClassifierSchema).
	encoded, err := b.ClassifierEncoder.Transform([]string{
		req.Stream,
		strings.ToUpper(req.District),
		req.CourseName,
		req.University,
	})
	if err != nil {
		return 0, err
	}

	features := append([]float64{
		req.ZScore,
		boolToFloat(req.AptitudeTest),
		boolToFloat(req.AllIslandMerit),
	}, encoded...)

	probability, err := b.Classifier.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		p.log.Warn("invalid probability prediction, returning default value",
			zap.String("course", req.CourseName), zap.String("university", req.University))
		return 0.0, nil
	}
	return math.Max(0.0, math.Min(1.0, probability)), nil
}

// RecommendationStatus maps a selection probability to its qualitative label.
// Total over all floats: anything outside [0,1] (including NaN) is Unknown.
func RecommendationStatus(probability float64) string {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return domain.StatusUnknown
	}
	switch {
	case probability >= 0.7:
		return domain.StatusHighlyRecommended
	case probability >= 0.4:
		return domain.StatusRecommended
	default:
		return domain.StatusNotRecommended
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
