package model

import (
	"fmt"
	"math"
)

// LinearRegressor predicts a continuous cutoff score from a combined
// numeric + one-hot feature vector.
type LinearRegressor struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func (r *LinearRegressor) Predict(features []float64) (float64, error) {
	if len(features) != len(r.Coefficients) {
		return 0, fmt.Errorf("regressor expects %d features, got %d", len(r.Coefficients), len(features))
	}
	sum := r.Intercept
	for i, f := range features {
		sum += r.Coefficients[i] * f
	}
	return sum, nil
}

// LogisticClassifier is a binary classifier; PredictProba returns the
// probability mass of the positive ("selected") class.
type LogisticClassifier struct {
	Intercept float64   `json:"intercept"`
	Weights   []float64 `json:"weights"`
}

func (c *LogisticClassifier) PredictProba(features []float64) (float64, error) {
	if len(features) != len(c.Weights) {
		return 0, fmt.Errorf("classifier expects %d features, got %d", len(c.Weights), len(features))
	}
	z := c.Intercept
	for i, f := range features {
		z += c.Weights[i] * f
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}
