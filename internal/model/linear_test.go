package model

import (
	"math"
	"testing"
)

func TestLinearRegressorPredict(t *testing.T) {
	reg := &LinearRegressor{
		Intercept:    1.0,
		Coefficients: []float64{0.5, -0.25, 2.0},
	}

	got, err := reg.Predict([]float64{2, 4, 1})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	want := 1.0 + 1.0 - 1.0 + 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLinearRegressorFeatureMismatch(t *testing.T) {
	reg := &LinearRegressor{Coefficients: []float64{1, 2}}

	if _, err := reg.Predict([]float64{1}); err == nil {
		t.Error("expected error for feature length mismatch")
	}
}

func TestLogisticClassifierProba(t *testing.T) {
	clf := &LogisticClassifier{
		Intercept: 0,
		Weights:   []float64{0, 0},
	}

	p, err := clf.PredictProba([]float64{10, -3})
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("zero weights should yield 0.5, got %v", p)
	}

	clf.Intercept = 4
	p, _ = clf.PredictProba([]float64{0, 0})
	if p <= 0.9 || p >= 1 {
		t.Errorf("expected probability near 1, got %v", p)
	}

	clf.Intercept = -4
	p, _ = clf.PredictProba([]float64{0, 0})
	if p >= 0.1 || p <= 0 {
		t.Errorf("expected probability near 0, got %v", p)
	}
}

func TestLogisticClassifierFeatureMismatch(t *testing.T) {
	clf := &LogisticClassifier{Weights: []float64{1}}

	if _, err := clf.PredictProba([]float64{1, 2}); err == nil {
		t.Error("expected error for feature length mismatch")
	}
}
