package artifact

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/domain"
	"github.com/zpredict/prediction-service/internal/model"
)

func writeArtifact(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeAdmissionArtifacts(t *testing.T, dir string) {
	t.Helper()
	writeArtifact(t, dir, RegressorFile, model.LinearRegressor{
		Intercept:    1.5,
		Coefficients: make([]float64, 12),
	})
	writeArtifact(t, dir, ClassifierFile, model.LogisticClassifier{
		Intercept: 0.5,
		Weights:   make([]float64, 12),
	})
	writeArtifact(t, dir, FeatureEncoderFile, model.OneHotEncoder{
		Columns: []string{"University", "Course Name", "District", "Stream"},
		Categories: [][]string{
			{"University of Colombo", "University of Moratuwa"},
			{"Computer Science", "Engineering", "Medicine"},
			{"COLOMBO", "KANDY"},
			{"Physical Science", "Commerce"},
		},
	})
	writeArtifact(t, dir, ClassifierEncoderFile, model.OneHotEncoder{
		Columns: []string{"Stream", "District", "Course Name", "University"},
		Categories: [][]string{
			{"Physical Science", "Commerce"},
			{"COLOMBO", "KANDY"},
			{"Computer Science", "Engineering", "Medicine"},
			{"University of Colombo", "University of Moratuwa"},
		},
	})
	writeArtifact(t, dir, ValidCoursesFile, map[string][]string{
		"Physical Science": {"Computer Science", "Engineering"},
		"Commerce":         {"Accounting"},
	})
}

func TestReadBundleComplete(t *testing.T) {
	dir := t.TempDir()
	writeAdmissionArtifacts(t, dir)

	b, err := NewStore(dir, zap.NewNop()).ReadBundle()
	if err != nil {
		t.Fatalf("ReadBundle failed: %v", err)
	}

	if !b.IsUsable() {
		t.Error("complete bundle should be usable")
	}
	if b.Regressor == nil || b.Classifier == nil || b.FeatureEncoder == nil ||
		b.ClassifierEncoder == nil || b.ValidCourses == nil {
		t.Errorf("expected all artifacts loaded: %+v", b)
	}
}

func TestReadBundlePartial(t *testing.T) {
	dir := t.TempDir()
	writeAdmissionArtifacts(t, dir)
	os.Remove(filepath.Join(dir, ClassifierFile))

	b, err := NewStore(dir, zap.NewNop()).ReadBundle()
	if err != nil {
		t.Fatalf("ReadBundle failed: %v", err)
	}

	if b.Classifier != nil {
		t.Error("classifier should be nil when its artifact is missing")
	}
	if b.Regressor == nil {
		t.Error("regressor should still load when classifier is missing")
	}
	if !b.IsUsable() {
		t.Error("bundle with regressor only should be usable")
	}
}

func TestReadBundleCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	writeAdmissionArtifacts(t, dir)
	if err := os.WriteFile(filepath.Join(dir, RegressorFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := NewStore(dir, zap.NewNop()).ReadBundle()
	if err != nil {
		t.Fatalf("ReadBundle failed: %v", err)
	}

	if b.Regressor != nil {
		t.Error("corrupt regressor should be discarded")
	}
	if b.Classifier == nil {
		t.Error("corrupt regressor must not abort loading the classifier")
	}
}

func TestReadBundleMissingDirectory(t *testing.T) {
	_, err := NewStore("/does/not/exist", zap.NewNop()).ReadBundle()
	if err == nil {
		t.Fatal("expected error for missing model directory")
	}
	if !errors.Is(err, domain.ErrModelsUnavailable) {
		t.Errorf("expected ErrModelsUnavailable, got %v", err)
	}
}

func TestReadBundleSchemaDrift(t *testing.T) {
	dir := t.TempDir()
	writeAdmissionArtifacts(t, dir)
	// Swap the feature encoder's column order.
	writeArtifact(t, dir, FeatureEncoderFile, model.OneHotEncoder{
		Columns: []string{"Stream", "District", "Course Name", "University"},
		Categories: [][]string{
			{"Physical Science"}, {"COLOMBO"}, {"Engineering"}, {"University of Colombo"},
		},
	})

	b, err := NewStore(dir, zap.NewNop()).ReadBundle()
	if err != nil {
		t.Fatalf("ReadBundle failed: %v", err)
	}
	if b.FeatureEncoder != nil {
		t.Error("encoder with drifted column order should be discarded at load time")
	}
}

func TestReadCareerBundleDerivesCombinedText(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, HybridFile, []domain.HybridRow{
		{Occupation: "Software Engineer", OnetSocCode: "15-1252.00", Vacancies: 120},
	})
	writeArtifact(t, dir, OccupationFile, []domain.OccupationRow{
		{Code: "15-1252.00", Title: "Software Developers", Description: "Develop software"},
	})
	writeArtifact(t, dir, VectorizerFile, model.TfidfVectorizer{
		Vocabulary: map[string]int{"software": 0},
		Idf:        []float64{1},
	})

	b, err := NewStore(dir, zap.NewNop()).ReadCareerBundle()
	if err != nil {
		t.Fatalf("ReadCareerBundle failed: %v", err)
	}
	if !b.IsUsable() {
		t.Error("career bundle should be usable")
	}
	if b.Occupations[0].CombinedText != "Software Developers Develop software" {
		t.Errorf("combined text not derived: %q", b.Occupations[0].CombinedText)
	}
}
