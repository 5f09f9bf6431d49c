package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/domain"
	"github.com/zpredict/prediction-service/internal/model"
)

// Artifact file names inside a model directory.
const (
	RegressorFile         = "regressor.json"
	ClassifierFile        = "classifier.json"
	ClassifierEncoderFile = "classifier_encoder.json"
	FeatureEncoderFile    = "feature_encoder.json"
	ValidCoursesFile      = "valid_courses_map.json"

	HybridFile     = "hybrid_df.json"
	OccupationFile = "occupation_df.json"
	VectorizerFile = "tfidf_vectorizer.json"
)

// Store reads artifact bundles from a model directory. Each artifact is
// deserialized independently: a missing or corrupt file logs a warning and
// leaves its field nil, it never aborts the remaining artifacts.
type Store struct {
	dir string
	log *zap.Logger
}

func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// ReadBundle loads the admission artifact set. A missing directory is the
// only fatal condition.
func (s *Store) ReadBundle() (*Bundle, error) {
	if err := s.checkDir(); err != nil {
		return nil, err
	}

	b := &Bundle{}
	readArtifact(s, RegressorFile, &b.Regressor)
	readArtifact(s, ClassifierFile, &b.Classifier)
	readArtifact(s, ClassifierEncoderFile, &b.ClassifierEncoder)
	readArtifact(s, FeatureEncoderFile, &b.FeatureEncoder)
	readArtifact(s, ValidCoursesFile, &b.ValidCourses)

	// Catch encoder column drift at load time rather than serving silently
	// corrupt predictions.
	if b.FeatureEncoder != nil {
		if err := model.RegressorSchema.Validate(b.FeatureEncoder); err != nil {
			s.log.Warn("feature encoder does not match regressor schema, discarding", zap.Error(err))
			b.FeatureEncoder = nil
		}
	}
	if b.ClassifierEncoder != nil {
		if err := model.ClassifierSchema.Validate(b.ClassifierEncoder); err != nil {
			s.log.Warn("classifier encoder does not match classifier schema, discarding", zap.Error(err))
			b.ClassifierEncoder = nil
		}
	}

	if !b.IsUsable() {
		s.log.Warn("no primary models were loaded", zap.String("dir", s.dir))
	}
	return b, nil
}

// ReadCareerBundle loads the career artifact set and prepares the derived
// combined text field once, as part of catalog preparation.
func (s *Store) ReadCareerBundle() (*CareerBundle, error) {
	if err := s.checkDir(); err != nil {
		return nil, err
	}

	b := &CareerBundle{}
	readArtifact(s, HybridFile, &b.Hybrid)
	readArtifact(s, OccupationFile, &b.Occupations)
	readArtifact(s, VectorizerFile, &b.Vectorizer)

	for i := range b.Occupations {
		if b.Occupations[i].CombinedText == "" {
			b.Occupations[i].CombinedText = b.Occupations[i].Title + " " + b.Occupations[i].Description
		}
	}

	if !b.IsUsable() {
		s.log.Warn("no career datasets were loaded", zap.String("dir", s.dir))
	}
	return b, nil
}

func (s *Store) checkDir() error {
	if _, err := os.Stat(s.dir); err != nil {
		s.log.Error("model directory does not exist", zap.String("dir", s.dir))
		return fmt.Errorf("model directory %s: %w", s.dir, domain.ErrModelsUnavailable)
	}
	return nil
}

func readArtifact[T any](s *Store, name string, out *T) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("artifact missing, continuing without it", zap.String("artifact", name), zap.Error(err))
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("artifact corrupt, continuing without it", zap.String("artifact", name), zap.Error(err))
		var zero T
		*out = zero
	}
}
