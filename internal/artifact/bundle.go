// Package artifact loads pre-trained model artifacts from disk and caches the
// deserialized bundles in memory. The cache is per-process: under multi-process
// deployment each process loads the artifact directory independently on first
// use.
package artifact

import (
	"github.com/zpredict/prediction-service/internal/domain"
	"github.com/zpredict/prediction-service/internal/model"
)

// Bundle is the admission predictor's artifact set. Fields are nil when the
// corresponding artifact failed to load; the bundle is still served in a
// degraded mode as long as IsUsable holds.
type Bundle struct {
	Regressor         *model.LinearRegressor
	Classifier        *model.LogisticClassifier
	ClassifierEncoder *model.OneHotEncoder
	FeatureEncoder    *model.OneHotEncoder
	ValidCourses      map[string][]string
}

// IsUsable reports whether at least one of the two primary predictive models
// loaded.
func (b *Bundle) IsUsable() bool {
	return b != nil && (b.Regressor != nil || b.Classifier != nil)
}

// CareerBundle is the career recommender's artifact set.
type CareerBundle struct {
	Hybrid      []domain.HybridRow
	Occupations []domain.OccupationRow
	Vectorizer  *model.TfidfVectorizer
}

func (b *CareerBundle) IsUsable() bool {
	return b != nil && (len(b.Hybrid) > 0 || len(b.Occupations) > 0)
}
