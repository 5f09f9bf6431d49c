// Package career ranks local-market occupations against a free-text degree or
// program description, blending text similarity with market vacancy counts.
package career

import (
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/artifact"
	"github.com/zpredict/prediction-service/internal/domain"
	"github.com/zpredict/prediction-service/internal/model"
)

const (
	defaultTopN             = 30
	defaultWeightSimilarity = 0.6
	defaultWeightVacancies  = 0.4

	// maxRecommendations is a fixed output cap, independent of TopN. TopN only
	// controls how many catalog candidates seed the re-ranking pool.
	maxRecommendations = 10
)

type Recommender struct {
	loader *artifact.Loader[artifact.CareerBundle]
	log    *zap.Logger
}

func New(loader *artifact.Loader[artifact.CareerBundle], log *zap.Logger) *Recommender {
	return &Recommender{loader: loader, log: log}
}

// Input for one recommendation call. Zero values fall back to the reference
// tuning (TopN 30, weights 0.6/0.4). The weights are independent tunables,
// not a probability mixture; the combined score is unbounded if they are
// changed arbitrarily.
type Input struct {
	DegreeProgram    string
	TopN             int
	WeightSimilarity float64
	WeightVacancies  float64
}

// Recommend returns up to ten careers ranked by the weighted blend of cosine
// similarity and normalized vacancy counts. It never fails on bad input: text
// with no vocabulary overlap, an unresolvable catalog, or an empty join all
// yield an empty list.
func (r *Recommender) Recommend(in Input) []domain.CareerRecommendation {
	if in.TopN <= 0 {
		in.TopN = defaultTopN
	}
	if in.WeightSimilarity == 0 && in.WeightVacancies == 0 {
		in.WeightSimilarity = defaultWeightSimilarity
		in.WeightVacancies = defaultWeightVacancies
	}

	b, err := r.loader.Load()
	if err != nil {
		r.log.Error("career models not loaded, cannot provide recommendations", zap.Error(err))
		return nil
	}
	if b.Vectorizer == nil || len(b.Occupations) == 0 || len(b.Hybrid) == 0 {
		r.log.Error("career model components missing, cannot provide recommendations")
		return nil
	}

	queryVec := b.Vectorizer.Transform(normalizeText(in.DegreeProgram))
	if model.IsZero(queryVec) {
		r.log.Warn("degree program has no overlap with fitted vocabulary",
			zap.String("degree_program", in.DegreeProgram))
		return nil
	}

	// The catalog term matrix is recomputed per call: the fitted matrix is not
	// a persisted artifact, an accepted trade-off at catalog sizes in the low
	// thousands.
	type scoredOccupation struct {
		idx int
		sim float64
	}
	scores := make([]scoredOccupation, len(b.Occupations))
	for i, occ := range b.Occupations {
		vec := b.Vectorizer.Transform(occ.CombinedText)
		scores[i] = scoredOccupation{idx: i, sim: model.CosineSimilarity(queryVec, vec)}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].sim > scores[j].sim
	})

	topN := in.TopN
	if topN > len(scores) {
		topN = len(scores)
	}

	simByCode := make(map[string]float64, topN)
	for _, s := range scores[:topN] {
		code := b.Occupations[s.idx].Code
		if _, ok := simByCode[code]; !ok {
			simByCode[code] = s.sim
		}
	}
	titleByCode := make(map[string]string, len(b.Occupations))
	for _, occ := range b.Occupations {
		if _, ok := titleByCode[occ.Code]; !ok {
			titleByCode[occ.Code] = occ.Title
		}
	}

	// Inner join of the top-N occupation codes against the local hybrid table.
	var matched []domain.HybridRow
	maxVacancies := 0
	for _, row := range b.Hybrid {
		if _, ok := simByCode[row.OnetSocCode]; !ok {
			continue
		}
		matched = append(matched, row)
		if row.Vacancies > maxVacancies {
			maxVacancies = row.Vacancies
		}
	}
	if len(matched) == 0 {
		return nil
	}

	recommendations := make([]domain.CareerRecommendation, 0, len(matched))
	for _, row := range matched {
		normalizedVacancies := 0.0
		if maxVacancies > 0 {
			normalizedVacancies = float64(row.Vacancies) / float64(maxVacancies)
		}
		similarity := simByCode[row.OnetSocCode]
		recommendations = append(recommendations, domain.CareerRecommendation{
			Title:           titleByCode[row.OnetSocCode],
			SimilarityScore: similarity,
			Vacancies:       row.Vacancies,
			CombinedScore:   in.WeightSimilarity*similarity + in.WeightVacancies*normalizedVacancies,
			Occupation:      row.Occupation,
			Skills:          row.Skills,
			Abilities:       row.Abilities,
			CareerCode:      row.OnetSocCode,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].CombinedScore > recommendations[j].CombinedScore
	})
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// normalizeText lowercases the input and strips punctuation and symbol runes.
func normalizeText(text string) string {
	lowered := strings.ToLower(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, lowered)
}
