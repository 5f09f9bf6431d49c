package career

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/artifact"
	"github.com/zpredict/prediction-service/internal/domain"
	"github.com/zpredict/prediction-service/internal/model"
)

func testCareerBundle() *artifact.CareerBundle {
	occupations := []domain.OccupationRow{
		{Code: "15-1252.00", Title: "Software Developers", Description: "Develop applications and systems software"},
		{Code: "29-1141.00", Title: "Registered Nurses", Description: "Provide patient care in hospitals"},
		{Code: "13-2011.00", Title: "Accountants", Description: "Examine financial records and prepare reports"},
	}
	for i := range occupations {
		occupations[i].CombinedText = occupations[i].Title + " " + occupations[i].Description
	}

	vocabulary := map[string]int{}
	terms := []string{
		"software", "developers", "develop", "applications", "and", "systems",
		"registered", "nurses", "provide", "patient", "care", "in", "hospitals",
		"accountants", "examine", "financial", "records", "prepare", "reports",
	}
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = 1.0
	}

	return &artifact.CareerBundle{
		Hybrid: []domain.HybridRow{
			{Occupation: "Software Engineer", OnetSocCode: "15-1252.00", Vacancies: 120, Skills: []string{"Programming"}},
			{Occupation: "QA Engineer", OnetSocCode: "15-1252.00", Vacancies: 40},
			{Occupation: "Nurse", OnetSocCode: "29-1141.00", Vacancies: 300},
			{Occupation: "Accountant", OnetSocCode: "13-2011.00", Vacancies: 60},
		},
		Occupations: occupations,
		Vectorizer: &model.TfidfVectorizer{
			Vocabulary: vocabulary,
			Idf:        idf,
		},
	}
}

func newTestRecommender(t *testing.T, b *artifact.CareerBundle) *Recommender {
	t.Helper()
	loader := artifact.NewLoader(
		func() (*artifact.CareerBundle, error) { return b, nil },
		(*artifact.CareerBundle).IsUsable,
		time.Hour, time.Second, zap.NewNop(),
	)
	return New(loader, zap.NewNop())
}

func TestRecommendRanksMatchingOccupationFirst(t *testing.T) {
	r := newTestRecommender(t, testCareerBundle())

	recs := r.Recommend(Input{DegreeProgram: "BSc in Software Engineering, develop applications and systems software"})
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	if recs[0].CareerCode != "15-1252.00" {
		t.Errorf("expected software occupation first, got %+v", recs[0])
	}
	// Two hybrid rows share the code; the one with more vacancies ranks higher.
	if recs[0].Occupation != "Software Engineer" {
		t.Errorf("expected Software Engineer before QA Engineer, got %q", recs[0].Occupation)
	}
	if recs[0].Title != "Software Developers" {
		t.Errorf("expected catalog title, got %q", recs[0].Title)
	}
}

func TestRecommendExactTitleNearPerfectSimilarity(t *testing.T) {
	r := newTestRecommender(t, testCareerBundle())

	recs := r.Recommend(Input{DegreeProgram: "Software Developers Develop applications and systems software"})
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0].SimilarityScore < 0.99 {
		t.Errorf("exact catalog text should score ~1.0, got %v", recs[0].SimilarityScore)
	}
}

func TestRecommendIdempotent(t *testing.T) {
	r := newTestRecommender(t, testCareerBundle())

	in := Input{DegreeProgram: "nursing degree with patient care"}
	first := r.Recommend(in)
	second := r.Recommend(in)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical ordered output")
	}
}

func TestRecommendNoVocabularyOverlap(t *testing.T) {
	r := newTestRecommender(t, testCareerBundle())

	if recs := r.Recommend(Input{DegreeProgram: "zzzz qqqq"}); len(recs) != 0 {
		t.Errorf("expected empty result for unknown vocabulary, got %d", len(recs))
	}
}

func TestRecommendEmptyJoin(t *testing.T) {
	b := testCareerBundle()
	// No hybrid row references a catalog code.
	b.Hybrid = []domain.HybridRow{
		{Occupation: "Pilot", OnetSocCode: "53-2011.00", Vacancies: 10},
	}
	r := newTestRecommender(t, b)

	if recs := r.Recommend(Input{DegreeProgram: "software"}); len(recs) != 0 {
		t.Errorf("expected empty result for empty join, got %d", len(recs))
	}
}

func TestRecommendVacancyNormalization(t *testing.T) {
	b := testCareerBundle()
	// All vacancy counts zero: normalized vacancies must be 0, not NaN.
	for i := range b.Hybrid {
		b.Hybrid[i].Vacancies = 0
	}
	r := newTestRecommender(t, b)

	recs := r.Recommend(Input{DegreeProgram: "software developers"})
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	for _, rec := range recs {
		if rec.CombinedScore != 0.6*rec.SimilarityScore {
			t.Errorf("expected combined score from similarity only, got %+v", rec)
		}
	}
}

func TestRecommendOutputCap(t *testing.T) {
	b := testCareerBundle()
	b.Hybrid = nil
	for i := 0; i < 15; i++ {
		b.Hybrid = append(b.Hybrid, domain.HybridRow{
			Occupation:  fmt.Sprintf("Software Role %d", i),
			OnetSocCode: "15-1252.00",
			Vacancies:   10 + i,
		})
	}
	r := newTestRecommender(t, b)

	recs := r.Recommend(Input{DegreeProgram: "software developers"})
	if len(recs) != 10 {
		t.Errorf("expected output capped at 10, got %d", len(recs))
	}
}

func TestRecommendPunctuationStripped(t *testing.T) {
	r := newTestRecommender(t, testCareerBundle())

	plain := r.Recommend(Input{DegreeProgram: "software developers"})
	noisy := r.Recommend(Input{DegreeProgram: "Software, Developers!!!"})

	if !reflect.DeepEqual(plain, noisy) {
		t.Error("punctuation should not change the result")
	}
}

func TestRecommendMissingComponents(t *testing.T) {
	b := testCareerBundle()
	b.Vectorizer = nil
	r := newTestRecommender(t, b)

	if recs := r.Recommend(Input{DegreeProgram: "software"}); len(recs) != 0 {
		t.Errorf("expected empty result without vectorizer, got %d", len(recs))
	}
}
