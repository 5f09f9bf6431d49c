package domain

// PredictionRequest carries one student profile scored against a single
// course/university pair.
type PredictionRequest struct {
	Year           int     `json:"year"`
	University     string  `json:"university"`
	CourseName     string  `json:"course_name"`
	District       string  `json:"district"`
	Stream         string  `json:"stream"`
	AptitudeTest   bool    `json:"aptitude_test"`
	AllIslandMerit bool    `json:"all_island_merit"`
	ZScore         float64 `json:"z_score"`
}

type CoursePrediction struct {
	UniversityName       string  `json:"university_name"`
	CourseName           string  `json:"course_name"`
	PredictedCutoff      float64 `json:"predicted_cutoff"`
	PredictedProbability float64 `json:"predicted_probability"`
	Recommendation       string  `json:"recommendation"`
}

type PredictionResult struct {
	Predictions []CoursePrediction
	SessionID   string
	CacheHit    bool
}

// CourseOption is one (course, university) pair produced by the catalog
// resolver for a stream.
type CourseOption struct {
	CourseName     string `json:"course_name"`
	UniversityName string `json:"university_name"`
}

// Recommendation labels derived from the selection probability.
const (
	StatusHighlyRecommended = "Highly Recommended"
	StatusRecommended       = "Recommended"
	StatusNotRecommended    = "Not Recommended"
	StatusUnknown           = "Unknown"
)
