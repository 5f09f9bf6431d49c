package domain

// HybridRow links a local-market occupation to a standard O*NET occupation
// code together with its vacancy count and skill metadata.
type HybridRow struct {
	Occupation  string   `json:"occupation"`
	OnetSocCode string   `json:"onet_soc_code"`
	Vacancies   int      `json:"vacancies"`
	Skills      []string `json:"skills"`
	Abilities   []string `json:"abilities"`
}

// OccupationRow is one entry of the standard occupation catalog. CombinedText
// is derived (Title + " " + Description) when absent from the artifact.
type OccupationRow struct {
	Code         string `json:"code"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CombinedText string `json:"combined_text,omitempty"`
}

type CareerRecommendation struct {
	Title           string   `json:"title"`
	SimilarityScore float64  `json:"similarity_score"`
	Vacancies       int      `json:"vacancies"`
	CombinedScore   float64  `json:"combined_score"`
	Occupation      string   `json:"occupation"`
	Skills          []string `json:"skills"`
	Abilities       []string `json:"abilities"`
	CareerCode      string   `json:"career_code"`
}

type CareerResult struct {
	Recommendations []CareerRecommendation
	SessionID       string
	CacheHit        bool
}
