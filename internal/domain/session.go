package domain

import "time"

type PredictionSession struct {
	ID               string    `json:"id"`
	Year             int       `json:"year"`
	ZScore           float64   `json:"z_score"`
	Stream           string    `json:"stream"`
	District         string    `json:"district"`
	TotalPredictions int       `json:"total_predictions"`
	CreatedAt        time.Time `json:"created_at"`
}

type SavedPrediction struct {
	ID                   string    `json:"id"`
	SessionID            string    `json:"session_id"`
	UniversityName       string    `json:"university_name"`
	CourseName           string    `json:"course_name"`
	PredictedCutoff      float64   `json:"predicted_cutoff"`
	PredictedProbability float64   `json:"predicted_probability"`
	Recommendation       string    `json:"recommendation"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type CareerSession struct {
	ID              string    `json:"id"`
	DegreeProgram   string    `json:"degree_program"`
	Recommendations int       `json:"num_recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}
