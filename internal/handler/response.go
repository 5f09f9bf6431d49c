package handler

import "github.com/zpredict/prediction-service/internal/domain"

type PredictionResponse struct {
	Predictions      []domain.CoursePrediction `json:"predictions"`
	TotalPredictions int                       `json:"total_predictions"`
	SessionID        string                    `json:"session_id,omitempty"`
	Metadata         ResponseMeta              `json:"metadata"`
	Message          string                    `json:"message"`
}

type CourseListResponse struct {
	Stream  string                `json:"stream"`
	Courses []domain.CourseOption `json:"courses"`
	Total   int                   `json:"total"`
}

type CareerResponse struct {
	Recommendations      []domain.CareerRecommendation `json:"recommendations"`
	TotalRecommendations int                           `json:"total_recommendations"`
	SessionID            string                        `json:"session_id,omitempty"`
	Metadata             ResponseMeta                  `json:"metadata"`
	Message              string                        `json:"message"`
}

type SaveResponse struct {
	TotalSaved int    `json:"total_saved"`
	Message    string `json:"message"`
}

type HistoryResponse struct {
	SessionID        string                   `json:"session_id"`
	SavedPredictions []domain.SavedPrediction `json:"saved_predictions"`
}

type ResponseMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
