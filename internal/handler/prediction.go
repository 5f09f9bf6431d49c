package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zpredict/prediction-service/internal/domain"
)

type predictionRequest struct {
	Year           int     `json:"year"`
	ZScore         float64 `json:"z_score"`
	Stream         string  `json:"stream"`
	District       string  `json:"district"`
	AptitudeTest   bool    `json:"aptitude_test"`
	AllIslandMerit bool    `json:"all_island_merit"`
}

type savePredictionsRequest struct {
	SessionID           string                    `json:"session_id"`
	SelectedPredictions []domain.CoursePrediction `json:"selected_predictions"`
	Notes               string                    `json:"notes"`
}

// POST /api/predictions
func (h *Handler) GeneratePredictions(w http.ResponseWriter, r *http.Request) {
	var req predictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	result, err := h.service.GeneratePredictions(r.Context(), domain.PredictionRequest{
		Year:           req.Year,
		ZScore:         req.ZScore,
		Stream:         req.Stream,
		District:       req.District,
		AptitudeTest:   req.AptitudeTest,
		AllIslandMerit: req.AllIslandMerit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PredictionResponse{
		Predictions:      result.Predictions,
		TotalPredictions: len(result.Predictions),
		SessionID:        result.SessionID,
		Metadata: ResponseMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Message: "Predictions generated successfully!",
	})
}

// POST /api/predictions/save
func (h *Handler) SavePredictions(w http.ResponseWriter, r *http.Request) {
	var req savePredictionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	saved, err := h.service.SaveSelectedPredictions(r.Context(), req.SessionID, req.SelectedPredictions, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SaveResponse{
		TotalSaved: saved,
		Message:    "Predictions saved successfully!",
	})
}

// GET /api/predictions/history/{sessionID}
func (h *Handler) PredictionHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	items, err := h.service.PredictionHistory(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{
		SessionID:        sessionID,
		SavedPredictions: items,
	})
}

// Map service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	if domain.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	if errors.Is(err, domain.ErrStreamNotFound) {
		writeError(w, http.StatusBadRequest, "stream_not_found",
			"No courses found for the selected stream")
		return
	}
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session_not_found",
			"Invalid session ID or session not found")
		return
	}
	if errors.Is(err, domain.ErrModelsUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "models_unavailable",
			"Prediction models are temporarily unavailable, please try again")
		return
	}
	if errors.Is(err, domain.ErrNoPredictions) {
		writeError(w, http.StatusInternalServerError, "no_predictions",
			"Failed to generate any predictions")
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
