package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

type careerRequest struct {
	DegreeProgram string `json:"degree_program"`
	SaveSession   bool   `json:"save_session"`
}

// POST /api/careers/recommendations
func (h *Handler) RecommendCareers(w http.ResponseWriter, r *http.Request) {
	var req careerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	result, err := h.service.RecommendCareers(r.Context(), req.DegreeProgram, req.SaveSession)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CareerResponse{
		Recommendations:      result.Recommendations,
		TotalRecommendations: len(result.Recommendations),
		SessionID:            result.SessionID,
		Metadata: ResponseMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Message: "Career recommendations generated successfully!",
	})
}
