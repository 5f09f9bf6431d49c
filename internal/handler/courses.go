package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GET /api/streams/{stream}/courses
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	stream := chi.URLParam(r, "stream")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	courses := h.service.ListCourses(r.Context(), stream, limit)

	writeJSON(w, http.StatusOK, CourseListResponse{
		Stream:  stream,
		Courses: courses,
		Total:   len(courses),
	})
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	info := h.service.ModelInfo()

	status := "healthy"
	if !info.ModelsLoaded {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"models": info,
	})
}
