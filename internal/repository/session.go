package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zpredict/prediction-service/internal/domain"
)

// Create a prediction session and return its generated id
func (r *Repository) CreatePredictionSession(ctx context.Context, session *domain.PredictionSession) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO prediction_sessions (id, year, z_score, stream, district, total_predictions)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, session.Year, session.ZScore, session.Stream, session.District, session.TotalPredictions,
	)
	if err != nil {
		return "", fmt.Errorf("insert prediction session: %w", err)
	}
	return id, nil
}

// Get single prediction session
func (r *Repository) GetPredictionSession(ctx context.Context, sessionID string) (*domain.PredictionSession, error) {
	session := &domain.PredictionSession{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, year, z_score, stream, district, total_predictions, created_at
		 FROM prediction_sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &session.Year, &session.ZScore, &session.Stream,
		&session.District, &session.TotalPredictions, &session.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("query prediction session id=%s: %w", sessionID, err)
	}
	return session, nil
}

// Save selected predictions into an existing session
func (r *Repository) SavePredictions(ctx context.Context, sessionID string, preds []domain.CoursePrediction, notes string) (int, error) {
	if _, err := r.GetPredictionSession(ctx, sessionID); err != nil {
		return 0, err
	}

	saved := 0
	for _, p := range preds {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO saved_predictions
			 (id, session_id, university_name, course_name, predicted_cutoff, predicted_probability, recommendation, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), sessionID, p.UniversityName, p.CourseName,
			p.PredictedCutoff, p.PredictedProbability, p.Recommendation, notes,
		)
		if err != nil {
			return saved, fmt.Errorf("insert saved prediction: %w", err)
		}
		saved++
	}
	return saved, nil
}

// Get saved predictions for a session
func (r *Repository) GetSavedPredictions(ctx context.Context, sessionID string) ([]domain.SavedPrediction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, university_name, course_name, predicted_cutoff,
		        predicted_probability, recommendation, notes, created_at
		 FROM saved_predictions
		 WHERE session_id = $1
		 ORDER BY predicted_probability DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query saved predictions for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var items []domain.SavedPrediction
	for rows.Next() {
		var item domain.SavedPrediction
		err := rows.Scan(&item.ID, &item.SessionID, &item.UniversityName, &item.CourseName,
			&item.PredictedCutoff, &item.PredictedProbability, &item.Recommendation,
			&item.Notes, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan saved prediction: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved predictions: %w", err)
	}
	return items, nil
}
