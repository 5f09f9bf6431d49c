package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zpredict/prediction-service/internal/domain"
)

// Create a career session and return its generated id
func (r *Repository) CreateCareerSession(ctx context.Context, session *domain.CareerSession) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO career_sessions (id, degree_program, num_recommendations)
		 VALUES ($1, $2, $3)`,
		id, session.DegreeProgram, session.Recommendations,
	)
	if err != nil {
		return "", fmt.Errorf("insert career session: %w", err)
	}
	return id, nil
}
