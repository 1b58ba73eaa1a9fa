package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/osgbtech/screening-api/internal/model"
)

func (r *healthTestRepository) List(ctx context.Context) ([]*model.HealthTest, error) {
	query := `
		SELECT id, name, category, created_at, updated_at
		FROM health_tests
		ORDER BY category ASC, name ASC
	`
	var tests []*model.HealthTest
	err := r.db.SelectContext(ctx, &tests, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list health tests: %w", err)
	}
	return tests, nil
}

func (r *healthTestRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HealthTest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, category, created_at, updated_at
		FROM health_tests
		WHERE id = ANY($1)
		ORDER BY name ASC
	`
	var tests []*model.HealthTest
	err := r.db.SelectContext(ctx, &tests, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list health tests by ids: %w", err)
	}
	return tests, nil
}
