package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
)

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	query := `
		SELECT id, name, title, role, phone, email, status,
			   skills, blood_type, salary, created_at, updated_at
		FROM staff
		WHERE id = $1
	`
	var staff model.Staff
	err := r.db.GetContext(ctx, &staff, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context) ([]*model.Staff, error) {
	query := `
		SELECT id, name, title, role, phone, email, status,
			   skills, blood_type, salary, created_at, updated_at
		FROM staff
		ORDER BY name ASC
	`
	var staff []*model.Staff
	err := r.db.SelectContext(ctx, &staff, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Staff, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, title, role, phone, email, status,
			   skills, blood_type, salary, created_at, updated_at
		FROM staff
		WHERE id = ANY($1)
		ORDER BY name ASC
	`
	var staff []*model.Staff
	err := r.db.SelectContext(ctx, &staff, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list staff by ids: %w", err)
	}
	return staff, nil
}
