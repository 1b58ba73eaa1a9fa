package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
)

func (r *equipmentRepository) Create(ctx context.Context, equipment *model.Equipment) error {
	query := `
		INSERT INTO equipment (
			id, name, serial_number, kind, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	equipment.CreatedAt = time.Now()
	equipment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.SerialNumber,
		equipment.Kind,
		equipment.Status,
		equipment.CreatedAt,
		equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return nil
}

func (r *equipmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	query := `
		SELECT id, name, serial_number, kind, status, created_at, updated_at
		FROM equipment
		WHERE id = $1
	`
	var equipment model.Equipment
	err := r.db.GetContext(ctx, &equipment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return &equipment, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]*model.Equipment, error) {
	query := `
		SELECT id, name, serial_number, kind, status, created_at, updated_at
		FROM equipment
		ORDER BY kind ASC, name ASC
	`
	var equipment []*model.Equipment
	err := r.db.SelectContext(ctx, &equipment, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return equipment, nil
}
