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

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, company_id, title, date, start_time, end_time,
			duration_minutes, type, status,
			staff_ids, test_ids, equipment_ids,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.CompanyID,
		appointment.Title,
		appointment.Date,
		appointment.StartTime,
		appointment.EndTime,
		appointment.DurationMinutes,
		appointment.Type,
		appointment.Status,
		appointment.StaffIDs,
		appointment.TestIDs,
		appointment.EquipmentIDs,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, company_id, title, date, start_time, end_time,
			   duration_minutes, type, status,
			   staff_ids, test_ids, equipment_ids,
			   created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET company_id = $1, title = $2, date = $3,
			start_time = $4, end_time = $5, duration_minutes = $6,
			type = $7, status = $8,
			staff_ids = $9, test_ids = $10, equipment_ids = $11,
			updated_at = $12
		WHERE id = $13
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.CompanyID,
		appointment.Title,
		appointment.Date,
		appointment.StartTime,
		appointment.EndTime,
		appointment.DurationMinutes,
		appointment.Type,
		appointment.Status,
		appointment.StaffIDs,
		appointment.TestIDs,
		appointment.EquipmentIDs,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM appointments
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT id, company_id, title, date, start_time, end_time,
			   duration_minutes, type, status,
			   staff_ids, test_ids, equipment_ids,
			   created_at, updated_at
		FROM appointments
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.CompanyID != uuid.Nil {
			query += fmt.Sprintf(" AND company_id = $%d", argCount)
			args = append(args, filters.CompanyID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
		if !filters.StartDate.IsZero() {
			query += fmt.Sprintf(" AND date >= $%d", argCount)
			args = append(args, filters.StartDate)
			argCount++
		}
		if !filters.EndDate.IsZero() {
			query += fmt.Sprintf(" AND date <= $%d", argCount)
			args = append(args, filters.EndDate)
			argCount++
		}
	}

	query += " ORDER BY date ASC, start_time ASC"

	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
