package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
)

func (r *companyRepository) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	query := `
		SELECT id, name, contact_name, email, phone, address, tax_number,
			   sector, risk_level, status, created_at, updated_at
		FROM companies
		WHERE id = $1
	`
	var company model.Company
	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	query := `
		SELECT id, name, contact_name, email, phone, address, tax_number,
			   sector, risk_level, status, created_at, updated_at
		FROM companies
		ORDER BY name ASC
	`
	var companies []*model.Company
	err := r.db.SelectContext(ctx, &companies, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
