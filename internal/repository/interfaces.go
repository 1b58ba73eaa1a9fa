package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/model"
)

// All repository interfaces in one file. The catalog repositories are the
// read side consumed by the wizard pickers; only equipment accepts ad-hoc
// writes from the core.
type (
	CompanyRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Company, error)
		List(ctx context.Context) ([]*model.Company, error)
	}

	StaffRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
		List(ctx context.Context) ([]*model.Staff, error)
		ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Staff, error)
	}

	HealthTestRepository interface {
		List(ctx context.Context) ([]*model.HealthTest, error)
		ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HealthTest, error)
	}

	EquipmentRepository interface {
		Create(ctx context.Context, equipment *model.Equipment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Equipment, error)
		List(ctx context.Context) ([]*model.Equipment, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	}
)

// ErrNotFound is returned by Get methods when no row matches the id.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "record not found" }
