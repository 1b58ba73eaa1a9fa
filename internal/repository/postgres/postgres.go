package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/osgbtech/screening-api/internal/repository"
)

type companyRepository struct {
	db *sqlx.DB
}

type staffRepository struct {
	db *sqlx.DB
}

type healthTestRepository struct {
	db *sqlx.DB
}

type equipmentRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func NewHealthTestRepository(db *sqlx.DB) repository.HealthTestRepository {
	return &healthTestRepository{db: db}
}

func NewEquipmentRepository(db *sqlx.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}
