package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPlanned   AppointmentStatus = "planned"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type AppointmentType string

const (
	AppointmentTypeScreening    AppointmentType = "screening"
	AppointmentTypeTraining     AppointmentType = "training"
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeVehicle      AppointmentType = "vehicle"
)

// Appointment is a time-boxed screening operation at a company site,
// bundling selected staff, tests and equipment. DurationMinutes is derived
// from the time pair whenever both ends are set.
type Appointment struct {
	Base
	CompanyID       uuid.UUID         `db:"company_id" json:"company_id"`
	Title           string            `db:"title" json:"title"`
	Date            Date              `db:"date" json:"date"`
	StartTime       *TimeOfDay        `db:"start_time" json:"start_time,omitempty"`
	EndTime         *TimeOfDay        `db:"end_time" json:"end_time,omitempty"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	Type            AppointmentType   `db:"type" json:"type"`
	Status          AppointmentStatus `db:"status" json:"status"`
	StaffIDs        SelectionSet      `db:"staff_ids" json:"staff_ids"`
	TestIDs         SelectionSet      `db:"test_ids" json:"test_ids"`
	EquipmentIDs    SelectionSet      `db:"equipment_ids" json:"equipment_ids"`
}

// FormattedDuration renders the derived duration for plans and messages.
func (a *Appointment) FormattedDuration() string {
	return FormatDuration(a.DurationMinutes)
}

// UpdateAppointmentRequest carries a partial edit; nil fields are left as
// stored.
type UpdateAppointmentRequest struct {
	CompanyID    *uuid.UUID         `json:"company_id"`
	Title        *string            `json:"title"`
	Date         *Date              `json:"date"`
	StartTime    *TimeOfDay         `json:"start_time"`
	EndTime      *TimeOfDay         `json:"end_time"`
	ClearTimes   bool               `json:"clear_times"`
	Type         *AppointmentType   `json:"type"`
	Status       *AppointmentStatus `json:"status"`
	StaffIDs     *SelectionSet      `json:"staff_ids"`
	TestIDs      *SelectionSet      `json:"test_ids"`
	EquipmentIDs *SelectionSet      `json:"equipment_ids"`
}

type AppointmentFilters struct {
	CompanyID uuid.UUID
	Status    AppointmentStatus
	StartDate time.Time
	EndDate   time.Time
}
