package model

// EquipmentKind partitions the catalog into devices and vehicles. Both kinds
// share one identity space and one selection set on an appointment.
type EquipmentKind string

const (
	EquipmentKindDevice  EquipmentKind = "device"
	EquipmentKindVehicle EquipmentKind = "vehicle"
)

type EquipmentStatus string

const (
	EquipmentStatusActive   EquipmentStatus = "active"
	EquipmentStatusInactive EquipmentStatus = "inactive"
)

type Equipment struct {
	Base
	Name         string          `db:"name" json:"name"`
	SerialNumber string          `db:"serial_number" json:"serial_number"`
	Kind         EquipmentKind   `db:"kind" json:"kind"`
	Status       EquipmentStatus `db:"status" json:"status"`
}

// CreateEquipmentRequest covers ad-hoc registration, typically a vehicle
// added from inside the wizard's inventory step.
type CreateEquipmentRequest struct {
	Name         string        `json:"name" validate:"required"`
	SerialNumber string        `json:"serial_number" validate:"required"`
	Kind         EquipmentKind `json:"kind" validate:"required,oneof=device vehicle"`
}
