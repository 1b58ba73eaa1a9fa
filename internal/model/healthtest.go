package model

// HealthTest is a catalog entry for a test offered during screenings.
type HealthTest struct {
	Base
	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category"`
}
