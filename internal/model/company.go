package model

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
	CompanyStatusPending  CompanyStatus = "pending"
)

// Company is a client whose sites are visited for screenings. Appointments
// reference it by id only.
type Company struct {
	Base
	Name        string        `db:"name" json:"name"`
	ContactName string        `db:"contact_name" json:"contact_name"`
	Email       string        `db:"email" json:"email"`
	Phone       string        `db:"phone" json:"phone"`
	Address     string        `db:"address" json:"address"`
	TaxNumber   string        `db:"tax_number" json:"tax_number"`
	Sector      string        `db:"sector" json:"sector,omitempty"`
	RiskLevel   RiskLevel     `db:"risk_level" json:"risk_level"`
	Status      CompanyStatus `db:"status" json:"status"`
}
