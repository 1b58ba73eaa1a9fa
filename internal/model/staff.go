package model

import "github.com/lib/pq"

type StaffRole string

const (
	StaffRoleDoctor    StaffRole = "doctor"
	StaffRoleNurse     StaffRole = "nurse"
	StaffRoleLab       StaffRole = "lab"
	StaffRoleAudio     StaffRole = "audio"
	StaffRoleRadiology StaffRole = "radiology"
	StaffRoleStaff     StaffRole = "staff"
)

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusOnLeave  StaffStatus = "on_leave"
	StaffStatusInactive StaffStatus = "inactive"
)

// Staff is a field team member assignable to screening operations.
type Staff struct {
	Base
	Name      string         `db:"name" json:"name"`
	Title     string         `db:"title" json:"title"`
	Role      StaffRole      `db:"role" json:"role"`
	Phone     string         `db:"phone" json:"phone"`
	Email     string         `db:"email" json:"email"`
	Status    StaffStatus    `db:"status" json:"status"`
	Skills    pq.StringArray `db:"skills" json:"skills,omitempty"`
	BloodType string         `db:"blood_type" json:"blood_type,omitempty"`
	Salary    *float64       `db:"salary" json:"salary,omitempty"`
}

// defaultSkills holds the capability tags assumed for a role when a staff
// record carries none of its own.
var defaultSkills = map[StaffRole][]string{
	StaffRoleDoctor:    {"muayene", "rapor"},
	StaffRoleNurse:     {"kan alma", "asi", "tansiyon"},
	StaffRoleLab:       {"numune kabul", "analiz"},
	StaffRoleAudio:     {"odyometri"},
	StaffRoleRadiology: {"akciger grafisi"},
	StaffRoleStaff:     {"saha destek"},
}

// EffectiveSkills returns the staff member's own skills, falling back to the
// defaults for their role.
func (s *Staff) EffectiveSkills() []string {
	if len(s.Skills) > 0 {
		return s.Skills
	}
	return defaultSkills[s.Role]
}
