// Package wizard holds the planning wizard's state machine. Transitions are
// plain functions over a State value so step ordering, draft retention and
// search-term resets stay testable away from HTTP.
package wizard

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/model"
)

type Step int

const (
	StepDetails Step = iota + 1
	StepScope
	StepTeam
	StepInventory
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepScope:
		return "scope"
	case StepTeam:
		return "team"
	case StepInventory:
		return "inventory"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Draft accumulates the appointment under construction. It stays ephemeral
// until the wizard is confirmed.
type Draft struct {
	CompanyID    uuid.UUID             `json:"company_id"`
	CompanyName  string                `json:"company_name"`
	Title        string                `json:"title"`
	TitleEdited  bool                  `json:"title_edited"`
	Date         model.Date            `json:"date"`
	StartTime    *model.TimeOfDay      `json:"start_time,omitempty"`
	EndTime      *model.TimeOfDay      `json:"end_time,omitempty"`
	Type         model.AppointmentType `json:"type"`
	StaffIDs     model.SelectionSet    `json:"staff_ids"`
	TestIDs      model.SelectionSet    `json:"test_ids"`
	EquipmentIDs model.SelectionSet    `json:"equipment_ids"`
}

// State is the full wizard position: current step, the highest step reached,
// the transient picker search term and the draft.
type State struct {
	Step       Step   `json:"step"`
	MaxVisited Step   `json:"max_visited"`
	SearchTerm string `json:"search_term"`
	Draft      Draft  `json:"draft"`
}

// New starts a wizard on the details step with today's date and the usual
// field-day working hours pre-filled.
func New() State {
	start := model.TimeOfDay{Hour: 9}
	end := model.TimeOfDay{Hour: 17}
	return State{
		Step:       StepDetails,
		MaxVisited: StepDetails,
		Draft: Draft{
			Date:         model.Today(),
			StartTime:    &start,
			EndTime:      &end,
			Type:         model.AppointmentTypeScreening,
			StaffIDs:     model.NewSelectionSet(),
			TestIDs:      model.NewSelectionSet(),
			EquipmentIDs: model.NewSelectionSet(),
		},
	}
}

// Next advances one step. Steps are never skipped and no step blocks on
// incomplete fields; only Confirm validates.
func (s State) Next() (State, error) {
	if s.Step >= StepReview {
		return s, fmt.Errorf("already at the %s step", StepReview)
	}
	return s.enter(s.Step + 1), nil
}

// Back returns to an already visited step. Draft data entered on later steps
// is preserved.
func (s State) Back(to Step) (State, error) {
	if to < StepDetails || to > StepReview {
		return s, fmt.Errorf("unknown step %d", int(to))
	}
	if to > s.MaxVisited {
		return s, fmt.Errorf("step %s has not been visited yet", to)
	}
	return s.enter(to), nil
}

func (s State) enter(step Step) State {
	s.Step = step
	if step > s.MaxVisited {
		s.MaxVisited = step
	}
	// Each picker starts unfiltered.
	if step == StepScope || step == StepTeam || step == StepInventory {
		s.SearchTerm = ""
	}
	return s
}

func (s State) WithSearch(term string) State {
	s.SearchTerm = term
	return s
}

// DefaultTitle derives the operation title shown when a company is picked.
func DefaultTitle(companyName string) string {
	return fmt.Sprintf("%s - Sağlık Taraması", companyName)
}

// SelectCompany records the chosen company. While the title has not been
// edited by hand it is rederived from the company name on every change.
func (s State) SelectCompany(id uuid.UUID, name string) State {
	if id == s.Draft.CompanyID {
		return s
	}
	s.Draft.CompanyID = id
	s.Draft.CompanyName = name
	if !s.Draft.TitleEdited {
		s.Draft.Title = DefaultTitle(name)
	}
	return s
}

// SetTitle records a manual title edit and pins it against company changes.
func (s State) SetTitle(title string) State {
	s.Draft.Title = title
	s.Draft.TitleEdited = title != DefaultTitle(s.Draft.CompanyName)
	return s
}

func (s State) SetDate(d model.Date) State {
	s.Draft.Date = d
	return s
}

func (s State) SetTimes(start, end *model.TimeOfDay) State {
	s.Draft.StartTime = start
	s.Draft.EndTime = end
	return s
}

func (s State) SetType(t model.AppointmentType) State {
	s.Draft.Type = t
	return s
}

func (s State) ToggleStaff(id uuid.UUID) State {
	s.Draft.StaffIDs = s.Draft.StaffIDs.Toggle(id)
	return s
}

func (s State) ToggleTest(id uuid.UUID) State {
	s.Draft.TestIDs = s.Draft.TestIDs.Toggle(id)
	return s
}

func (s State) ToggleEquipment(id uuid.UUID) State {
	s.Draft.EquipmentIDs = s.Draft.EquipmentIDs.Toggle(id)
	return s
}

// Validate applies the save-time rules checked on Confirm.
func (s State) Validate() error {
	if s.Draft.CompanyID == uuid.Nil {
		return fmt.Errorf("company is required")
	}
	if s.Draft.Title == "" {
		return fmt.Errorf("title is required")
	}
	if s.Draft.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// BuildAppointment turns the draft into a persistable appointment with a
// fresh identity, derived duration and the planned initial status.
func (s State) BuildAppointment() (*model.Appointment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	apt := &model.Appointment{
		CompanyID:       s.Draft.CompanyID,
		Title:           s.Draft.Title,
		Date:            s.Draft.Date,
		StartTime:       s.Draft.StartTime,
		EndTime:         s.Draft.EndTime,
		DurationMinutes: model.DurationMinutes(s.Draft.StartTime, s.Draft.EndTime),
		Type:            s.Draft.Type,
		Status:          model.AppointmentStatusPlanned,
		StaffIDs:        s.Draft.StaffIDs.Clone(),
		TestIDs:         s.Draft.TestIDs.Clone(),
		EquipmentIDs:    s.Draft.EquipmentIDs.Clone(),
	}
	apt.ID = uuid.New()
	return apt, nil
}
