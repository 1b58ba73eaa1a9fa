package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
	"github.com/osgbtech/screening-api/internal/search"
	"github.com/osgbtech/screening-api/internal/wizard"
	apperrors "github.com/osgbtech/screening-api/pkg/errors"
	"github.com/osgbtech/screening-api/pkg/metrics"
)

// Service drives planning wizard sessions. Drafts live in a TTL cache and
// never touch the catalog until Confirm; letting a session expire is the
// abandonment path and has no side effects.
type Service struct {
	mu           sync.Mutex
	sessions     *gocache.Cache
	companies    repository.CompanyRepository
	staff        repository.StaffRepository
	tests        repository.HealthTestRepository
	equipment    repository.EquipmentRepository
	appointments repository.AppointmentRepository
	metrics      *metrics.Metrics
}

func NewService(
	sessionTTL time.Duration,
	companies repository.CompanyRepository,
	staff repository.StaffRepository,
	tests repository.HealthTestRepository,
	equipment repository.EquipmentRepository,
	appointments repository.AppointmentRepository,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		sessions:     gocache.New(sessionTTL, sessionTTL/2),
		companies:    companies,
		staff:        staff,
		tests:        tests,
		equipment:    equipment,
		appointments: appointments,
		metrics:      metrics,
	}
}

// Session pairs a wizard state with its identity.
type Session struct {
	ID    uuid.UUID    `json:"id"`
	State wizard.State `json:"state"`
}

func (s *Service) Start(_ context.Context) *Session {
	session := &Session{
		ID:    uuid.New(),
		State: wizard.New(),
	}
	s.sessions.SetDefault(session.ID.String(), session)
	s.metrics.WizardSessionsStarted.Inc()
	return session
}

func (s *Service) Get(id uuid.UUID) (*Session, error) {
	v, ok := s.sessions.Get(id.String())
	if !ok {
		return nil, apperrors.NotFound("wizard session", nil)
	}
	return v.(*Session), nil
}

// mutate serializes load-modify-store on a session. User actions arrive one
// at a time per session; the lock guards against racing HTTP retries.
func (s *Service) mutate(id uuid.UUID, fn func(wizard.State) (wizard.State, error)) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	next, err := fn(session.State)
	if err != nil {
		return nil, err
	}

	session.State = next
	s.sessions.SetDefault(session.ID.String(), session)
	return session, nil
}

func (s *Service) Next(id uuid.UUID) (*Session, error) {
	return s.mutate(id, func(st wizard.State) (wizard.State, error) {
		next, err := st.Next()
		if err != nil {
			return st, apperrors.BadRequest(err.Error(), err)
		}
		return next, nil
	})
}

func (s *Service) Back(id uuid.UUID, to wizard.Step) (*Session, error) {
	return s.mutate(id, func(st wizard.State) (wizard.State, error) {
		prev, err := st.Back(to)
		if err != nil {
			return st, apperrors.BadRequest(err.Error(), err)
		}
		return prev, nil
	})
}

func (s *Service) Search(id uuid.UUID, term string) (*Session, error) {
	return s.mutate(id, func(st wizard.State) (wizard.State, error) {
		return st.WithSearch(term), nil
	})
}

// DetailsRequest carries the fields editable on the details step.
type DetailsRequest struct {
	CompanyID *uuid.UUID             `json:"company_id"`
	Title     *string                `json:"title"`
	Date      *model.Date            `json:"date"`
	StartTime *model.TimeOfDay       `json:"start_time"`
	EndTime   *model.TimeOfDay       `json:"end_time"`
	Type      *model.AppointmentType `json:"type"`
}

func (s *Service) UpdateDetails(ctx context.Context, id uuid.UUID, req *DetailsRequest) (*Session, error) {
	var companyName string
	if req.CompanyID != nil {
		company, err := s.companies.Get(ctx, *req.CompanyID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("unknown company", err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve company: %w", err)
		}
		companyName = company.Name
	}

	return s.mutate(id, func(st wizard.State) (wizard.State, error) {
		if req.CompanyID != nil {
			st = st.SelectCompany(*req.CompanyID, companyName)
		}
		if req.Title != nil {
			st = st.SetTitle(*req.Title)
		}
		if req.Date != nil {
			st = st.SetDate(*req.Date)
		}
		if req.StartTime != nil || req.EndTime != nil {
			start, end := st.Draft.StartTime, st.Draft.EndTime
			if req.StartTime != nil {
				start = req.StartTime
			}
			if req.EndTime != nil {
				end = req.EndTime
			}
			st = st.SetTimes(start, end)
		}
		if req.Type != nil {
			st = st.SetType(*req.Type)
		}
		return st, nil
	})
}

// Resource names accepted by Toggle.
const (
	ResourceStaff     = "staff"
	ResourceTest      = "test"
	ResourceEquipment = "equipment"
)

func (s *Service) Toggle(id uuid.UUID, resource string, resourceID uuid.UUID) (*Session, error) {
	return s.mutate(id, func(st wizard.State) (wizard.State, error) {
		switch resource {
		case ResourceStaff:
			return st.ToggleStaff(resourceID), nil
		case ResourceTest:
			return st.ToggleTest(resourceID), nil
		case ResourceEquipment:
			return st.ToggleEquipment(resourceID), nil
		default:
			return st, apperrors.BadRequest(fmt.Sprintf("unknown resource: %s", resource), nil)
		}
	})
}

// RegisterVehicle adds a vehicle to the catalog from inside the inventory
// step. The new record is immediately selectable; nothing else in the
// session changes.
func (s *Service) RegisterVehicle(ctx context.Context, id uuid.UUID, name, plate string) (*model.Equipment, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.Validation("vehicle name is required")
	}
	if plate == "" {
		return nil, apperrors.Validation("vehicle plate is required")
	}

	vehicle := &model.Equipment{
		Name:         name,
		SerialNumber: plate,
		Kind:         model.EquipmentKindVehicle,
		Status:       model.EquipmentStatusActive,
	}
	vehicle.ID = uuid.New()

	if err := s.equipment.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}
	return vehicle, nil
}

// Confirm validates the draft, persists it as a planned screening and ends
// the session. A validation failure leaves both the session and the catalog
// untouched.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	apt, err := session.State.BuildAppointment()
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.appointments.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create screening: %w", err)
	}

	s.sessions.Delete(id.String())
	s.metrics.WizardSessionsConfirmed.Inc()
	s.metrics.ScreeningsCreated.Inc()
	return apt, nil
}

// Abandon drops the session and its draft.
func (s *Service) Abandon(id uuid.UUID) {
	s.sessions.Delete(id.String())
}

// PickerOptions returns the catalog slice for the session's current step,
// filtered by its transient search term.
type PickerOptions struct {
	Tests     []*model.HealthTest `json:"tests,omitempty"`
	Staff     []*model.Staff      `json:"staff,omitempty"`
	Equipment []*model.Equipment  `json:"equipment,omitempty"`
}

func (s *Service) Picker(ctx context.Context, id uuid.UUID) (*PickerOptions, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	term := session.State.SearchTerm
	opts := &PickerOptions{}

	switch session.State.Step {
	case wizard.StepScope:
		tests, err := s.tests.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list health tests: %w", err)
		}
		opts.Tests = search.Match(tests, term, func(t *model.HealthTest) []string {
			return []string{t.Name, t.Category}
		})
	case wizard.StepTeam:
		staff, err := s.staff.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list staff: %w", err)
		}
		opts.Staff = search.Match(staff, term, func(m *model.Staff) []string {
			return []string{m.Name, string(m.Role)}
		})
	case wizard.StepInventory:
		equipment, err := s.equipment.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list equipment: %w", err)
		}
		opts.Equipment = search.Match(equipment, term, func(e *model.Equipment) []string {
			return []string{e.Name, e.SerialNumber}
		})
	default:
		return nil, apperrors.BadRequest(fmt.Sprintf("step %s has no picker", session.State.Step), nil)
	}

	return opts, nil
}
