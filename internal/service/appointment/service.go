package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
	"github.com/osgbtech/screening-api/internal/service/document"
	"github.com/osgbtech/screening-api/internal/service/notification"
	apperrors "github.com/osgbtech/screening-api/pkg/errors"
	"github.com/osgbtech/screening-api/pkg/metrics"
)

// DefaultNotifyTemplate is used when a bulk notify request carries no
// template of its own.
const DefaultNotifyTemplate = "{company} - {title} operasyonu {date} {time} icin planlandi."

// Service manages persisted screening operations: partial edits with
// duration recomputation, status transitions, deletion, bulk staff
// notification and document requests.
type Service struct {
	repo        repository.AppointmentRepository
	companyRepo repository.CompanyRepository
	staffRepo   repository.StaffRepository
	testRepo    repository.HealthTestRepository
	notifier    notification.Service
	documents   document.Generator
	metrics     *metrics.Metrics
}

func NewService(
	repo repository.AppointmentRepository,
	companyRepo repository.CompanyRepository,
	staffRepo repository.StaffRepository,
	testRepo repository.HealthTestRepository,
	notifier notification.Service,
	documents document.Generator,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		repo:        repo,
		companyRepo: companyRepo,
		staffRepo:   staffRepo,
		testRepo:    testRepo,
		notifier:    notifier,
		documents:   documents,
		metrics:     metrics,
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("screening", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get screening: %w", err)
	}
	return apt, nil
}

func (s *Service) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	return appointments, nil
}

// Update applies a partial edit. DurationMinutes is recomputed only when
// both times are present after the merge; when the times are cleared the
// previously stored value is kept as a manual override.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *apt
	applyUpdate(&merged, req)

	if merged.Title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if merged.Date.IsZero() {
		return nil, apperrors.Validation("date is required")
	}
	if merged.CompanyID == uuid.Nil {
		return nil, apperrors.Validation("company is required")
	}

	if merged.StartTime != nil && merged.EndTime != nil {
		merged.DurationMinutes = model.DurationMinutes(merged.StartTime, merged.EndTime)
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("screening", err)
		}
		return nil, fmt.Errorf("failed to update screening: %w", err)
	}
	return &merged, nil
}

func applyUpdate(apt *model.Appointment, req *model.UpdateAppointmentRequest) {
	if req.CompanyID != nil {
		apt.CompanyID = *req.CompanyID
	}
	if req.Title != nil {
		apt.Title = *req.Title
	}
	if req.Date != nil {
		apt.Date = *req.Date
	}
	if req.ClearTimes {
		apt.StartTime = nil
		apt.EndTime = nil
	} else {
		if req.StartTime != nil {
			apt.StartTime = req.StartTime
		}
		if req.EndTime != nil {
			apt.EndTime = req.EndTime
		}
	}
	if req.Type != nil {
		apt.Type = *req.Type
	}
	if req.Status != nil {
		apt.Status = *req.Status
	}
	if req.StaffIDs != nil {
		apt.StaffIDs = *req.StaffIDs
	}
	if req.TestIDs != nil {
		apt.TestIDs = *req.TestIDs
	}
	if req.EquipmentIDs != nil {
		apt.EquipmentIDs = *req.EquipmentIDs
	}
}

// UpdateStatus sets the status directly. All three states are mutually
// reachable; the enum itself is the only guard.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	switch status {
	case model.AppointmentStatusPlanned, model.AppointmentStatusCompleted, model.AppointmentStatusCancelled:
	default:
		return nil, apperrors.Validation(fmt.Sprintf("unknown status: %s", status))
	}

	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apt.Status = status
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to update screening status: %w", err)
	}
	return apt, nil
}

// Delete removes the screening. Dependent records (proposals, reports)
// cascade on the catalog side.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("screening", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete screening: %w", err)
	}
	s.metrics.ScreeningsDeleted.Inc()
	return nil
}

// DispatchFailure records one recipient whose message could not be handed
// to the broker.
type DispatchFailure struct {
	StaffID uuid.UUID `json:"staff_id"`
	Reason  string    `json:"reason"`
}

// NotifyResult summarizes a bulk dispatch.
type NotifyResult struct {
	Sent   int               `json:"sent"`
	Failed []DispatchFailure `json:"failed,omitempty"`
}

// Notify sends one message per selected staff member's phone number. The
// batch is rejected before any dispatch when no recipients are selected;
// after that each dispatch is independent and a failed one never blocks
// the rest.
func (s *Service) Notify(ctx context.Context, id uuid.UUID, staffIDs []uuid.UUID, template string) (*NotifyResult, error) {
	if len(staffIDs) == 0 {
		return nil, apperrors.Validation("at least one recipient must be selected")
	}
	if template == "" {
		template = DefaultNotifyTemplate
	}

	apt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.Get(ctx, apt.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	recipients, err := s.staffRepo.ListByIDs(ctx, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}

	data := notification.MessageData{
		CompanyName: company.Name,
		Title:       apt.Title,
		Date:        apt.Date.String(),
		Time:        formatTimeRange(apt),
	}
	text := notification.Compose(template, data)

	result := &NotifyResult{}
	for _, staff := range recipients {
		if err := s.notifier.Dispatch(ctx, &notification.OutboundMessage{
			Phone: staff.Phone,
			Text:  text,
		}); err != nil {
			result.Failed = append(result.Failed, DispatchFailure{
				StaffID: staff.ID,
				Reason:  err.Error(),
			})
			continue
		}
		result.Sent++

		if staff.Email != "" {
			// Best effort; the SMS is the primary channel.
			_ = s.notifier.DispatchEmail(ctx, &notification.EmailCopy{
				To:      staff.Email,
				Subject: apt.Title,
				Body:    text,
			})
		}
	}

	return result, nil
}

func formatTimeRange(apt *model.Appointment) string {
	if apt.StartTime == nil || apt.EndTime == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s (%s)", apt.StartTime, apt.EndTime, apt.FormattedDuration())
}

// RequestDocument resolves the appointment's references and asks the
// generation collaborator for the given document kind.
func (s *Service) RequestDocument(ctx context.Context, id uuid.UUID, kind document.Kind) error {
	if !kind.Valid() {
		return apperrors.Validation(fmt.Sprintf("unknown document kind: %s", kind))
	}

	apt, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	company, err := s.companyRepo.Get(ctx, apt.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to resolve company: %w", err)
	}

	staff, err := s.staffRepo.ListByIDs(ctx, apt.StaffIDs.IDs())
	if err != nil {
		return fmt.Errorf("failed to resolve staff: %w", err)
	}

	tests, err := s.testRepo.ListByIDs(ctx, apt.TestIDs.IDs())
	if err != nil {
		return fmt.Errorf("failed to resolve tests: %w", err)
	}

	bundle := &document.Bundle{
		Appointment: apt,
		Company:     company,
		Staff:       staff,
		Tests:       tests,
	}

	if err := s.documents.Generate(ctx, kind, bundle); err != nil {
		return apperrors.Unavailable("document generation failed", err)
	}
	return nil
}
