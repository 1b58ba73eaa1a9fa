package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
	"github.com/osgbtech/screening-api/internal/wizard"
	apperrors "github.com/osgbtech/screening-api/pkg/errors"
	"github.com/osgbtech/screening-api/pkg/metrics"
)

// Registered once; promauto uses the process-wide default registry.
var testMetrics = metrics.NewMetrics("wizard_service_test")

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*model.Company
}

func (r *fakeCompanyRepo) Get(_ context.Context, id uuid.UUID) (*model.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*model.Company, error) { return nil, nil }

type fakeStaffRepo struct {
	staff []*model.Staff
}

func (r *fakeStaffRepo) Get(_ context.Context, _ uuid.UUID) (*model.Staff, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeStaffRepo) List(_ context.Context) ([]*model.Staff, error) { return r.staff, nil }

func (r *fakeStaffRepo) ListByIDs(_ context.Context, _ []uuid.UUID) ([]*model.Staff, error) {
	return nil, nil
}

type fakeTestRepo struct {
	tests []*model.HealthTest
}

func (r *fakeTestRepo) List(_ context.Context) ([]*model.HealthTest, error) { return r.tests, nil }

func (r *fakeTestRepo) ListByIDs(_ context.Context, _ []uuid.UUID) ([]*model.HealthTest, error) {
	return nil, nil
}

type fakeEquipmentRepo struct {
	items   []*model.Equipment
	created []*model.Equipment
}

func (r *fakeEquipmentRepo) Create(_ context.Context, e *model.Equipment) error {
	r.created = append(r.created, e)
	r.items = append(r.items, e)
	return nil
}

func (r *fakeEquipmentRepo) Get(_ context.Context, _ uuid.UUID) (*model.Equipment, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeEquipmentRepo) List(_ context.Context) ([]*model.Equipment, error) {
	return r.items, nil
}

type fakeAppointmentRepo struct {
	created []*model.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *model.Appointment) error {
	r.created = append(r.created, apt)
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, _ uuid.UUID) (*model.Appointment, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeAppointmentRepo) Update(_ context.Context, _ *model.Appointment) error { return nil }

func (r *fakeAppointmentRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeAppointmentRepo) List(_ context.Context, _ *model.AppointmentFilters) ([]*model.Appointment, error) {
	return nil, nil
}

type fixture struct {
	svc          *Service
	companies    *fakeCompanyRepo
	equipment    *fakeEquipmentRepo
	appointments *fakeAppointmentRepo
}

func newFixture() *fixture {
	f := &fixture{
		companies:    &fakeCompanyRepo{companies: make(map[uuid.UUID]*model.Company)},
		equipment:    &fakeEquipmentRepo{},
		appointments: &fakeAppointmentRepo{},
	}
	f.svc = NewService(
		time.Minute,
		f.companies,
		&fakeStaffRepo{},
		&fakeTestRepo{},
		f.equipment,
		f.appointments,
		testMetrics,
	)
	return f
}

func (f *fixture) addCompany(name string) uuid.UUID {
	c := &model.Company{Name: name}
	c.ID = uuid.New()
	f.companies.companies[c.ID] = c
	return c.ID
}

func TestStartAndGet(t *testing.T) {
	f := newFixture()

	session := f.svc.Start(context.Background())
	assert.Equal(t, wizard.StepDetails, session.State.Step)

	got, err := f.svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestGetUnknownSession(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(uuid.New())
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestUpdateDetailsResolvesCompany(t *testing.T) {
	f := newFixture()
	companyID := f.addCompany("Acme")

	session := f.svc.Start(context.Background())
	updated, err := f.svc.UpdateDetails(context.Background(), session.ID, &DetailsRequest{
		CompanyID: &companyID,
	})
	require.NoError(t, err)
	assert.Equal(t, companyID, updated.State.Draft.CompanyID)
	assert.Equal(t, "Acme - Sağlık Taraması", updated.State.Draft.Title)
}

func TestUpdateDetailsUnknownCompany(t *testing.T) {
	f := newFixture()

	session := f.svc.Start(context.Background())
	unknown := uuid.New()
	_, err := f.svc.UpdateDetails(context.Background(), session.ID, &DetailsRequest{
		CompanyID: &unknown,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestToggleUnknownResource(t *testing.T) {
	f := newFixture()

	session := f.svc.Start(context.Background())
	_, err := f.svc.Toggle(session.ID, "vehicle_fleet", uuid.New())
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestRegisterVehicle(t *testing.T) {
	f := newFixture()

	session := f.svc.Start(context.Background())
	vehicle, err := f.svc.RegisterVehicle(context.Background(), session.ID, "Mobil Rontgen Araci", "34 ABC 123")
	require.NoError(t, err)

	assert.Equal(t, model.EquipmentKindVehicle, vehicle.Kind)
	assert.Equal(t, model.EquipmentStatusActive, vehicle.Status)
	assert.Equal(t, "34 ABC 123", vehicle.SerialNumber)
	require.Len(t, f.equipment.created, 1)

	// Registration extends the catalog only; the draft selection is untouched.
	got, err := f.svc.Get(session.ID)
	require.NoError(t, err)
	assert.False(t, got.State.Draft.EquipmentIDs.Contains(vehicle.ID))
}

func TestRegisterVehicleRequiresNameAndPlate(t *testing.T) {
	f := newFixture()
	session := f.svc.Start(context.Background())

	_, err := f.svc.RegisterVehicle(context.Background(), session.ID, "", "34 ABC 123")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)

	_, err = f.svc.RegisterVehicle(context.Background(), session.ID, "Mobil Arac", "")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)

	assert.Empty(t, f.equipment.created)
}

func TestConfirmCreatesOneScreeningAndEndsSession(t *testing.T) {
	f := newFixture()
	companyID := f.addCompany("Acme")

	session := f.svc.Start(context.Background())
	_, err := f.svc.UpdateDetails(context.Background(), session.ID, &DetailsRequest{
		CompanyID: &companyID,
	})
	require.NoError(t, err)

	apt, err := f.svc.Confirm(context.Background(), session.ID)
	require.NoError(t, err)

	require.Len(t, f.appointments.created, 1)
	assert.Equal(t, apt, f.appointments.created[0])
	assert.Equal(t, model.AppointmentStatusPlanned, apt.Status)
	assert.Equal(t, 480, apt.DurationMinutes)

	_, err = f.svc.Get(session.ID)
	assert.Error(t, err, "a confirmed session is gone")
}

func TestConfirmValidationFailureKeepsSession(t *testing.T) {
	f := newFixture()

	session := f.svc.Start(context.Background())

	// No company was ever selected.
	_, err := f.svc.Confirm(context.Background(), session.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Empty(t, f.appointments.created)

	_, err = f.svc.Get(session.ID)
	assert.NoError(t, err, "the draft survives a failed confirm")
}

func TestAbandonDropsSession(t *testing.T) {
	f := newFixture()

	session := f.svc.Start(context.Background())
	f.svc.Abandon(session.ID)

	_, err := f.svc.Get(session.ID)
	assert.Error(t, err)
}

func TestPickerFollowsStepAndSearch(t *testing.T) {
	f := newFixture()

	hemogram := &model.HealthTest{Name: "Hemogram", Category: "lab"}
	hemogram.ID = uuid.New()
	audio := &model.HealthTest{Name: "Odyometri", Category: "isitme"}
	audio.ID = uuid.New()
	f.svc.tests = &fakeTestRepo{tests: []*model.HealthTest{hemogram, audio}}

	session := f.svc.Start(context.Background())

	_, err := f.svc.Picker(context.Background(), session.ID)
	assert.Error(t, err, "the details step has no picker")

	_, err = f.svc.Next(session.ID) // scope
	require.NoError(t, err)
	_, err = f.svc.Search(session.ID, "odyo")
	require.NoError(t, err)

	opts, err := f.svc.Picker(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, opts.Tests, 1)
	assert.Equal(t, "Odyometri", opts.Tests[0].Name)
	assert.Empty(t, opts.Staff)
	assert.Empty(t, opts.Equipment)
}

func TestNextPastReviewRejected(t *testing.T) {
	f := newFixture()
	session := f.svc.Start(context.Background())

	for i := 0; i < 4; i++ {
		_, err := f.svc.Next(session.ID)
		require.NoError(t, err)
	}

	_, err := f.svc.Next(session.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}
