package wizard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osgbtech/screening-api/internal/model"
)

func TestNewDefaults(t *testing.T) {
	st := New()

	assert.Equal(t, StepDetails, st.Step)
	assert.Equal(t, StepDetails, st.MaxVisited)
	assert.Equal(t, model.Today(), st.Draft.Date)
	require.NotNil(t, st.Draft.StartTime)
	require.NotNil(t, st.Draft.EndTime)
	assert.Equal(t, "09:00", st.Draft.StartTime.String())
	assert.Equal(t, "17:00", st.Draft.EndTime.String())
	assert.Equal(t, model.AppointmentTypeScreening, st.Draft.Type)
}

func TestNextAdvancesOneStepAtATime(t *testing.T) {
	st := New()

	for want := StepScope; want <= StepReview; want++ {
		next, err := st.Next()
		require.NoError(t, err)
		assert.Equal(t, want, next.Step)
		assert.Equal(t, want, next.MaxVisited)
		st = next
	}

	_, err := st.Next()
	assert.Error(t, err)
}

func TestBackOnlyToVisitedSteps(t *testing.T) {
	st := New()

	_, err := st.Back(StepTeam)
	assert.Error(t, err, "team step was never visited")

	st, _ = st.Next() // scope
	st, _ = st.Next() // team

	back, err := st.Back(StepDetails)
	require.NoError(t, err)
	assert.Equal(t, StepDetails, back.Step)
	assert.Equal(t, StepTeam, back.MaxVisited)

	// After going back, previously visited steps stay reachable.
	again, err := back.Back(StepTeam)
	require.NoError(t, err)
	assert.Equal(t, StepTeam, again.Step)
}

func TestBackRejectsUnknownStep(t *testing.T) {
	st := New()

	_, err := st.Back(Step(0))
	assert.Error(t, err)

	_, err = st.Back(Step(9))
	assert.Error(t, err)
}

func TestStepChangeClearsSearchTerm(t *testing.T) {
	st := New().WithSearch("hemogram")

	next, err := st.Next() // scope
	require.NoError(t, err)
	assert.Empty(t, next.SearchTerm)

	next = next.WithSearch("odyo")
	team, err := next.Next() // team
	require.NoError(t, err)
	assert.Empty(t, team.SearchTerm)
}

func TestDraftSurvivesRevisits(t *testing.T) {
	staffID := uuid.New()

	st := New()
	st, _ = st.Next() // scope
	st, _ = st.Next() // team
	st = st.ToggleStaff(staffID)

	back, err := st.Back(StepDetails)
	require.NoError(t, err)
	forward, err := back.Back(StepTeam)
	require.NoError(t, err)

	assert.True(t, forward.Draft.StaffIDs.Contains(staffID))
}

func TestSelectCompanyDerivesTitle(t *testing.T) {
	companyA, companyB := uuid.New(), uuid.New()

	st := New().SelectCompany(companyA, "Acme")
	assert.Equal(t, "Acme - Sağlık Taraması", st.Draft.Title)

	// A different company rederives the untouched title.
	st = st.SelectCompany(companyB, "Globex")
	assert.Equal(t, "Globex - Sağlık Taraması", st.Draft.Title)
}

func TestManualTitleSurvivesCompanyChange(t *testing.T) {
	companyA, companyB := uuid.New(), uuid.New()

	st := New().SelectCompany(companyA, "Acme")
	st = st.SetTitle("Yillik Periyodik Muayene")

	st = st.SelectCompany(companyB, "Globex")
	assert.Equal(t, "Yillik Periyodik Muayene", st.Draft.Title)
}

func TestSelectSameCompanyIsNoOp(t *testing.T) {
	company := uuid.New()

	st := New().SelectCompany(company, "Acme")
	st = st.SetTitle("Ozel Baslik")
	st = st.SelectCompany(company, "Acme")

	assert.Equal(t, "Ozel Baslik", st.Draft.Title)
}

func TestToggleInvolution(t *testing.T) {
	id := uuid.New()

	st := New().ToggleTest(id)
	assert.True(t, st.Draft.TestIDs.Contains(id))

	st = st.ToggleTest(id)
	assert.False(t, st.Draft.TestIDs.Contains(id))
}

func TestBuildAppointmentRequiresCompanyTitleDate(t *testing.T) {
	st := New()
	st.Draft.Title = ""

	_, err := st.BuildAppointment()
	assert.Error(t, err, "empty company")

	st = st.SelectCompany(uuid.New(), "Acme")
	st.Draft.Title = ""
	_, err = st.BuildAppointment()
	assert.Error(t, err, "empty title")

	st.Draft.Title = "Acme - Sağlık Taraması"
	st.Draft.Date = model.Date{}
	_, err = st.BuildAppointment()
	assert.Error(t, err, "empty date")
}

func TestBuildAppointment(t *testing.T) {
	company := uuid.New()
	staffID := uuid.New()
	date, err := model.ParseDate("2024-05-01")
	require.NoError(t, err)

	start, _ := model.ParseTimeOfDay("09:00")
	end, _ := model.ParseTimeOfDay("17:00")

	st := New().
		SelectCompany(company, "Acme").
		SetDate(date).
		SetTimes(&start, &end).
		ToggleStaff(staffID)

	apt, err := st.BuildAppointment()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, apt.ID)
	assert.Equal(t, company, apt.CompanyID)
	assert.Equal(t, "Acme - Sağlık Taraması", apt.Title)
	assert.Equal(t, model.AppointmentStatusPlanned, apt.Status)
	assert.Equal(t, 480, apt.DurationMinutes)
	assert.Equal(t, "8sa", apt.FormattedDuration())
	assert.True(t, apt.StaffIDs.Contains(staffID))
}

func TestBuildAppointmentZeroDurationOnEqualTimes(t *testing.T) {
	start, _ := model.ParseTimeOfDay("09:00")
	end, _ := model.ParseTimeOfDay("09:00")

	st := New().
		SelectCompany(uuid.New(), "Acme").
		SetTimes(&start, &end)

	apt, err := st.BuildAppointment()
	require.NoError(t, err)
	assert.Equal(t, 0, apt.DurationMinutes)
}
