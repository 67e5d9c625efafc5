package appointment

import (
	"context"
	"testing"

	"divineastro/database/repository"
	"divineastro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAppointmentRepo is an in-memory AppointmentRepository for service tests.
type mockAppointmentRepo struct {
	byID map[string]models.Appointment
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{byID: make(map[string]models.Appointment)}
}

func (m *mockAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(m.byID))
	for _, a := range m.byID {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	m.byID[appt.ID] = *appt
	return nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Status = status
	m.byID[id] = a
	return &a, nil
}

func bookingInput() models.AppointmentInput {
	return models.AppointmentInput{
		Name:             "Ravi Verma",
		Email:            "ravi@example.com",
		Phone:            "9876543210",
		Date:             "2025-04-12",
		Time:             "11:00 AM",
		ConsultationType: "Career Consultation",
	}
}

func TestCreateAppointmentStartsPending(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: newMockAppointmentRepo()}

	appt, err := svc.CreateAppointment(context.Background(), bookingInput())
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, string(StatusPending), appt.Status)
	assert.False(t, appt.CreatedAt.IsZero())
	assert.Equal(t, "Ravi Verma", appt.Name)
}

func TestCreateAppointmentAssignsDistinctIDs(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: newMockAppointmentRepo()}
	ctx := context.Background()

	first, err := svc.CreateAppointment(ctx, bookingInput())
	require.NoError(t, err)
	second, err := svc.CreateAppointment(ctx, bookingInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      string
		wantErr bool
	}{
		{"pending to accepted", StatusPending, "accepted", false},
		{"pending to declined", StatusPending, "declined", false},
		{"accepted to completed", StatusAccepted, "completed", false},
		{"pending to completed", StatusPending, "completed", true},
		{"declined to accepted", StatusDeclined, "accepted", true},
		{"completed to pending", StatusCompleted, "pending", true},
		{"accepted to declined", StatusAccepted, "declined", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockAppointmentRepo()
			repo.byID["a1"] = models.Appointment{ID: "a1", Status: string(tc.from)}
			svc := &DefaultAppointmentService{Repo: repo}

			updated, err := svc.UpdateStatus(context.Background(), "a1", tc.to)
			if tc.wantErr {
				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.from, invalid.From)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, updated.Status)
		})
	}
}

func TestUpdateStatusSameStateIsNoOp(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byID["a1"] = models.Appointment{ID: "a1", Status: string(StatusAccepted)}
	svc := &DefaultAppointmentService{Repo: repo}

	updated, err := svc.UpdateStatus(context.Background(), "a1", "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byID["a1"] = models.Appointment{ID: "a1", Status: string(StatusPending)}
	svc := &DefaultAppointmentService{Repo: repo}

	_, err := svc.UpdateStatus(context.Background(), "a1", "cancelled")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateStatusMissingAppointment(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: newMockAppointmentRepo()}
	_, err := svc.UpdateStatus(context.Background(), "missing", "accepted")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMeetLink(t *testing.T) {
	link := MeetLink("123e4567-e89b-12d3-a456-426614174000")
	// First 21 characters, hyphens stripped, lowercased.
	assert.Equal(t, "https://meet.google.com/123e4567e89b12d3a4", link)

	short := MeetLink("abc-DEF")
	assert.Equal(t, "https://meet.google.com/abcdef", short)
}
