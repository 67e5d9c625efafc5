package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"divineastro/models"
	"divineastro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error) {
	appt := &models.Appointment{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Date:             input.Date,
		Time:             input.Time,
		ConsultationType: input.ConsultationType,
		Message:          input.Message,
		Status:           string(StatusPending),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	utils.GetLogger().Info("appointment booked",
		zap.String("id", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("type", appt.ConsultationType))
	return appt, nil
}

func (s *DefaultAppointmentService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Appointment, error) {
	target, err := ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := Status(current.Status)
	if from == target {
		// No-op update; keep the call idempotent.
		return current, nil
	}
	if !from.CanTransitionTo(target) {
		return nil, &InvalidTransitionError{From: from, To: target}
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, string(target))
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("appointment status updated",
		zap.String("id", id),
		zap.String("from", string(from)),
		zap.String("to", string(target)))

	if target == StatusAccepted && s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(*updated, MeetLink(updated.ID)); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder", zap.String("id", id), zap.Error(err))
		}
	}
	return updated, nil
}

// MeetLink derives the consultation room URL from an appointment id: the
// first 21 characters with hyphens stripped, lowercased, appended to the
// Google Meet host. Deterministic so admin and customer land in the same room.
func MeetLink(appointmentID string) string {
	room := appointmentID
	if len(room) > 21 {
		room = room[:21]
	}
	room = strings.ToLower(strings.ReplaceAll(room, "-", ""))
	return "https://meet.google.com/" + room
}
