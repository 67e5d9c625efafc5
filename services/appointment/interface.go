package appointment

import (
	"context"

	"divineastro/database/repository"
	"divineastro/models"
)

// AppointmentService manages the consultation booking lifecycle.
type AppointmentService interface {
	// CreateAppointment books a slot for a customer. The record always starts
	// pending with a server-assigned id and timestamp.
	CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error)
	// ListAppointments returns every appointment, newest first.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	// GetAppointment fetches a single appointment by id.
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	// UpdateStatus applies an admissible status transition and returns the
	// updated record.
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Appointment, error)
}

// ReminderScheduler queues a customer reminder ahead of an accepted slot.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appt models.Appointment, meetLink string) error
}

// DefaultAppointmentService is the production implementation. Reminders may
// be nil to run without the queue.
type DefaultAppointmentService struct {
	Repo      repository.AppointmentRepository
	Reminders ReminderScheduler
}
