package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"divineastro/models"

	"github.com/hibiken/asynq"
)

// reminderLead is how far before the consultation slot the reminder fires.
const reminderLead = time.Hour

// Scheduler enqueues appointment reminders onto the asynq queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler builds a scheduler against the reminder queue Redis DB.
func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleAppointmentReminder queues a reminder one hour before the slot.
// Slots already inside the lead window are skipped.
func (s *Scheduler) ScheduleAppointmentReminder(appt models.Appointment, meetLink string) error {
	fireAt, err := ReminderFireTime(appt.Date, appt.Time)
	if err != nil {
		return err
	}
	if !fireAt.After(time.Now().UTC()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appt.ID,
		Name:          appt.Name,
		Email:         appt.Email,
		Date:          appt.Date,
		Time:          appt.Time,
		MeetLink:      meetLink,
	})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}

// ReminderFireTime resolves a booking's "YYYY-MM-DD" date and slot label
// ("11:00 AM") to the reminder instant.
func ReminderFireTime(date, slot string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 3:04 PM", date+" "+slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot %q %q: %w", date, slot, err)
	}
	return t.Add(-reminderLead), nil
}
