package models

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	MeetLink      string `json:"meetLink"`
}
