package models

import "time"

// Appointment represents one requested consultation slot with the astrologer.
type Appointment struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Date             string    `json:"date"` // "YYYY-MM-DD"
	Time             string    `json:"time"` // slot label, e.g. "11:00 AM"
	ConsultationType string    `json:"consultationType"`
	Message          string    `json:"message,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AppointmentInput is the customer-facing booking submission. A status field
// supplied by the caller is deliberately absent: creation always starts pending.
type AppointmentInput struct {
	Name             string `json:"name" binding:"required,min=2"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,min=10"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	ConsultationType string `json:"consultationType" binding:"required"`
	Message          string `json:"message"`
}

// AppointmentStatusUpdate is the admin status-transition request body.
type AppointmentStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
