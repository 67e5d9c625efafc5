package handlers

import (
	"errors"
	"net/http"

	"divineastro/database/repository"
	"divineastro/models"
	"divineastro/services/appointment"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the consultation booking endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// appointmentResponse wraps an appointment with the derived meet link, which
// only exists once the booking has been accepted.
type appointmentResponse struct {
	models.Appointment
	MeetLink string `json:"meetLink,omitempty"`
}

func toAppointmentResponse(appt *models.Appointment) appointmentResponse {
	resp := appointmentResponse{Appointment: *appt}
	if appt.Status == string(appointment.StatusAccepted) {
		resp.MeetLink = appointment.MeetLink(appt.ID)
	}
	return resp
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindingError(c, err)
		return
	}
	appt, err := h.Service.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to create appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book appointment"})
		return
	}
	c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// ListAppointmentsHandler handles GET /api/appointments (admin only).
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	appts, err := h.Service.ListAppointments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}
	out := make([]appointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, toAppointmentResponse(&appts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment"})
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// UpdateAppointmentStatusHandler handles PATCH /api/appointments/:id/status
// (admin only).
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req models.AppointmentStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		var invalid *appointment.InvalidTransitionError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		case errors.Is(err, appointment.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &invalid):
			c.JSON(http.StatusConflict, gin.H{"error": invalid.Error()})
		default:
			logger.Error("Failed to update appointment status",
				zap.String("id", id), zap.String("status", req.Status), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}
