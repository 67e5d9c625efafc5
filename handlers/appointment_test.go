package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"divineastro/config"
	"divineastro/database/repository"
	"divineastro/handlers"
	"divineastro/models"
	"divineastro/routes"
	"divineastro/services/appointment"
	"divineastro/services/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// staticVerifier resolves fixed bearer tokens for route tests.
type staticVerifier struct {
	identities map[string]identity.Identity
}

func (v *staticVerifier) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	ident, ok := v.identities[token]
	if !ok {
		return nil, identity.ErrUnauthenticated
	}
	return &ident, nil
}

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	config.AppConfig.AdminEmails = "veernandan00u@gmail.com,admin@example.com"
	config.AppConfig.AdminDomains = "@admin.divine"

	verifier := &staticVerifier{identities: map[string]identity.Identity{
		"admin-token":    {ID: "admin-1", Email: "veernandan00u@gmail.com", Admin: true},
		"customer-token": {ID: "cust-1", Email: "customer@gmail.com", Admin: false},
	}}

	svc := &appointment.DefaultAppointmentService{
		Repo: repository.NewFailoverAppointmentRepo(nil),
	}
	h := &handlers.AppointmentHandler{Service: svc}

	hb := &handlers.HandlerBundle{
		Verifier:                       verifier,
		CreateAppointmentHandler:       h.CreateAppointmentHandler,
		ListAppointmentsHandler:        h.ListAppointmentsHandler,
		GetAppointmentHandler:          h.GetAppointmentHandler,
		UpdateAppointmentStatusHandler: h.UpdateAppointmentStatusHandler,
	}

	r := gin.New()
	routes.RegisterAppointmentRoutes(r, hb)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBooking() models.AppointmentInput {
	return models.AppointmentInput{
		Name:             "Ravi Verma",
		Email:            "ravi@example.com",
		Phone:            "9876543210",
		Date:             "2025-04-12",
		Time:             "11:00 AM",
		ConsultationType: "Career Consultation",
	}
}

func TestBookAppointment(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", "", validBooking())
	require.Equal(t, http.StatusCreated, w.Code)

	var appt models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "pending", appt.Status)
	assert.Equal(t, "Ravi Verma", appt.Name)
}

func TestBookAppointmentRejectsInvalidInput(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", "", map[string]string{
		"name":  "R",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointmentsRequiresAuth(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodGet, "/api/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAppointmentsRejectsNonAdmin(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodGet, "/api/appointments", "customer-token", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required. Only veernandan00u@gmail.com")
}

func TestListAppointmentsAsAdmin(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", "", validBooking())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/appointments", "admin-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var appts []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appts))
	assert.Len(t, appts, 1)
}

func TestGetAppointmentNotFound(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodGet, "/api/appointments/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusWorkflow(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", "", validBooking())
	require.Equal(t, http.StatusCreated, w.Code)
	var appt models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))

	// Accepting surfaces the derived meet link.
	w = doJSON(r, http.MethodPatch, "/api/appointments/"+appt.ID+"/status", "admin-token",
		models.AppointmentStatusUpdate{Status: "accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	var accepted struct {
		Status   string `json:"status"`
		MeetLink string `json:"meetLink"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accepted))
	assert.Equal(t, "accepted", accepted.Status)
	assert.Contains(t, accepted.MeetLink, "https://meet.google.com/")

	// Declining an accepted booking is inadmissible.
	w = doJSON(r, http.MethodPatch, "/api/appointments/"+appt.ID+"/status", "admin-token",
		models.AppointmentStatusUpdate{Status: "declined"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown statuses are a client error.
	w = doJSON(r, http.MethodPatch, "/api/appointments/"+appt.ID+"/status", "admin-token",
		models.AppointmentStatusUpdate{Status: "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusUpdateRequiresAdmin(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/appointments/any/status", "customer-token",
		models.AppointmentStatusUpdate{Status: "accepted"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
