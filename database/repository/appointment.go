package repository

import (
	"context"
	"net/url"
	"sort"

	"divineastro/database"
	"divineastro/models"
	"divineastro/utils"

	"go.uber.org/zap"
)

// AppointmentRepository defines methods for consultation booking data access.
// Appointments are never deleted; the admin surface only transitions status.
type AppointmentRepository interface {
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
}

// FailoverAppointmentRepo serves appointments from Supabase; bookings taken
// while the store is down live only in the memory table until restart.
type FailoverAppointmentRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.Appointment]
}

func NewFailoverAppointmentRepo(db *database.SupabaseClient) *FailoverAppointmentRepo {
	return &FailoverAppointmentRepo{db: db, mem: newMemCollection[models.Appointment]()}
}

// GetAll returns appointments newest-first so fresh requests top the dashboard.
func (r *FailoverAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	fetched := false
	if r.db != nil {
		if err := r.db.Select(ctx, "appointments", "", &appts); err == nil {
			fetched = true
		} else {
			utils.GetLogger().Warn("appointments: store read failed, using memory fallback", zap.Error(err))
		}
	}
	if !fetched {
		appts = r.mem.all()
	}
	for i := range appts {
		if appts[i].Status == "" {
			appts[i].Status = "pending"
		}
	}
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].CreatedAt.After(appts[j].CreatedAt)
	})
	return appts, nil
}

func (r *FailoverAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if r.db != nil {
		var out models.Appointment
		err := r.db.SelectSingle(ctx, "appointments", "id=eq."+url.QueryEscape(id), &out)
		if err == nil {
			if out.Status == "" {
				out.Status = "pending"
			}
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("appointments: store read failed, using memory fallback", zap.String("id", id), zap.Error(err))
		}
	}
	if a, ok := r.mem.get(id); ok {
		if a.Status == "" {
			a.Status = "pending"
		}
		return &a, nil
	}
	return nil, ErrNotFound
}

func (r *FailoverAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if r.db != nil {
		if err := r.db.Insert(ctx, "appointments", appointment, appointment); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("appointments: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(appointment.ID, *appointment)
	return nil
}

func (r *FailoverAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if r.db != nil {
		var out models.Appointment
		patch := map[string]string{"status": status}
		err := r.db.Update(ctx, "appointments", "id=eq."+url.QueryEscape(id), patch, &out)
		if err == nil {
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("appointments: store write failed, using memory fallback", zap.String("id", id), zap.Error(err))
		}
	}
	a, ok := r.mem.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	a.Status = status
	r.mem.put(id, a)
	return &a, nil
}
