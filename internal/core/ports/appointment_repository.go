package ports

import (
	"context"
	"time"

	"github.com/carelink/portal-api/internal/core/domain"
)

// ListAppointmentsFilter carries the query parameters for listing
// appointments. DoctorID/PatientID scoping is enforced by the service layer.
type ListAppointmentsFilter struct {
	DoctorID  string    // non-empty = scoped to this doctor
	PatientID string    // non-empty = scoped to this patient
	Status    string    // optional: filter by appointment status
	DateFrom  time.Time // optional: start_time >= DateFrom
	DateTo    time.Time // optional: start_time <= DateTo
	Page      int       // 1-based
	Limit     int       // rows per page (capped by the service)
}

// AppointmentRepository defines persistence operations for appointments.
// List results are ordered by start time ascending.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter ListAppointmentsFilter) ([]*domain.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, ts time.Time) error
}
