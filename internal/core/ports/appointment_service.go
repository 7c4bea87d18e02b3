package ports

import (
	"context"
	"time"

	"github.com/carelink/portal-api/internal/core/domain"
)

// BookAppointmentInput carries everything needed to book a consultation.
// Patient identity comes from the authenticated caller, never the payload.
type BookAppointmentInput struct {
	PatientID   string
	PatientName string
	DoctorID    string
	DoctorName  string
	StartTime   time.Time
	EndTime     time.Time
	Reason      string
}

// ListAppointmentsInput carries the list parameters plus the caller's
// identity for scoping.
type ListAppointmentsInput struct {
	Role      string
	AccountID string
	Status    string
	DateFrom  time.Time
	DateTo    time.Time
	Page      int
	Limit     int
}

// ListAppointmentsResult is a single page of appointments.
type ListAppointmentsResult struct {
	Items      []*domain.Appointment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateAppointmentStatusInput identifies a transition requested by a doctor.
type UpdateAppointmentStatusInput struct {
	AppointmentID string
	DoctorID      string
	Status        domain.AppointmentStatus
}

// AppointmentService defines the use-case operations behind the doctor and
// patient dashboards.
type AppointmentService interface {
	Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context, input ListAppointmentsInput) (*ListAppointmentsResult, error)
	UpdateStatus(ctx context.Context, input UpdateAppointmentStatusInput) (*domain.Appointment, error)
}
