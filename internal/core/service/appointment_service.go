package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type appointmentService struct {
	repo ports.AppointmentRepository
	log  zerolog.Logger
}

// NewAppointmentService returns an AppointmentService implementation.
func NewAppointmentService(repo ports.AppointmentRepository, log zerolog.Logger) ports.AppointmentService {
	return &appointmentService{repo: repo, log: log}
}

// Book creates a pending appointment on behalf of the authenticated patient.
func (s *appointmentService) Book(ctx context.Context, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, domain.ErrInvalidBooking
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		ID:          uuid.NewString(),
		PatientID:   input.PatientID,
		PatientName: input.PatientName,
		DoctorID:    input.DoctorID,
		DoctorName:  input.DoctorName,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		Reason:      input.Reason,
		Status:      domain.AppointmentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		s.log.Error().Err(err).Str("doctor_id", input.DoctorID).Msg("create appointment failed")
		return nil, err
	}

	s.log.Info().Str("appointment_id", appt.ID).Str("doctor_id", appt.DoctorID).Msg("appointment booked")
	return appt, nil
}

// List returns a page of the caller's appointments, scoped by role: doctors
// see appointments assigned to them, patients see their own bookings.
func (s *appointmentService) List(ctx context.Context, input ports.ListAppointmentsInput) (*ports.ListAppointmentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.ListAppointmentsFilter{
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	}
	switch input.Role {
	case domain.RoleDoctor:
		filter.DoctorID = input.AccountID
	case domain.RolePatient:
		filter.PatientID = input.AccountID
	default:
		return nil, domain.ErrForbidden
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListAppointmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus applies a lifecycle transition requested by the appointment's
// doctor. Transitions outside the state machine are rejected.
func (s *appointmentService) UpdateStatus(ctx context.Context, input ports.UpdateAppointmentStatusInput) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt.DoctorID != input.DoctorID {
		return nil, domain.ErrForbidden
	}
	if !appt.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, appt.Status, input.Status)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, appt.ID, input.Status, now); err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}

	appt.Status = input.Status
	appt.UpdatedAt = now
	s.log.Info().Str("appointment_id", appt.ID).Str("status", string(input.Status)).Msg("appointment status updated")
	return appt, nil
}
