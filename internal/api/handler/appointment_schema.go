package handler

import (
	"time"

	"github.com/carelink/portal-api/internal/core/domain"
)

type bookAppointmentRequest struct {
	DoctorID   string    `json:"doctor_id"   validate:"required"`
	DoctorName string    `json:"doctor_name" validate:"required"`
	StartTime  time.Time `json:"start_time"  validate:"required"`
	EndTime    time.Time `json:"end_time"    validate:"required,gtfield=StartTime"`
	Reason     string    `json:"reason"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed declined cancelled completed"`
}

type appointmentResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type listAppointmentsResponse struct {
	Items      []appointmentResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		DoctorID:    a.DoctorID,
		DoctorName:  a.DoctorName,
		StartTime:   a.StartTime.UTC().Format(time.RFC3339),
		EndTime:     a.EndTime.UTC().Format(time.RFC3339),
		Reason:      a.Reason,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
