package domain

import (
	"errors"
	"time"
)

var ErrInvalidBooking = errors.New("appointment end must be after start")

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentDeclined  AppointmentStatus = "declined"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// validTransitions defines the allowed state machine transitions. Declined,
// cancelled, and completed are terminal.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentDeclined, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a booked consultation between a patient and a doctor.
type Appointment struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	PatientID   string            `json:"patient_id" bson:"patient_id"`
	PatientName string            `json:"patient_name" bson:"patient_name"`
	DoctorID    string            `json:"doctor_id" bson:"doctor_id"`
	DoctorName  string            `json:"doctor_name" bson:"doctor_name"`
	StartTime   time.Time         `json:"start_time" bson:"start_time"`
	EndTime     time.Time         `json:"end_time" bson:"end_time"`
	Reason      string            `json:"reason" bson:"reason"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
