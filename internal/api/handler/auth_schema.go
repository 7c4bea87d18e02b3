package handler

import (
	"time"

	"github.com/carelink/portal-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// accountResponse is the outward view of an account record. The secret never
// leaves the service.
type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	Specialization string `json:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`

	Age              int    `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	BloodType        string `json:"bloodType,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`

	Departments []string `json:"departments,omitempty"`
	Beds        *int     `json:"beds,omitempty"`
	Doctors     int      `json:"doctors,omitempty"`
}

type sessionResponse struct {
	ID        string          `json:"id"`
	Role      string          `json:"role"`
	Account   accountResponse `json:"account"`
	CreatedAt string          `json:"created_at"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

type sessionInfoResponse struct {
	Authenticated bool             `json:"authenticated"`
	Session       *sessionResponse `json:"session"`
}

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Specialization:   a.Specialization,
		Hospital:         a.Hospital,
		Phone:            a.Phone,
		Address:          a.Address,
		Age:              a.Age,
		Gender:           a.Gender,
		BloodType:        a.BloodType,
		EmergencyContact: a.EmergencyContact,
		Departments:      a.Departments,
		Beds:             a.Beds,
		Doctors:          a.Doctors,
	}
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		Role:      s.Role,
		Account:   toAccountResponse(s.Account),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
