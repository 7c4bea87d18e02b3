package domain

import (
	"fmt"
	"time"
)

// Session is the authenticated identity currently active on a device. It
// exists if and only if the owner is logged in; the persisted copy and the
// in-memory copy are mirrored on every mutation.
type Session struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Account   Account   `json:"account"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields a restored session must carry before it can be
// trusted: the identity fields, a known role, and the role-specific fields
// that role's dashboard depends on. Failures wrap ErrCorruptSession.
func (s *Session) Validate() error {
	if s.Account.ID == "" || s.Account.Email == "" {
		return fmt.Errorf("%w: missing identity fields", ErrCorruptSession)
	}
	if !ValidRole(s.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrCorruptSession, s.Role)
	}

	switch s.Role {
	case RoleDoctor:
		if s.Account.Specialization == "" || s.Account.Hospital == "" {
			return fmt.Errorf("%w: doctor record missing specialization or hospital", ErrCorruptSession)
		}
	case RolePatient:
		if s.Account.Age <= 0 || s.Account.BloodType == "" {
			return fmt.Errorf("%w: patient record missing age or blood type", ErrCorruptSession)
		}
	case RoleHospital:
		if len(s.Account.Departments) == 0 || s.Account.Beds == nil {
			return fmt.Errorf("%w: hospital record missing departments or beds", ErrCorruptSession)
		}
	}
	return nil
}
