package domain

import "errors"

// Portal roles. Every account belongs to exactly one.
const (
	RoleDoctor   = "doctor"
	RolePatient  = "patient"
	RoleHospital = "hospital"
)

var ErrRoleRequired = errors.New("role is required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrStoreUnavailable = errors.New("credential store unavailable")
var ErrCorruptSession = errors.New("corrupt persisted session")
var ErrNoSession = errors.New("no persisted session")
var ErrAccountNotFound = errors.New("account not found")
var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the three portal roles.
func ValidRole(role string) bool {
	switch role {
	case RoleDoctor, RolePatient, RoleHospital:
		return true
	}
	return false
}

// Account is a single entry in the credential directory. The secret is kept
// in plaintext because the directory mirrors a demo fixture; comparison goes
// through a CredentialVerifier so a hashed directory needs no model change.
type Account struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password,omitempty" bson:"password,omitempty"`

	// Doctor fields.
	Specialization string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty" bson:"hospital,omitempty"`
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address        string `json:"address,omitempty" bson:"address,omitempty"`

	// Patient fields.
	Age              int    `json:"age,omitempty" bson:"age,omitempty"`
	Gender           string `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodType        string `json:"bloodType,omitempty" bson:"blood_type,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty" bson:"emergency_contact,omitempty"`

	// Hospital fields. Beds is a pointer so an absent field is
	// distinguishable from an explicit zero.
	Departments []string `json:"departments,omitempty" bson:"departments,omitempty"`
	Beds        *int     `json:"beds,omitempty" bson:"beds,omitempty"`
	Doctors     int      `json:"doctors,omitempty" bson:"doctors,omitempty"`
}

// CredentialDocument is the role-partitioned directory document. Emails are
// unique only within a single list; the directory enforces nothing.
type CredentialDocument struct {
	Doctors   []Account `json:"doctors"`
	Patients  []Account `json:"patients"`
	Hospitals []Account `json:"hospitals"`
}

// Accounts returns the sub-list for role, or nil for an unknown role.
func (d *CredentialDocument) Accounts(role string) []Account {
	switch role {
	case RoleDoctor:
		return d.Doctors
	case RolePatient:
		return d.Patients
	case RoleHospital:
		return d.Hospitals
	}
	return nil
}
