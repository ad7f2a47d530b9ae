package authguard

import "fmt"

// Role is the closed set of caller roles. It is fixed at signup and carried
// in the access token; there are no dynamic role assignments.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// ParseRole maps a raw claim string onto the closed Role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is a member of the closed Role set.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }
