package domain

import "strings"

// Role is the closed set of account roles. The zero value is not a valid role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole accepts the wire form of a role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", Invalid("type must be one of: admin customer")
	}
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// Identity is the authenticated caller of one request. It only ever comes out
// of token verification and is never written back to storage.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"type"`
}

// IsAuthenticated is true iff an identity is attached.
func IsAuthenticated(id *Identity) bool {
	return id != nil
}

// IsAdmin is true iff an identity is attached and carries the admin role.
func IsAdmin(id *Identity) bool {
	if id == nil {
		return false
	}
	switch id.Role {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return false
	default:
		return false
	}
}

// IsCustomer is true iff an identity is attached and carries the customer role.
func IsCustomer(id *Identity) bool {
	if id == nil {
		return false
	}
	switch id.Role {
	case RoleCustomer:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}
