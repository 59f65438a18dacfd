package domain

import "fmt"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// DefaultRole is given to accounts that did not ask for one.
const DefaultRole = RoleBuyer

// ParseRole maps user input onto a known role. An empty string means DefaultRole.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return DefaultRole, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r is one of the allowed roles.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// SelfAssignable reports whether a user may pick this role at signup.
func (r Role) SelfAssignable() bool {
	return r.In(RoleBuyer, RoleSeller)
}

func (r Role) String() string {
	return string(r)
}
