package user

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role is the binary access tag on an account. Authorization in this service
// is a single admin/customer check; there is no finer-grained policy.
type Role string

const (
	// Admin may maintain the catalog and administer orders.
	Admin Role = "ADMIN"
	// Customer may manage a cart and place orders.
	Customer Role = "CUSTOMER"
)

// RoleFromString parses a stored or submitted role tag.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the known tags.
func (r Role) Validate() error {
	switch r {
	case Admin, Customer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the persisted representation of the role.
func (r Role) String() string {
	return string(r)
}
