package account

import (
	"fmt"

	"taxidispatch/internal/pkg/errs"
)

// Role classifies an account: administrators run the dispatch desk, drivers
// execute trips, customers submit orders. A role is fixed at account creation
// and never mutated by the core.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin marks the dispatch administrator.
	RoleAdmin

	// RoleDriver marks an account that can be assigned orders and run trips.
	RoleDriver

	// RoleCustomer marks a regular customer account.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleAdmin:    "admin",
		RoleDriver:   "driver",
		RoleCustomer: "user",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:    "admin",
		RoleDriver:   "driver",
		RoleCustomer: "user",
	}
}

// RoleFromString parses a wire/persistence representation into a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role is one of the defined account roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role ("admin", "driver", "user").
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
