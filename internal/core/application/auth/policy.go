// Package auth holds the role-based authorization policy for the dispatch
// command surfaces. The rule set lives in a single capability table instead
// of being repeated inline in every handler; each command handler asks for
// exactly one capability before touching the dispatch engine.
package auth

import (
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

// Capability names a dispatch command surface that requires a role check.
type Capability string

const (
	// CapApproveDriver lets the holder force a driver to on_road.
	CapApproveDriver Capability = "approve_driver"

	// CapResetDriver lets the holder reset a driver to ready.
	CapResetDriver Capability = "reset_driver"

	// CapAssignOrder lets the holder update an order's status and driver.
	CapAssignOrder Capability = "assign_order"

	// CapViewDispatch lets the holder read dashboards and order listings.
	CapViewDispatch Capability = "view_dispatch"

	// CapStartTrip lets the holder start their own trip.
	CapStartTrip Capability = "start_trip"

	// CapFinishTrip lets the holder finish their own trip.
	CapFinishTrip Capability = "finish_trip"
)

// rolePolicy is the single source of truth mapping capabilities to the role
// that may exercise them. Driver capabilities are additionally self-targeted:
// the acting driver's own ID is the only valid target, which the commands
// guarantee by construction (they carry no target parameter).
func rolePolicy() map[Capability]account.Role {
	return map[Capability]account.Role{
		CapApproveDriver: account.RoleAdmin,
		CapResetDriver:   account.RoleAdmin,
		CapAssignOrder:   account.RoleAdmin,
		CapViewDispatch:  account.RoleAdmin,
		CapStartTrip:     account.RoleDriver,
		CapFinishTrip:    account.RoleDriver,
	}
}

// Actor is the authenticated identity attached to an inbound command.
// Identity and role resolution happen upstream (external auth collaborator);
// the core only ever sees the resolved result.
type Actor struct {
	ID   kernel.UUID
	Role account.Role
}

// NewActor builds an Actor from a resolved identity and role.
func NewActor(id kernel.UUID, role account.Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{ID: id, Role: role}, nil
}

// Authorize checks the actor's role against the capability table.
// Returns a NotAuthorizedError on mismatch or unknown capability; the caller
// must not have performed any mutation yet, so a rejection leaves all
// entities untouched.
func Authorize(actor Actor, capability Capability) error {
	required, ok := rolePolicy()[capability]
	if !ok {
		return errs.NewNotAuthorizedError("unknown", actor.Role.String())
	}

	if actor.Role != required {
		return errs.NewNotAuthorizedError(required.String(), actor.Role.String())
	}

	return nil
}
