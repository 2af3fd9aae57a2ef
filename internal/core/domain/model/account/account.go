package account

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory functions.
	ErrAccountIsNotConstructed = errors.New(
		"Account must be created via NewAccount or RestoreAccount constructor")

	// ErrNotADriver is returned when a driver-only availability mutation is
	// attempted on an account whose role is not driver.
	ErrNotADriver = errors.New("account role is not driver")
)

// Account represents a user of the dispatch system. A driver is an account
// with RoleDriver; its Status field then tracks availability. The role is
// fixed at creation and never changed by the core.
//
// Availability mutations (GoOnRoad, MarkReady) set the status unconditionally
// and never look at orders the driver may hold: the order side of a trip is
// mutated separately by the command layer inside the same transaction. This
// decoupling is deliberate and callers rely on it, e.g. an admin may reset a
// driver mid-trip.
type Account struct {
	id     kernel.UUID
	name   string
	role   Role
	status Status

	isConstructed bool
}

// NewAccount creates an Account with validation. The availability status
// always starts at offline.
func NewAccount(id kernel.UUID, name string, role Role) (*Account, error) {
	a := &Account{
		status:        StatusOffline,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
func RestoreAccount(id kernel.UUID, name string, role Role, status Status) (*Account, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Account{
		id:            id,
		name:          name,
		role:          role,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account instance was properly constructed through a
// factory function.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}

	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the account holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Role returns the account's fixed role.
func (a *Account) Role() Role {
	return a.role
}

// Status returns the account's current availability status.
func (a *Account) Status() Status {
	return a.status
}

// IsDriver reports whether the account can be dispatched.
func (a *Account) IsDriver() bool {
	return a.role == RoleDriver
}

// IsAdmin reports whether the account runs the dispatch desk.
func (a *Account) IsAdmin() bool {
	return a.role == RoleAdmin
}

// GoOnRoad sets the driver's availability to on_road unconditionally.
// The previous status and any owned orders are not consulted.
// Returns ErrNotADriver for non-driver accounts.
func (a *Account) GoOnRoad() error {
	if !a.IsDriver() {
		return ErrNotADriver
	}

	a.status = StatusOnRoad
	return nil
}

// MarkReady sets the driver's availability to ready unconditionally.
// Returns ErrNotADriver for non-driver accounts.
func (a *Account) MarkReady() error {
	if !a.IsDriver() {
		return ErrNotADriver
	}

	a.status = StatusReady
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
