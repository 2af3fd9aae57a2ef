package account

import (
	"fmt"

	"taxidispatch/internal/pkg/errs"
)

// Status is the availability state of an account. It only carries meaning for
// driver accounts; admins and customers stay offline.
//
// Unlike the order lifecycle, driver availability is not a monotonic state
// machine: admin approve/reset and the driver's own start/finish commands set
// it unconditionally, regardless of the previous value or any order the
// driver may hold. The two entities are coupled loosely by convention.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOffline is the default at account creation.
	StatusOffline

	// StatusReady marks a driver as available for assignment.
	StatusReady

	// StatusOnRoad marks a driver as out driving.
	StatusOnRoad
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusOffline: "offline",
		StatusReady:   "ready",
		StatusOnRoad:  "on_road",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOffline: "offline",
		StatusReady:   "ready",
		StatusOnRoad:  "on_road",
	}
}

// StatusFromString parses a wire/persistence representation into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid account status", s),
	)
}

// Validate checks if the Status is one of the defined availability states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid account status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("offline", "ready", "on_road").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
