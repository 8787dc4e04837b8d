package deliveryrequest

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery request.
// It implements a state machine with defined transitions to ensure
// requests follow the correct business workflow.
//
// In-scope transitions:
//
//	pending ──> dispatched
//
// The remaining values (picked_up, in_transit, delivered, failed_delivery,
// cancelled) are part of the closed enumeration for forward compatibility with
// later lifecycle stages, but no operation in this service ever writes them.
//
// Status is a value object that validates state transitions and serializes to
// its string value in persistence and transport.
type Status string

const (
	// StatusPending is the initial status when a delivery request is created.
	// Requests in this status are waiting for a driver to be assigned.
	StatusPending Status = "pending"

	// StatusDispatched indicates a driver has been assigned to the request.
	// Entered only via a successful dispatch of a pending request; no
	// operation in this service transitions out of it.
	StatusDispatched Status = "dispatched"

	// StatusPickedUp is reserved for a future lifecycle stage.
	StatusPickedUp Status = "picked_up"

	// StatusInTransit is reserved for a future lifecycle stage.
	StatusInTransit Status = "in_transit"

	// StatusDelivered is reserved for a future lifecycle stage.
	StatusDelivered Status = "delivered"

	// StatusFailedDelivery is reserved for a future lifecycle stage.
	StatusFailedDelivery Status = "failed_delivery"

	// StatusCancelled is reserved for a future lifecycle stage.
	StatusCancelled Status = "cancelled"
)

// getValidStatuses returns the closed set of legal status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:        {},
		StatusDispatched:     {},
		StatusPickedUp:       {},
		StatusInTransit:      {},
		StatusDelivered:      {},
		StatusFailedDelivery: {},
		StatusCancelled:      {},
	}
}

// Validate checks if the Status value belongs to the closed enumeration.
// Used to ensure Status values from external sources (database, API) are
// legal before use.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// ValidateDispatch checks if the status allows driver assignment without
// performing the transition. Only pending requests can be dispatched.
func (s Status) ValidateDispatch() error {
	if s != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between request status and
// driver assignment.
//
// Business rules:
//   - pending requests must not have a driver assigned
//   - dispatched requests must have a driver assigned
//
// The reserved statuses are never produced by this service and are not
// constrained here.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && s == StatusDispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Dispatch transitions the status to dispatched.
//
// Valid transitions:
//   - pending -> dispatched
//
// Any other current status is rejected: dispatching is a once-only
// transition and repeating it on a dispatched request is a conflict,
// not a no-op.
//
// Returns:
//   - (StatusDispatched, nil) on valid transition
//   - ("", error) if the request is not pending
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateDispatch(); err != nil {
		return "", err
	}

	return StatusDispatched, nil
}
