package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrDispatchDeliveryCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrDispatchDeliveryCommandIsNotConstructed = errors.New(
	"DispatchDeliveryCommand must be created via NewDispatchDeliveryCommand constructor",
)

// DispatchDeliveryCommand represents a request to assign a driver to a
// pending delivery request, transitioning it to dispatched.
//
// Example:
//
//	cmd, err := NewDispatchDeliveryCommand("d210", 403, "Ezreb rou7ek")
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch data: %w", err)
//	}
//
//	handler := NewDispatchDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type DispatchDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  string
	driverID    int64
	driverNotes string

	guard guard.ConstructorGuard
}

// NewDispatchDeliveryCommand creates a command to dispatch a delivery request.
// Validates that deliveryId is non-empty and driverId is positive. driverNotes
// is optional; an empty value leaves any existing notes untouched.
func NewDispatchDeliveryCommand(deliveryID string, driverID int64, driverNotes string) (DispatchDeliveryCommand, error) {
	command := DispatchDeliveryCommand{
		driverNotes: driverNotes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setDriverID(driverID),
	); err != nil {
		return DispatchDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchDeliveryCommandIsNotConstructed if validation fails.
func (c DispatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the business key of the request to dispatch.
func (c DispatchDeliveryCommand) DeliveryID() string {
	return c.deliveryID
}

// DriverID returns the driver to assign.
func (c DispatchDeliveryCommand) DriverID() int64 {
	return c.driverID
}

// DriverNotes returns the optional driver notes, "" when none were supplied.
func (c DispatchDeliveryCommand) DriverNotes() string {
	return c.driverNotes
}

func (c *DispatchDeliveryCommand) setDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("deliveryId")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *DispatchDeliveryCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not greater than 0", driverID))
	}

	c.driverID = driverID
	return nil
}
