package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrCreateDeliveryRequestCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrCreateDeliveryRequestCommandIsNotConstructed = errors.New(
	"CreateDeliveryRequestCommand must be created via NewCreateDeliveryRequestCommand constructor",
)

// CreateDeliveryRequestCommand represents a request to register a new delivery
// request. It carries the caller-supplied business key, the order reference,
// the pickup/dropoff locations, the waypoint route, and optional driver notes.
//
// Example:
//
//	cmd, err := NewCreateDeliveryRequestCommand("d210", "o203", pickup, dropoff, route, "")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request data: %w", err)
//	}
//
//	handler := NewCreateDeliveryRequestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery request: %w", err)
//	}
type CreateDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	deliveryID  string
	orderID     string
	pickup      kernel.Location
	dropoff     kernel.Location
	route       []kernel.Location
	driverNotes string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryRequestCommand creates a command to register a new delivery
// request. Validates that deliveryId and orderId are non-empty, both locations
// are properly constructed, and the route holds at least one valid waypoint.
// driverNotes is optional. Returns an error if any validation fails.
func NewCreateDeliveryRequestCommand(
	deliveryID string,
	orderID string,
	pickup kernel.Location,
	dropoff kernel.Location,
	route []kernel.Location,
	driverNotes string,
) (CreateDeliveryRequestCommand, error) {
	command := CreateDeliveryRequestCommand{
		driverNotes: driverNotes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setOrderID(orderID),
		command.setPickup(pickup),
		command.setDropoff(dropoff),
		command.setRoute(route),
	); err != nil {
		return CreateDeliveryRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryRequestCommandIsNotConstructed if validation fails.
func (c CreateDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryRequestCommandIsNotConstructed)
}

// DeliveryID returns the caller-supplied unique business key.
func (c CreateDeliveryRequestCommand) DeliveryID() string {
	return c.deliveryID
}

// OrderID returns the order reference.
func (c CreateDeliveryRequestCommand) OrderID() string {
	return c.orderID
}

// Pickup returns the pickup location.
func (c CreateDeliveryRequestCommand) Pickup() kernel.Location {
	return c.pickup
}

// Dropoff returns the dropoff location.
func (c CreateDeliveryRequestCommand) Dropoff() kernel.Location {
	return c.dropoff
}

// Route returns the ordered waypoint sequence.
func (c CreateDeliveryRequestCommand) Route() []kernel.Location {
	return c.route
}

// DriverNotes returns the optional driver notes, "" when none were supplied.
func (c CreateDeliveryRequestCommand) DriverNotes() string {
	return c.driverNotes
}

func (c *CreateDeliveryRequestCommand) setDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("deliveryId")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryRequestCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryRequestCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateDeliveryRequestCommand) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateDeliveryRequestCommand) setRoute(route []kernel.Location) error {
	if len(route) == 0 {
		return errs.NewValueIsRequiredError("route")
	}
	for _, waypoint := range route {
		if err := waypoint.Validate(); err != nil {
			return err
		}
	}

	c.route = route
	return nil
}
