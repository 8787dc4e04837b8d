package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/pkg/errs"
)

// ErrDeliveryRequestAlreadyExists is returned when a delivery request with the
// same deliveryId business key already exists.
var ErrDeliveryRequestAlreadyExists = errors.New("delivery request already exists")

// CreateDeliveryRequestCommandHandler handles the business logic for delivery
// request creation. New requests start in pending status with no driver
// assigned and createdAt == updatedAt.
//
// The uniqueness of deliveryId is checked with a lookup before the insert.
// The lookup-then-insert sequence is not atomic; the unique index on
// delivery_id is the store-level backstop, and a duplicate key failure from a
// racing insert surfaces as the same conflict.
//
// Example:
//
//	handler := NewCreateDeliveryRequestCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryRequestCommand("d210", "o203", pickup, dropoff, route, "")
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDeliveryRequestAlreadyExists) {
//	    // deliveryId is taken
//	}
type CreateDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewCreateDeliveryRequestCommandHandler creates a handler for delivery
// request creation. Requires a UoWFactory for transactional persistence.
func NewCreateDeliveryRequestCommandHandler(uowFactory UoWFactory) CreateDeliveryRequestCommandHandler {
	return CreateDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the creation command. Rejects the command when a request
// with the same deliveryId already exists, otherwise persists a new pending
// request. Exactly one write is performed on success, none on failure.
func (h *CreateDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRequestRepository()

	_, err := repo.GetByDeliveryID(ctx, cmd.DeliveryID())
	if err == nil {
		return ErrDeliveryRequestAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	request, err := deliveryrequest.NewDeliveryRequest(
		cmd.DeliveryID(),
		cmd.OrderID(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.Route(),
		cmd.DriverNotes(),
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, request); err != nil {
		// Two concurrent creates can both pass the existence check; the
		// unique index rejects the loser and we report it as the same
		// conflict the check would have caught.
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ErrDeliveryRequestAlreadyExists
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
