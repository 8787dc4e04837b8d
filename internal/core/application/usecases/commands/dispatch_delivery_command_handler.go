package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/deliveryrequest"
)

var (
	// ErrDeliveryRequestNotPending is returned when dispatching a request
	// that is no longer in pending status. Repeating a dispatch after the
	// first success yields this conflict, never a silent no-op.
	ErrDeliveryRequestNotPending = errors.New("delivery request is not pending")

	// ErrDispatchUpdateFailed is returned when the conditional update matched
	// zero records after the status check passed: the request was dispatched
	// concurrently between the read and the write.
	ErrDispatchUpdateFailed = errors.New("dispatch update failed")
)

// DispatchDeliveryResult carries the outcome of a successful dispatch.
type DispatchDeliveryResult struct {
	DeliveryID string
	DriverID   int64
	Status     deliveryrequest.Status
	UpdatedAt  time.Time
}

// DispatchDeliveryCommandHandler orchestrates driver assignment.
//
// The handler reads the request first, only to report a missing record and a
// non-pending status as distinct failures. The actual transition relies on
// the repository's conditional update, which folds the pending condition into
// its match filter: the matched count, not the earlier read, is the atomicity
// guarantee against concurrent dispatches.
//
// Example:
//
//	handler := NewDispatchDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewDispatchDeliveryCommand("d210", 403, "")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown deliveryId
//	case errors.Is(err, ErrDeliveryRequestNotPending):
//	    // already dispatched
//	case err != nil:
//	    // store failure
//	default:
//	    fmt.Printf("driver %d assigned at %s", result.DriverID, result.UpdatedAt)
//	}
type DispatchDeliveryCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewDispatchDeliveryCommandHandler creates a handler for dispatch operations.
// Requires a UoWFactory for transactional persistence.
func NewDispatchDeliveryCommandHandler(uowFactory UoWFactory) DispatchDeliveryCommandHandler {
	return DispatchDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the dispatch command. On success it performs exactly one
// write: the conditional update assigning the driver. On any failure no
// state is changed.
func (h *DispatchDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchDeliveryCommand,
) (DispatchDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRequestRepository()

	request, err := repo.GetByDeliveryID(ctx, cmd.DeliveryID())
	if err != nil {
		return DispatchDeliveryResult{}, err
	}

	if request.Status() != deliveryrequest.StatusPending {
		return DispatchDeliveryResult{}, ErrDeliveryRequestNotPending
	}

	now := h.now()
	matched, err := repo.UpdateDispatched(ctx, cmd.DeliveryID(), cmd.DriverID(), cmd.DriverNotes(), now)
	if err != nil {
		return DispatchDeliveryResult{}, err
	}
	if matched != 1 {
		return DispatchDeliveryResult{}, ErrDispatchUpdateFailed
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchDeliveryResult{}, err
	}

	return DispatchDeliveryResult{
		DeliveryID: cmd.DeliveryID(),
		DriverID:   cmd.DriverID(),
		Status:     deliveryrequest.StatusDispatched,
		UpdatedAt:  now,
	}, nil
}
