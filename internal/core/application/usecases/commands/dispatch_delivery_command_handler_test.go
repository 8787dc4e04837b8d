package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dispatchCommand(t *testing.T) commands.DispatchDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewDispatchDeliveryCommand("d210", 403, "Ezreb rou7ek")
	require.NoError(t, err)
	return cmd
}

func TestDispatchDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := dispatchCommand(t)

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRequestRepository").Return(repo).Once(),
		repo.On("GetByDeliveryID", ctx, "d210").Return(pendingRequest(t, "d210"), nil).Once(),
		repo.On("UpdateDispatched", ctx, "d210", int64(403), "Ezreb rou7ek", mock.AnythingOfType("time.Time")).
			Return(int64(1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "d210", result.DeliveryID)
	assert.Equal(t, int64(403), result.DriverID)
	assert.Equal(t, deliveryrequest.StatusDispatched, result.Status)
	assert.False(t, result.UpdatedAt.IsZero())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DispatchDeliveryCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	h := commands.NewDispatchDeliveryCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestDispatchDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := dispatchCommand(t)

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRequestRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("GetByDeliveryID", ctx, "d210").
		Return(nil, errs.NewObjectNotFoundError("deliveryId", "d210"))

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateDispatched")
	uow.AssertNotCalled(t, "Commit")
}

func TestDispatchDeliveryCommandHandler_Handle_AlreadyDispatched(t *testing.T) {
	ctx := t.Context()
	cmd := dispatchCommand(t)

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRequestRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("GetByDeliveryID", ctx, "d210").Return(dispatchedRequest(t, "d210", 77), nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDeliveryRequestNotPending)
	repo.AssertNotCalled(t, "UpdateDispatched")
	uow.AssertNotCalled(t, "Commit")
}

func TestDispatchDeliveryCommandHandler_Handle_ConcurrentDispatchMatchesNothing(t *testing.T) {
	ctx := t.Context()
	cmd := dispatchCommand(t)

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRequestRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	// The read saw pending but another dispatch committed first, so the
	// conditional update filters the record out.
	repo.On("GetByDeliveryID", ctx, "d210").Return(pendingRequest(t, "d210"), nil)
	repo.On("UpdateDispatched", ctx, "d210", int64(403), "Ezreb rou7ek", mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDispatchUpdateFailed)
	uow.AssertNotCalled(t, "Commit")
}

func TestDispatchDeliveryCommandHandler_Handle_UpdateStorageError(t *testing.T) {
	ctx := t.Context()
	cmd := dispatchCommand(t)
	storeErr := errors.New("connection reset")

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRequestRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("GetByDeliveryID", ctx, "d210").Return(pendingRequest(t, "d210"), nil)
	repo.On("UpdateDispatched", ctx, "d210", int64(403), "Ezreb rou7ek", mock.AnythingOfType("time.Time")).
		Return(int64(0), storeErr)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, storeErr)
	uow.AssertNotCalled(t, "Commit")
}

func TestDispatchDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := dispatchCommand(t)
	commitErr := errors.New("commit error")

	repo := new(MockDeliveryRequestRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRequestRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(commitErr)
	repo.On("GetByDeliveryID", ctx, "d210").Return(pendingRequest(t, "d210"), nil)
	repo.On("UpdateDispatched", ctx, "d210", int64(403), "Ezreb rou7ek", mock.AnythingOfType("time.Time")).
		Return(int64(1), nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDispatchDeliveryCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commitErr)
}
