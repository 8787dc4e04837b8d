package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRequestRepository struct{ mock.Mock }

func (m *MockDeliveryRequestRepository) Add(ctx context.Context, r *deliveryrequest.DeliveryRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) GetByDeliveryID(
	ctx context.Context,
	deliveryID string,
) (*deliveryrequest.DeliveryRequest, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryrequest.DeliveryRequest), args.Error(1)
}

func (m *MockDeliveryRequestRepository) UpdateDispatched(
	ctx context.Context,
	deliveryID string,
	driverID int64,
	notes string,
	now time.Time,
) (int64, error) {
	args := m.Called(ctx, deliveryID, driverID, notes, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testLocation(t *testing.T, lat, lng float64, address string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, address)
	require.NoError(t, err)
	return loc
}

func testRoute(t *testing.T) []kernel.Location {
	t.Helper()
	return []kernel.Location{
		testLocation(t, 36.8425, 10.2430, ""),
		testLocation(t, 36.8460, 10.2540, ""),
		testLocation(t, 36.8533, 10.2715, ""),
	}
}

func pendingRequest(t *testing.T, deliveryID string) *deliveryrequest.DeliveryRequest {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	request, err := deliveryrequest.RestoreDeliveryRequest(
		kernel.NewUUID(), deliveryID, "o203",
		testLocation(t, 36.8425, 10.2430, "Lac 1"),
		testLocation(t, 36.8533, 10.2715, "Lac 2"),
		testRoute(t),
		nil, deliveryrequest.StatusPending, "", now, now)
	require.NoError(t, err)
	return request
}

func dispatchedRequest(t *testing.T, deliveryID string, driverID int64) *deliveryrequest.DeliveryRequest {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	request, err := deliveryrequest.RestoreDeliveryRequest(
		kernel.NewUUID(), deliveryID, "o203",
		testLocation(t, 36.8425, 10.2430, "Lac 1"),
		testLocation(t, 36.8533, 10.2715, "Lac 2"),
		testRoute(t),
		&driverID, deliveryrequest.StatusDispatched, "", now, now.Add(time.Minute))
	require.NoError(t, err)
	return request
}
