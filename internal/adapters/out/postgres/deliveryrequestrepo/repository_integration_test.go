package deliveryrequestrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrequestrepo"
	"dispatch/internal/core/domain/model/deliveryrequest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DeliveryRequestRepositoryIntegrationTestSuite provides integration tests
// for DeliveryRequestRepository using PostgreSQL containers to verify
// persistence behavior.
type DeliveryRequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrequestrepo.GormDeliveryRequestRepository
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrequestrepo.DeliveryRequestDTO{}))
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_requests").Error)
	suite.repository = deliveryrequestrepo.NewGormDeliveryRequestRepository(suite.db)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) newRequest(deliveryID string) *deliveryrequest.DeliveryRequest {
	pickup, err := kernel.NewLocation(36.8425, 10.2430, "Lac 1")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewLocation(36.8533, 10.2715, "Lac 2")
	suite.Require().NoError(err)

	route := make([]kernel.Location, 0, 3)
	for _, point := range [][2]float64{{36.8425, 10.2430}, {36.8460, 10.2540}, {36.8533, 10.2715}} {
		waypoint, locErr := kernel.NewLocation(point[0], point[1], "")
		suite.Require().NoError(locErr)
		route = append(route, waypoint)
	}

	request, err := deliveryrequest.NewDeliveryRequest(
		deliveryID, "o203", pickup, dropoff, route, "fragile",
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return request
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestAdd_AssignsRecordIdentifier() {
	ctx := context.Background()
	request := suite.newRequest("d210")

	err := suite.repository.Add(ctx, request)
	suite.Require().NoError(err)

	stored, err := suite.repository.GetByDeliveryID(ctx, "d210")
	suite.Require().NoError(err)
	suite.Require().NoError(stored.ID().Validate())
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestAdd_ThenGetByDeliveryID_RoundTrip() {
	ctx := context.Background()
	request := suite.newRequest("d210")

	suite.Require().NoError(suite.repository.Add(ctx, request))

	stored, err := suite.repository.GetByDeliveryID(ctx, "d210")
	suite.Require().NoError(err)
	suite.Equal("d210", stored.DeliveryID())
	suite.Equal("o203", stored.OrderID())
	suite.Nil(stored.DriverID())
	suite.Equal(deliveryrequest.StatusPending, stored.Status())
	suite.Equal("fragile", stored.DriverNotes())
	pickupEqual, err := stored.Pickup().IsEqual(request.Pickup())
	suite.Require().NoError(err)
	suite.True(pickupEqual)
	dropoffEqual, err := stored.Dropoff().IsEqual(request.Dropoff())
	suite.Require().NoError(err)
	suite.True(dropoffEqual)
	suite.Require().Len(stored.Route(), 3)
	for i, waypoint := range request.Route() {
		waypointEqual, locErr := stored.Route()[i].IsEqual(waypoint)
		suite.Require().NoError(locErr)
		suite.True(waypointEqual)
	}
	suite.WithinDuration(request.CreatedAt(), stored.CreatedAt(), time.Millisecond)
	suite.WithinDuration(request.UpdatedAt(), stored.UpdatedAt(), time.Millisecond)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestAdd_DuplicateDeliveryID_ReturnsAlreadyExists() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newRequest("d210")))

	err := suite.repository.Add(ctx, suite.newRequest("d210"))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestGetByDeliveryID_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetByDeliveryID(context.Background(), "d999")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestUpdateDispatched_PendingRequest_AssignsDriver() {
	ctx := context.Background()
	request := suite.newRequest("d210")
	suite.Require().NoError(suite.repository.Add(ctx, request))

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	matched, err := suite.repository.UpdateDispatched(ctx, "d210", 403, "Ezreb rou7ek", now)

	suite.Require().NoError(err)
	suite.Equal(int64(1), matched)

	stored, err := suite.repository.GetByDeliveryID(ctx, "d210")
	suite.Require().NoError(err)
	suite.Equal(deliveryrequest.StatusDispatched, stored.Status())
	suite.Require().NotNil(stored.DriverID())
	suite.Equal(int64(403), *stored.DriverID())
	suite.Equal("Ezreb rou7ek", stored.DriverNotes())
	suite.WithinDuration(now, stored.UpdatedAt(), time.Millisecond)
	suite.WithinDuration(request.CreatedAt(), stored.CreatedAt(), time.Millisecond)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestUpdateDispatched_EmptyNotes_KeepStoredNotes() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRequest("d210")))

	matched, err := suite.repository.UpdateDispatched(
		ctx, "d210", 403, "", time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(int64(1), matched)

	stored, err := suite.repository.GetByDeliveryID(ctx, "d210")
	suite.Require().NoError(err)
	suite.Equal("fragile", stored.DriverNotes())
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestUpdateDispatched_AlreadyDispatched_MatchesNothing() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRequest("d210")))

	first := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	matched, err := suite.repository.UpdateDispatched(ctx, "d210", 403, "Ezreb rou7ek", first)
	suite.Require().NoError(err)
	suite.Equal(int64(1), matched)

	matched, err = suite.repository.UpdateDispatched(ctx, "d210", 404, "other driver", first.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Equal(int64(0), matched)

	// First assignment stays untouched.
	stored, err := suite.repository.GetByDeliveryID(ctx, "d210")
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.DriverID())
	suite.Equal(int64(403), *stored.DriverID())
	suite.Equal("Ezreb rou7ek", stored.DriverNotes())
	suite.WithinDuration(first, stored.UpdatedAt(), time.Millisecond)
}

func (suite *DeliveryRequestRepositoryIntegrationTestSuite) TestUpdateDispatched_UnknownDeliveryID_MatchesNothing() {
	matched, err := suite.repository.UpdateDispatched(
		context.Background(), "d999", 403, "", time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(int64(0), matched)
}

func TestDeliveryRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRequestRepositoryIntegrationTestSuite))
}
