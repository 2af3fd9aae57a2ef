package queries_test

import (
	"context"
	"testing"
	"time"

	"taxidispatch/internal/adapters/out/postgres/orderrepo"
	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverCurrentOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDriverCurrentOrderQueryHandler
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDriverCurrentOrderQueryHandler(db)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_IdleDriver_ReturnsNil() {
	query, err := queries.NewGetDriverCurrentOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_AssignedOrder_ReturnsOrder() {
	driverID := kernel.NewUUID()
	orderID := suite.insertOrderRow(driverID, order.Assigned, time.Now().UTC())

	query, err := queries.NewGetDriverCurrentOrderQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(orderID, result.ID)
	suite.Equal("John Doe", result.CustomerName)
	suite.Equal("Central Station", result.Destination)
	suite.Equal("Airport transfer", result.Reason)
	suite.Equal(order.Assigned, result.Status)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_InProgressOrder_ReturnsOrder() {
	driverID := kernel.NewUUID()
	orderID := suite.insertOrderRow(driverID, order.InProgress, time.Now().UTC())

	query, err := queries.NewGetDriverCurrentOrderQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(orderID, result.ID)
	suite.Equal(order.InProgress, result.Status)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_TerminalOrders_ReturnsNil() {
	driverID := kernel.NewUUID()
	suite.insertOrderRow(driverID, order.Completed, time.Now().UTC())
	suite.insertOrderRow(driverID, order.Cancelled, time.Now().UTC())

	query, err := queries.NewGetDriverCurrentOrderQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_PicksOldestActiveOrder() {
	driverID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)

	suite.insertOrderRow(driverID, order.Assigned, base.Add(10*time.Minute))
	oldest := suite.insertOrderRow(driverID, order.InProgress, base)

	query, err := queries.NewGetDriverCurrentOrderQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(oldest, result.ID)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_OtherDriversOrders_Ignored() {
	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()
	suite.insertOrderRow(otherDriverID, order.Assigned, time.Now().UTC())

	query, err := queries.NewGetDriverCurrentOrderQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result)
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDriverCurrentOrderQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDriverCurrentOrderQuery constructor")
}

func (suite *GetDriverCurrentOrderQueryHandlerTestSuite) insertOrderRow(
	driverID kernel.UUID, status order.Status, createdAt time.Time,
) kernel.UUID {
	id := kernel.NewUUID()
	rawDriverID := driverID.Bytes()
	dto := orderrepo.OrderDTO{
		ID:           id.Bytes(),
		CustomerName: "John Doe",
		Destination:  "Central Station",
		Reason:       "Airport transfer",
		OrderTime:    createdAt.Add(4 * time.Hour),
		Status:       int(status),
		DriverID:     &rawDriverID,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func TestGetDriverCurrentOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDriverCurrentOrderQueryHandlerTestSuite))
}
