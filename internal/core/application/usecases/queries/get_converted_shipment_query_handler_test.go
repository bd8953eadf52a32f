package queries_test

import (
	"context"
	"testing"
	"time"

	"freightquote/internal/adapters/out/postgres/shipmentrepo"
	"freightquote/internal/core/application/usecases/queries"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/domain/model/shipment"
	"freightquote/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetConvertedShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetConvertedShipmentQueryHandler
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetConvertedShipmentQueryHandler(db)
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments").Error
	suite.Require().NoError(err)
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) TestHandle_ConvertedRequest_ReturnsShipment() {
	quoteRequestID := kernel.NewUUID()
	saved := suite.saveShipment(quoteRequestID, false)

	query, err := queries.NewGetConvertedShipmentQuery(quoteRequestID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(saved.ID(), result.ShipmentID)
	suite.Equal(quoteRequestID, result.QuoteRequestID)
	suite.Equal("DHL", result.Carrier)
	suite.Equal("air", result.TransportMode)
	suite.True(result.Total.Equal(decimal.NewFromFloat(99.90)))
	suite.False(result.IsPaid)
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) TestHandle_PaidShipment_ReportsPaymentState() {
	quoteRequestID := kernel.NewUUID()
	suite.saveShipment(quoteRequestID, true)

	query, err := queries.NewGetConvertedShipmentQuery(quoteRequestID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.IsPaid)
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) TestHandle_UnconvertedRequest_ReturnsNotFoundError() {
	query, err := queries.NewGetConvertedShipmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetConvertedShipmentQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetConvertedShipmentQuery constructor")
}

func (suite *GetConvertedShipmentQueryHandlerTestSuite) saveShipment(
	quoteRequestID kernel.UUID, isPaid bool,
) *shipment.Shipment {
	selected, err := quote.NewQuote(quote.QuoteParams{
		Carrier:        "DHL",
		TransportMode:  "air",
		Total:          decimal.NewFromFloat(99.90),
		CarrierRateRef: "rate_test",
	})
	suite.Require().NoError(err)

	saved, err := shipment.NewShipment(kernel.NewUUID(), quoteRequestID, selected)
	suite.Require().NoError(err)

	if isPaid {
		suite.Require().NoError(saved.MarkPaid())
	}

	repo := shipmentrepo.NewGormShipmentRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), saved))

	return saved
}

func TestGetConvertedShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetConvertedShipmentQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests don't assert tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
