package cmd

import (
	"log/slog"
	"os"

	httpin "freightquote/internal/adapters/in/http"
	"freightquote/internal/adapters/out/easyship"
	"freightquote/internal/adapters/out/postgres"
	"freightquote/internal/adapters/out/session"
	"freightquote/internal/core/application/usecases/commands"
	"freightquote/internal/core/application/usecases/queries"
	"freightquote/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, ports and use case handlers together.
// All handlers share the same EasyShip client, session store and database
// connection.
type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     *postgres.GormUnitOfWorkFactory
	easyshipClient *easyship.Client
	sessionStore   *session.InMemoryStore
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	easyshipClient, err := easyship.NewClient(config.EasyShipBaseURL, config.EasyShipToken)
	if err != nil {
		logger.Error("Failed to create EasyShip client", "error", err)
		os.Exit(1)
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		easyshipClient: easyshipClient,
		sessionStore:   session.NewInMemoryStore(),
		logger:         logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) SessionStore() *session.InMemoryStore {
	return c.sessionStore
}

func (c *CompositionRoot) EasyShipClient() *easyship.Client {
	return c.easyshipClient
}

func (c *CompositionRoot) CreateVerifyAddressCommandHandler() commands.VerifyAddressCommandHandler {
	return commands.NewVerifyAddressCommandHandler(c.easyshipClient, c.logger)
}

func (c *CompositionRoot) CreateCalculateQuotesCommandHandler() commands.CalculateQuotesCommandHandler {
	return commands.NewCalculateQuotesCommandHandler(
		c.easyshipClient,
		c.easyshipClient,
		services.NewRequirementResolver(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateSelectQuoteCommandHandler() commands.SelectQuoteCommandHandler {
	return commands.NewSelectQuoteCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateProceedWithQuoteCommandHandler() commands.ProceedWithQuoteCommandHandler {
	conversionPort := postgres.NewGormConversionPort(c.uowFactory)
	return commands.NewProceedWithQuoteCommandHandler(c.sessionStore, conversionPort, c.logger)
}

func (c *CompositionRoot) CreateListCountriesQueryHandler() queries.ListCountriesQueryHandler {
	return queries.NewListCountriesQueryHandler(c.easyshipClient)
}

func (c *CompositionRoot) CreateGetConvertedShipmentQueryHandler() queries.GetConvertedShipmentQueryHandler {
	return queries.NewGetConvertedShipmentQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateVerifyAddressCommandHandler(),
		c.CreateCalculateQuotesCommandHandler(),
		c.CreateSelectQuoteCommandHandler(),
		c.CreateProceedWithQuoteCommandHandler(),
		c.CreateListCountriesQueryHandler(),
		c.CreateGetConvertedShipmentQueryHandler(),
		c.easyshipClient,
	)
}
