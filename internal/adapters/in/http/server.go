// Package http provides the inbound HTTP adapter for the fleet service.
// It translates HTTP requests into commands and queries, and application
// errors into HTTP status codes.
package http

import (
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"
)

// Server wires the REST routes to command and query handlers.
// It holds one handler per operation; routes are attached with
// RegisterRoutes.
type Server struct {
	// Command handlers
	createTruckHandler    commands.CreateTruckCommandHandler
	updateTruckHandler    commands.UpdateTruckCommandHandler
	deleteTruckHandler    commands.DeleteTruckCommandHandler
	createDriverHandler   commands.CreateDriverCommandHandler
	updateDriverHandler   commands.UpdateDriverCommandHandler
	deleteDriverHandler   commands.DeleteDriverCommandHandler
	createDeliveryHandler commands.CreateDeliveryCommandHandler

	// Query handlers
	getTruckByIDHandler          queries.GetTruckByIDQueryHandler
	getAllTrucksHandler          queries.GetAllTrucksQueryHandler
	getDriverByIDHandler         queries.GetDriverByIDQueryHandler
	getAllDriversHandler         queries.GetAllDriversQueryHandler
	getDeliveryByIDHandler       queries.GetDeliveryByIDQueryHandler
	getAllDeliveriesHandler      queries.GetAllDeliveriesQueryHandler
	getDeliveriesByPeriodHandler queries.GetDeliveriesByPeriodQueryHandler
	getTodayTotalHandler         queries.GetTodayTotalQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createTruckHandler commands.CreateTruckCommandHandler,
	updateTruckHandler commands.UpdateTruckCommandHandler,
	deleteTruckHandler commands.DeleteTruckCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverHandler commands.UpdateDriverCommandHandler,
	deleteDriverHandler commands.DeleteDriverCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	getTruckByIDHandler queries.GetTruckByIDQueryHandler,
	getAllTrucksHandler queries.GetAllTrucksQueryHandler,
	getDriverByIDHandler queries.GetDriverByIDQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getDeliveryByIDHandler queries.GetDeliveryByIDQueryHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
	getDeliveriesByPeriodHandler queries.GetDeliveriesByPeriodQueryHandler,
	getTodayTotalHandler queries.GetTodayTotalQueryHandler,
) *Server {
	return &Server{
		createTruckHandler:           createTruckHandler,
		updateTruckHandler:           updateTruckHandler,
		deleteTruckHandler:           deleteTruckHandler,
		createDriverHandler:          createDriverHandler,
		updateDriverHandler:          updateDriverHandler,
		deleteDriverHandler:          deleteDriverHandler,
		createDeliveryHandler:        createDeliveryHandler,
		getTruckByIDHandler:          getTruckByIDHandler,
		getAllTrucksHandler:          getAllTrucksHandler,
		getDriverByIDHandler:         getDriverByIDHandler,
		getAllDriversHandler:         getAllDriversHandler,
		getDeliveryByIDHandler:       getDeliveryByIDHandler,
		getAllDeliveriesHandler:      getAllDeliveriesHandler,
		getDeliveriesByPeriodHandler: getDeliveriesByPeriodHandler,
		getTodayTotalHandler:         getTodayTotalHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// Static segments are registered before parameterised ones so
// /deliveries/period and /deliveries/today/total never match :id.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/trucks", s.CreateTruck)
	api.GET("/trucks", s.GetTrucks)
	api.GET("/trucks/:id", s.GetTruck)
	api.PUT("/trucks/:id", s.UpdateTruck)
	api.DELETE("/trucks/:id", s.DeleteTruck)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/:id", s.GetDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/period", s.GetDeliveriesByPeriod)
	api.GET("/deliveries/today/total", s.GetTodayTotal)
	api.GET("/deliveries/:id", s.GetDelivery)

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoswagger.WrapHandler)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
