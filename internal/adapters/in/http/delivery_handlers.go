package http

import (
	"net/http"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDelivery handles POST /api/deliveries - admits a new delivery.
// A request that violates a capacity or restricted-region rule returns 400
// with the rule name in the body.
//
//	@Summary	Admit a delivery
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		delivery	body		DeliveryRequest	true	"Delivery to admit"
//	@Success	200			{object}	queries.DeliveryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/deliveries [post]
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req DeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cargoType, err := delivery.CargoTypeFromString(req.CargoType)
	if err != nil {
		return writeError(ctx, err)
	}

	value, err := kernel.NewMoneyFromString(req.Value)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("value", err))
	}

	truckID, err := requiredUUID(req.TruckID, "truckId")
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := requiredUUID(req.DriverID, "driverId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), req.Destination, req.ScheduledAt, cargoType, value, truckID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	admitted, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.DeliveryResponseFromAggregate(admitted))
}

// GetDeliveries handles GET /api/deliveries - lists deliveries one page at
// a time.
//
//	@Summary	List deliveries
//	@Tags		deliveries
//	@Produce	json
//	@Param		page		query		int		false	"Page index, starting at 0"
//	@Param		size		query		int		false	"Page size"
//	@Param		sort		query		string	false	"Sort field"
//	@Param		direction	query		string	false	"ASC or DESC"
//	@Success	200			{array}		queries.DeliveryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/deliveries [get]
func (s *Server) GetDeliveries(ctx echo.Context) error {
	page, err := pageRequest(ctx, "scheduled_at", queries.DeliverySortFields)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllDeliveriesQuery(page)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getAllDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

// GetDelivery handles GET /api/deliveries/:id - retrieves one delivery.
//
//	@Summary	Get a delivery
//	@Tags		deliveries
//	@Produce	json
//	@Param		id	path		string	true	"Delivery ID"
//	@Success	200	{object}	queries.DeliveryResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/deliveries/{id} [get]
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getDeliveryByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// GetDeliveriesByPeriod handles GET /api/deliveries/period - lists deliveries
// scheduled between startDate and endDate, both inclusive. The dates are
// yyyy-mm-dd; endDate covers its whole day.
//
//	@Summary	List deliveries in a period
//	@Tags		deliveries
//	@Produce	json
//	@Param		startDate	query		string	true	"First day, yyyy-mm-dd"
//	@Param		endDate		query		string	true	"Last day, yyyy-mm-dd"
//	@Param		page		query		int		false	"Page index, starting at 0"
//	@Param		size		query		int		false	"Page size"
//	@Param		sort		query		string	false	"Sort field"
//	@Param		direction	query		string	false	"ASC or DESC"
//	@Success	200			{array}		queries.DeliveryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/deliveries/period [get]
func (s *Server) GetDeliveriesByPeriod(ctx echo.Context) error {
	startDate, err := dateParam(ctx, "startDate")
	if err != nil {
		return writeError(ctx, err)
	}

	endDate, err := dateParam(ctx, "endDate")
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := pageRequest(ctx, "scheduled_at", queries.DeliverySortFields)
	if err != nil {
		return writeError(ctx, err)
	}

	from, _ := kernel.DayWindow(startDate)
	_, to := kernel.DayWindow(endDate)

	query, err := queries.NewGetDeliveriesByPeriodQuery(from, to, page)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getDeliveriesByPeriodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

// GetTodayTotal handles GET /api/deliveries/today/total - returns the sum of
// the values of today's deliveries as a two-decimal string, "0.00" when none
// are scheduled.
//
//	@Summary	Total value of today's deliveries
//	@Tags		deliveries
//	@Produce	json
//	@Success	200	{object}	queries.TodayTotalResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/deliveries/today/total [get]
func (s *Server) GetTodayTotal(ctx echo.Context) error {
	query, err := queries.NewGetTodayTotalQuery(time.Now())
	if err != nil {
		return writeError(ctx, err)
	}

	total, err := s.getTodayTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, total)
}
