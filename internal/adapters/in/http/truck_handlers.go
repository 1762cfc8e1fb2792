package http

import (
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateTruck handles POST /api/trucks - registers a new truck.
//
//	@Summary	Register a truck
//	@Tags		trucks
//	@Accept		json
//	@Produce	json
//	@Param		truck	body		TruckRequest	true	"Truck to register"
//	@Success	201		{object}	queries.TruckResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/trucks [post]
func (s *Server) CreateTruck(ctx echo.Context) error {
	var req TruckRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID, err := optionalUUID(req.DriverID, "driverId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateTruckCommand(
		kernel.NewUUID(), req.Plate, req.Model, req.ManufacturingYear, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createTruckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.TruckResponseFromAggregate(created))
}

// GetTrucks handles GET /api/trucks - lists trucks one page at a time.
//
//	@Summary	List trucks
//	@Tags		trucks
//	@Produce	json
//	@Param		page		query		int		false	"Page index, starting at 0"
//	@Param		size		query		int		false	"Page size"
//	@Param		sort		query		string	false	"Sort field"
//	@Param		direction	query		string	false	"ASC or DESC"
//	@Success	200			{array}		queries.TruckResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/trucks [get]
func (s *Server) GetTrucks(ctx echo.Context) error {
	page, err := pageRequest(ctx, "plate", queries.TruckSortFields)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllTrucksQuery(page)
	if err != nil {
		return writeError(ctx, err)
	}

	trucks, err := s.getAllTrucksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trucks)
}

// GetTruck handles GET /api/trucks/:id - retrieves one truck.
//
//	@Summary	Get a truck
//	@Tags		trucks
//	@Produce	json
//	@Param		id	path		string	true	"Truck ID"
//	@Success	200	{object}	queries.TruckResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/trucks/{id} [get]
func (s *Server) GetTruck(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTruckByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	truck, err := s.getTruckByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, truck)
}

// UpdateTruck handles PUT /api/trucks/:id - replaces a truck's fields.
//
//	@Summary	Update a truck
//	@Tags		trucks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Truck ID"
//	@Param		truck	body		TruckRequest	true	"New truck fields"
//	@Success	200		{object}	queries.TruckResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/trucks/{id} [put]
func (s *Server) UpdateTruck(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req TruckRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID, err := optionalUUID(req.DriverID, "driverId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateTruckCommand(
		id, req.Plate, req.Model, req.ManufacturingYear, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateTruckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.TruckResponseFromAggregate(updated))
}

// DeleteTruck handles DELETE /api/trucks/:id - removes a truck and its
// deliveries.
//
//	@Summary	Delete a truck
//	@Tags		trucks
//	@Param		id	path	string	true	"Truck ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/trucks/{id} [delete]
func (s *Server) DeleteTruck(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteTruckCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
