package http

import (
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateDriver handles POST /api/drivers - registers a new driver.
//
//	@Summary	Register a driver
//	@Tags		drivers
//	@Accept		json
//	@Produce	json
//	@Param		driver	body		DriverRequest	true	"Driver to register"
//	@Success	201		{object}	queries.DriverResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/drivers [post]
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), req.Name, req.License)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.DriverResponseFromAggregate(created))
}

// GetDrivers handles GET /api/drivers - lists drivers one page at a time.
//
//	@Summary	List drivers
//	@Tags		drivers
//	@Produce	json
//	@Param		page		query		int		false	"Page index, starting at 0"
//	@Param		size		query		int		false	"Page size"
//	@Param		sort		query		string	false	"Sort field"
//	@Param		direction	query		string	false	"ASC or DESC"
//	@Success	200			{array}		queries.DriverResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/drivers [get]
func (s *Server) GetDrivers(ctx echo.Context) error {
	page, err := pageRequest(ctx, "name", queries.DriverSortFields)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllDriversQuery(page)
	if err != nil {
		return writeError(ctx, err)
	}

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, drivers)
}

// GetDriver handles GET /api/drivers/:id - retrieves one driver.
//
//	@Summary	Get a driver
//	@Tags		drivers
//	@Produce	json
//	@Param		id	path		string	true	"Driver ID"
//	@Success	200	{object}	queries.DriverResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/drivers/{id} [get]
func (s *Server) GetDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	driver, err := s.getDriverByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driver)
}

// UpdateDriver handles PUT /api/drivers/:id - replaces a driver's fields.
//
//	@Summary	Update a driver
//	@Tags		drivers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Driver ID"
//	@Param		driver	body		DriverRequest	true	"New driver fields"
//	@Success	200		{object}	queries.DriverResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/drivers/{id} [put]
func (s *Server) UpdateDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateDriverCommand(id, req.Name, req.License)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.DriverResponseFromAggregate(updated))
}

// DeleteDriver handles DELETE /api/drivers/:id - removes a driver, detaching
// any trucks assigned to them and removing their deliveries.
//
//	@Summary	Delete a driver
//	@Tags		drivers
//	@Param		id	path	string	true	"Driver ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/drivers/{id} [delete]
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
