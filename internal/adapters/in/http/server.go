// Package http exposes the dispatch use cases over a REST surface.
// It coordinates between HTTP handlers and application use cases; all
// authorization decisions stay in the application layer, the adapter only
// resolves the acting identity from the proxy headers.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"taxidispatch/internal/core/application/auth"
	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultOrdersLimit = 20
)

// Server implements the REST surface for handling HTTP requests.
type Server struct {
	// Command handlers
	submitOrderHandler   commands.SubmitOrderCommandHandler
	approveDriverHandler commands.ApproveDriverCommandHandler
	resetDriverHandler   commands.ResetDriverCommandHandler
	startTripHandler     commands.StartTripCommandHandler
	finishTripHandler    commands.FinishTripCommandHandler
	assignOrderHandler   commands.AssignOrderCommandHandler

	// Query handlers
	getDashboardStatsHandler     queries.GetDashboardStatsQueryHandler
	getOrdersHandler             queries.GetOrdersQueryHandler
	getOrderHandler              queries.GetOrderQueryHandler
	getAllDriversHandler         queries.GetAllDriversQueryHandler
	getDriverCurrentOrderHandler queries.GetDriverCurrentOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	approveDriverHandler commands.ApproveDriverCommandHandler,
	resetDriverHandler commands.ResetDriverCommandHandler,
	startTripHandler commands.StartTripCommandHandler,
	finishTripHandler commands.FinishTripCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getDriverCurrentOrderHandler queries.GetDriverCurrentOrderQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:           submitOrderHandler,
		approveDriverHandler:         approveDriverHandler,
		resetDriverHandler:           resetDriverHandler,
		startTripHandler:             startTripHandler,
		finishTripHandler:            finishTripHandler,
		assignOrderHandler:           assignOrderHandler,
		getDashboardStatsHandler:     getDashboardStatsHandler,
		getOrdersHandler:             getOrdersHandler,
		getOrderHandler:              getOrderHandler,
		getAllDriversHandler:         getAllDriversHandler,
		getDriverCurrentOrderHandler: getDriverCurrentOrderHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)

	api.GET("/dashboard", s.GetDashboard)
	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers/:id/approve", s.ApproveDriver)
	api.POST("/drivers/:id/reset", s.ResetDriver)

	api.POST("/trip/start", s.StartTrip)
	api.POST("/trip/finish", s.FinishTrip)
	api.GET("/trip/current-order", s.GetCurrentOrder)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - submits a new ride order.
// This is the only public command endpoint: no identity headers required.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		id, err := kernel.UUIDFromString(*req.CustomerID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid customer ID: " + err.Error(),
			})
		}
		customerID = &id
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewSubmitOrderCommand(
		orderID,
		req.CustomerName,
		req.Destination,
		req.Reason,
		req.OrderTime,
		customerID,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetDashboard handles GET /api/v1/dashboard - retrieves the admin counters.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	if err = auth.Authorize(actor, auth.CapViewDispatch); err != nil {
		return s.writeError(ctx, err)
	}

	stats, err := s.getDashboardStatsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDashboardStatsQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Dashboard{
		TotalOrders:   stats.TotalOrders,
		PendingOrders: stats.PendingOrders,
		ActiveDrivers: stats.ActiveDrivers,
		BusyDrivers:   stats.BusyDrivers,
	})
}

// GetOrders handles GET /api/v1/orders - retrieves a page of orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	if err = auth.Authorize(actor, auth.CapViewDispatch); err != nil {
		return s.writeError(ctx, err)
	}

	limit := defaultOrdersLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit: " + err.Error(),
			})
		}
	}

	offset := 0
	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid offset: " + err.Error(),
			})
		}
	}

	query, err := queries.NewGetOrdersQuery(limit, offset)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Destination:  o.Destination,
			Reason:       o.Reason,
			OrderTime:    o.OrderTime,
			Status:       o.Status.String(),
			CustomerID:   uuidPtrString(o.CustomerID),
			DriverID:     uuidPtrString(o.DriverID),
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	if err = auth.Authorize(actor, auth.CapViewDispatch); err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:           o.ID.String(),
		CustomerName: o.CustomerName,
		Destination:  o.Destination,
		Reason:       o.Reason,
		OrderTime:    o.OrderTime,
		Status:       o.Status.String(),
		CustomerID:   uuidPtrString(o.CustomerID),
		DriverID:     uuidPtrString(o.DriverID),
		CreatedAt:    o.CreatedAt,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id - the admin order update.
// Moves the order to the requested status and optionally attaches a driver;
// assigning with a driver also forces that driver to on_road.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	targetStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		id, idErr := kernel.UUIDFromString(*req.DriverID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid driver ID: " + idErr.Error(),
			})
		}
		driverID = &id
	}

	cmd, err := commands.NewAssignOrderCommand(actor, orderID, targetStatus, driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/v1/drivers - retrieves all drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	if err = auth.Authorize(actor, auth.CapViewDispatch); err != nil {
		return s.writeError(ctx, err)
	}

	drivers, err := s.getAllDriversHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAllDriversQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			ID:     d.ID.String(),
			Name:   d.Name,
			Status: d.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveDriver handles POST /api/v1/drivers/:id/approve - forces the driver to on_road.
func (s *Server) ApproveDriver(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewApproveDriverCommand(actor, driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.approveDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResetDriver handles POST /api/v1/drivers/:id/reset - returns the driver to ready.
func (s *Server) ResetDriver(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewResetDriverCommand(actor, driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.resetDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTrip handles POST /api/v1/trip/start - the driver starts their trip.
func (s *Server) StartTrip(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	cmd, err := commands.NewStartTripCommand(actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.startTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishTrip handles POST /api/v1/trip/finish - the driver finishes their trip.
func (s *Server) FinishTrip(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	cmd, err := commands.NewFinishTripCommand(actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.finishTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentOrder handles GET /api/v1/trip/current-order - the acting driver's
// active order. Responds 204 when the driver has no active order.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return s.writeIdentityError(ctx, err)
	}

	if actor.Role != account.RoleDriver {
		return s.writeError(ctx, errs.NewNotAuthorizedError(
			account.RoleDriver.String(), actor.Role.String(),
		))
	}

	query, err := queries.NewGetDriverCurrentOrderQuery(actor.ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.getDriverCurrentOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if o == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:           o.ID.String(),
		CustomerName: o.CustomerName,
		Destination:  o.Destination,
		Reason:       o.Reason,
		OrderTime:    o.OrderTime,
		Status:       o.Status.String(),
		CreatedAt:    o.CreatedAt,
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// uuidPtrString converts an optional kernel UUID into its string form.
func uuidPtrString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}

	s := id.String()
	return &s
}

// writeError maps application and domain errors onto HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStatusTransitionNotAllowed),
		errors.Is(err, account.ErrNotADriver):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// writeIdentityError reports missing or malformed identity headers.
func (s *Server) writeIdentityError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Invalid identity headers: " + err.Error(),
	})
}
