package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the dispatch use cases as a JSON API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerDriverHandler   commands.RegisterDriverCommandHandler
	acceptDeliveryHandler   commands.AcceptDeliveryCommandHandler
	resignDeliveryHandler   commands.ResignDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	updateStockHandler      commands.UpdateStockCommandHandler
	createRequestHandler    commands.CreateRequestCommandHandler

	// Query handlers
	getUnassignedRequestsHandler queries.GetUnassignedRequestsQueryHandler
	getActiveDeliveriesHandler   queries.GetActiveDeliveriesQueryHandler
	getMyDeliveriesHandler       queries.GetMyDeliveriesQueryHandler
	getCurrentStockHandler       queries.GetCurrentStockQueryHandler
	getOrderTrackingHandler      queries.GetOrderTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerDriverHandler commands.RegisterDriverCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	resignDeliveryHandler commands.ResignDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	updateStockHandler commands.UpdateStockCommandHandler,
	createRequestHandler commands.CreateRequestCommandHandler,
	getUnassignedRequestsHandler queries.GetUnassignedRequestsQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getMyDeliveriesHandler queries.GetMyDeliveriesQueryHandler,
	getCurrentStockHandler queries.GetCurrentStockQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
) *Server {
	return &Server{
		registerDriverHandler:        registerDriverHandler,
		acceptDeliveryHandler:        acceptDeliveryHandler,
		resignDeliveryHandler:        resignDeliveryHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		updateStockHandler:           updateStockHandler,
		createRequestHandler:         createRequestHandler,
		getUnassignedRequestsHandler: getUnassignedRequestsHandler,
		getActiveDeliveriesHandler:   getActiveDeliveriesHandler,
		getMyDeliveriesHandler:       getMyDeliveriesHandler,
		getCurrentStockHandler:       getCurrentStockHandler,
		getOrderTrackingHandler:      getOrderTrackingHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/drivers", s.RegisterDriver)
	api.POST("/drivers/:driverID/stock", s.UpdateStock)
	api.GET("/drivers/:driverID/stock", s.GetCurrentStock)
	api.GET("/drivers/:driverID/deliveries", s.GetMyDeliveries)

	api.POST("/requests", s.CreateRequest)
	api.GET("/requests/unassigned", s.GetUnassignedRequests)
	api.POST("/requests/:requestID/accept", s.AcceptDelivery)
	api.POST("/requests/:requestID/resign", s.ResignDelivery)
	api.POST("/requests/:requestID/complete", s.CompleteDelivery)

	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.GET("/tracking", s.GetOrderTracking)
}

// CommandResult is the uniform command response: business failures come back
// as success=false with a machine-readable reason instead of an error status.
type CommandResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// Error is the response body for malformed or failing requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body struct {
		DriverID     string `json:"driver_id"`
		Name         string `json:"name"`
		PasswordHash string `json:"password_hash"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID, err := kernel.NewDriverID(body.DriverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, []byte(body.PasswordHash))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver data: " + err.Error(),
		})
	}

	if handleErr := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, driver.ErrDriverAlreadyExists) {
			return ctx.JSON(http.StatusConflict, CommandResult{
				Success: false,
				Reason:  "driver_already_exists",
			})
		}
		return internalError(ctx, "Failed to register driver")
	}

	return ctx.JSON(http.StatusCreated, CommandResult{Success: true})
}

// AcceptDelivery handles POST /api/v1/requests/:requestID/accept.
// Losing a claim race, hitting the concurrent delivery cap, or lacking stock
// are ordinary outcomes reported as success=false.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	action, ok := s.bindDeliveryAction(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAcceptDeliveryCommand(action.driverID, action.requestID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrRequestNotAvailable):
			return ctx.JSON(http.StatusOK, CommandResult{Success: false, Reason: "request_not_available"})
		case errors.Is(handleErr, commands.ErrDeliveryLimitReached):
			return ctx.JSON(http.StatusOK, CommandResult{Success: false, Reason: "delivery_limit_reached"})
		case errors.Is(handleErr, driver.ErrInsufficientStock):
			return ctx.JSON(http.StatusOK, CommandResult{Success: false, Reason: "insufficient_stock"})
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Driver not found",
			})
		}
		return internalError(ctx, "Failed to accept delivery")
	}

	return ctx.JSON(http.StatusOK, CommandResult{Success: true})
}

// ResignDelivery handles POST /api/v1/requests/:requestID/resign.
func (s *Server) ResignDelivery(ctx echo.Context) error {
	action, ok := s.bindDeliveryAction(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewResignDeliveryCommand(action.driverID, action.requestID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.resignDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrNotAssignedToDriver):
			return ctx.JSON(http.StatusOK, CommandResult{Success: false, Reason: "not_assigned_to_driver"})
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Driver not found",
			})
		}
		return internalError(ctx, "Failed to resign delivery")
	}

	return ctx.JSON(http.StatusOK, CommandResult{Success: true})
}

// CompleteDelivery handles POST /api/v1/requests/:requestID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	action, ok := s.bindDeliveryAction(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompleteDeliveryCommand(action.driverID, action.requestID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNotAssignedToDriver) {
			return ctx.JSON(http.StatusOK, CommandResult{Success: false, Reason: "not_assigned_to_driver"})
		}
		return internalError(ctx, "Failed to complete delivery")
	}

	return ctx.JSON(http.StatusOK, CommandResult{Success: true})
}

// UpdateStock handles POST /api/v1/drivers/:driverID/stock - adds stock.
func (s *Server) UpdateStock(ctx echo.Context) error {
	driverID, err := kernel.NewDriverID(ctx.Param("driverID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	var body struct {
		Amount int `json:"amount"`
	}
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateStockCommand(driverID, body.Amount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.updateStockHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrValueIsOutOfRange):
			return ctx.JSON(http.StatusOK, CommandResult{Success: false, Reason: "stock_capacity_exceeded"})
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Driver not found",
			})
		}
		return internalError(ctx, "Failed to update stock")
	}

	return ctx.JSON(http.StatusOK, CommandResult{Success: true})
}

// CreateRequest handles POST /api/v1/requests - submits a delivery request.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body struct {
		DropoffAddress string `json:"dropoff_address"`
		Quantity       int    `json:"quantity"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	dropoff, err := kernel.NewAddress(body.DropoffAddress)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dropoff address: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateRequestCommand(dropoff, body.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create delivery request")
	}

	return ctx.JSON(http.StatusCreated, CommandResult{Success: true})
}

// UnassignedRequest is one claimable request in the listing.
type UnassignedRequest struct {
	RequestID      int    `json:"request_id"`
	DropoffAddress string `json:"dropoff_address"`
	Quantity       int    `json:"quantity"`
	OrderedAt      string `json:"ordered_at"`
	Reclaimable    bool   `json:"reclaimable"`
}

// GetUnassignedRequests handles GET /api/v1/requests/unassigned?driver_id=D001.
func (s *Server) GetUnassignedRequests(ctx echo.Context) error {
	driverID, err := kernel.NewDriverID(ctx.QueryParam("driver_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetUnassignedRequestsQuery(driverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	requests, err := s.getUnassignedRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve unassigned requests")
	}

	response := make([]UnassignedRequest, len(requests))
	for i, r := range requests {
		response[i] = UnassignedRequest{
			RequestID:      r.RequestID.Int(),
			DropoffAddress: r.Dropoff.String(),
			Quantity:       r.Quantity,
			OrderedAt:      r.OrderedAt.Format(timeFormat),
			Reclaimable:    r.Reclaimable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ActiveDelivery is one in-progress delivery in fleet-wide listings.
type ActiveDelivery struct {
	RequestID      int    `json:"request_id"`
	DropoffAddress string `json:"dropoff_address"`
	Quantity       int    `json:"quantity"`
	DriverID       string `json:"driver_id,omitempty"`
	DriverName     string `json:"driver_name,omitempty"`
	OrderedAt      string `json:"ordered_at"`
	StartTime      string `json:"start_time"`
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	deliveries, err := s.getActiveDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve active deliveries")
	}

	response := make([]ActiveDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = ActiveDelivery{
			RequestID:      d.RequestID.Int(),
			DropoffAddress: d.Dropoff.String(),
			Quantity:       d.Quantity,
			DriverID:       d.DriverID.String(),
			DriverName:     d.DriverName,
			OrderedAt:      d.OrderedAt.Format(timeFormat),
			StartTime:      d.StartTime.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyDeliveries handles GET /api/v1/drivers/:driverID/deliveries.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	driverID, err := kernel.NewDriverID(ctx.Param("driverID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetMyDeliveriesQuery(driverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	deliveries, err := s.getMyDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	response := make([]ActiveDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = ActiveDelivery{
			RequestID:      d.RequestID.Int(),
			DropoffAddress: d.Dropoff.String(),
			Quantity:       d.Quantity,
			OrderedAt:      d.OrderedAt.Format(timeFormat),
			StartTime:      d.StartTime.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentStock handles GET /api/v1/drivers/:driverID/stock.
func (s *Server) GetCurrentStock(ctx echo.Context) error {
	driverID, err := kernel.NewDriverID(ctx.Param("driverID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetCurrentStockQuery(driverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	stock, err := s.getCurrentStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve stock")
	}

	return ctx.JSON(http.StatusOK, map[string]int{"stock": stock.Stock})
}

// TrackingRow is one row of the combined order tracking board.
type TrackingRow struct {
	RequestID      int     `json:"request_id"`
	DropoffAddress string  `json:"dropoff_address"`
	Quantity       int     `json:"quantity"`
	Status         string  `json:"status"`
	DriverID       *string `json:"driver_id"`
	OrderedAt      string  `json:"ordered_at"`
	CompletedAt    *string `json:"completed_at"`
}

// GetOrderTracking handles GET /api/v1/tracking - the full tracking board.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	rows, err := s.getOrderTrackingHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrderTrackingQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve order tracking")
	}

	response := make([]TrackingRow, len(rows))
	for i, row := range rows {
		var completedAt *string
		if row.CompletedAt != nil {
			formatted := row.CompletedAt.Format(timeFormat)
			completedAt = &formatted
		}

		response[i] = TrackingRow{
			RequestID:      row.RequestID,
			DropoffAddress: row.Dropoff,
			Quantity:       row.Quantity,
			Status:         row.Status,
			DriverID:       row.DriverID,
			OrderedAt:      row.OrderedAt.Format(timeFormat),
			CompletedAt:    completedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

// deliveryAction is the parsed input shared by the accept, resign and
// complete endpoints: the request ID path parameter plus the driver ID from
// the body.
type deliveryAction struct {
	driverID  kernel.DriverID
	requestID kernel.RequestID
}

// bindDeliveryAction parses the shared delivery action input. When parsing
// fails the 400 response has already been written and ok is false.
func (s *Server) bindDeliveryAction(ctx echo.Context) (deliveryAction, bool) {
	var body struct {
		DriverID string `json:"driver_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		_ = respondBadRequest(ctx, "Invalid request body")
		return deliveryAction{}, false
	}

	driverID, err := kernel.NewDriverID(body.DriverID)
	if err != nil {
		_ = respondBadRequest(ctx, "Invalid driver ID: "+err.Error())
		return deliveryAction{}, false
	}

	rawID, err := strconv.Atoi(ctx.Param("requestID"))
	if err != nil {
		_ = respondBadRequest(ctx, "Invalid request ID")
		return deliveryAction{}, false
	}

	requestID, err := kernel.NewRequestID(rawID)
	if err != nil {
		_ = respondBadRequest(ctx, "Invalid request ID: "+err.Error())
		return deliveryAction{}, false
	}

	return deliveryAction{driverID: driverID, requestID: requestID}, true
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
