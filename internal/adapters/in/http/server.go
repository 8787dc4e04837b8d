// Package http implements the inbound HTTP adapter. Handlers translate
// transport payloads into commands and queries and map domain failures onto
// the HTTP error taxonomy: validation failures become 400, unknown
// identifiers 404, state conflicts 409, and store failures a generic 500.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryRequestHandler commands.CreateDeliveryRequestCommandHandler
	dispatchDeliveryHandler      commands.DispatchDeliveryCommandHandler

	// Query handlers
	getDeliveryRequestHandler queries.GetDeliveryRequestQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryRequestHandler commands.CreateDeliveryRequestCommandHandler,
	dispatchDeliveryHandler commands.DispatchDeliveryCommandHandler,
	getDeliveryRequestHandler queries.GetDeliveryRequestQueryHandler,
) *Server {
	return &Server{
		createDeliveryRequestHandler: createDeliveryRequestHandler,
		dispatchDeliveryHandler:      dispatchDeliveryHandler,
		getDeliveryRequestHandler:    getDeliveryRequestHandler,
	}
}

// CreateDeliveryRequest handles POST /api/delivery-request/create.
//
//	@Summary		Create a delivery request
//	@Description	Stores a new delivery request in pending status.
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		servers.NewDeliveryRequest	true	"Delivery request to create"
//	@Success		201		{object}	servers.CreateDeliveryResponse
//	@Failure		400		{object}	servers.Error
//	@Failure		409		{object}	servers.Error
//	@Failure		500		{object}	servers.Error
//	@Router			/api/delivery-request/create [post]
func (s *Server) CreateDeliveryRequest(ctx echo.Context) error {
	var body servers.NewDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	pickup, err := locationFromAPI(body.PickupLocation)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	dropoff, err := locationFromAPI(body.DropoffLocation)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	route := make([]kernel.Location, 0, len(body.Route))
	for _, point := range body.Route {
		waypoint, locErr := locationFromAPI(point)
		if locErr != nil {
			return s.errorResponse(ctx, locErr)
		}
		route = append(route, waypoint)
	}

	cmd, err := commands.NewCreateDeliveryRequestCommand(
		body.DeliveryId, body.OrderId, pickup, dropoff, route,
		lo.FromPtr(body.DriverNotes))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.createDeliveryRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreateDeliveryResponse{
		Success:    true,
		Message:    "Delivery request created",
		DeliveryId: body.DeliveryId,
		Status:     servers.DeliveryRequestStatusPending,
	})
}

// GetDelivery handles GET /api/delivery/:id.
//
//	@Summary		Get a delivery request
//	@Description	Returns the stored delivery request with the given deliveryId.
//	@Tags			delivery
//	@Produce		json
//	@Param			id	path		string	true	"Business identifier of the delivery request"
//	@Success		200	{object}	servers.DeliveryRequest
//	@Failure		400	{object}	servers.Error
//	@Failure		404	{object}	servers.Error
//	@Failure		500	{object}	servers.Error
//	@Router			/api/delivery/{id} [get]
func (s *Server) GetDelivery(ctx echo.Context, id string) error {
	query, err := queries.NewGetDeliveryRequestQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	record, err := s.getDeliveryRequestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPI(record))
}

// DispatchDelivery handles POST /api/delivery/dispatch.
//
//	@Summary		Dispatch a delivery request
//	@Description	Assigns a driver to a pending delivery request. Only pending requests can be dispatched; repeating the call yields a conflict.
//	@Tags			delivery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		servers.DispatchRequest	true	"Driver assignment"
//	@Success		200		{object}	servers.DispatchDeliveryResponse
//	@Failure		400		{object}	servers.Error
//	@Failure		404		{object}	servers.Error
//	@Failure		409		{object}	servers.Error
//	@Failure		500		{object}	servers.Error
//	@Router			/api/delivery/dispatch [post]
func (s *Server) DispatchDelivery(ctx echo.Context) error {
	var body servers.DispatchRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDispatchDeliveryCommand(body.DeliveryId, body.DriverId, lo.FromPtr(body.DriverNotes))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.dispatchDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DispatchDeliveryResponse{
		Success:    true,
		Message:    "Driver assigned",
		DeliveryId: result.DeliveryID,
		DriverId:   result.DriverID,
		Status:     servers.DeliveryRequestStatus(result.Status),
		UpdatedAt:  result.UpdatedAt,
	})
}

// errorResponse maps domain and application failures to the HTTP error
// taxonomy. Unrecognized errors become a generic 500 so store internals never
// leak to clients.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrDeliveryRequestAlreadyExists),
		errors.Is(err, commands.ErrDeliveryRequestNotPending),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func locationFromAPI(location servers.Location) (kernel.Location, error) {
	return kernel.NewLocation(location.Lat, location.Lng, lo.FromPtr(location.Address))
}

func locationToAPI(location kernel.Location) servers.Location {
	var address *string
	if location.Address() != "" {
		address = lo.ToPtr(location.Address())
	}

	return servers.Location{
		Lat:     location.Lat(),
		Lng:     location.Lng(),
		Address: address,
	}
}

func toAPI(record queries.GetDeliveryRequestQueryResponse) servers.DeliveryRequest {
	var notes *string
	if record.DriverNotes != "" {
		notes = lo.ToPtr(record.DriverNotes)
	}

	return servers.DeliveryRequest{
		Id:              record.ID.Bytes(),
		DeliveryId:      record.DeliveryID,
		OrderId:         record.OrderID,
		DriverId:        record.DriverID,
		PickupLocation:  locationToAPI(record.Pickup),
		DropoffLocation: locationToAPI(record.Dropoff),
		Route: lo.Map(record.Route, func(waypoint kernel.Location, _ int) servers.Location {
			return locationToAPI(waypoint)
		}),
		Status:      servers.DeliveryRequestStatus(record.Status),
		DriverNotes: notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

var _ servers.ServerInterface = (*Server)(nil)
