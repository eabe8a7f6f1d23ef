// Package http exposes the shipment lifecycle over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"exportflow/internal/core/application/usecases/commands"
	"exportflow/internal/core/application/usecases/queries"
	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/core/ports"
	"exportflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST API for shipment, bag and manifest operations.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler        commands.CreateShipmentCommandHandler
	bookShipmentHandler          commands.BookShipmentCommandHandler
	recordIntakeHandler          commands.RecordIntakeCommandHandler
	clearMismatchHandler         commands.ClearMismatchCommandHandler
	recordLabelingHandler        commands.RecordLabelingCommandHandler
	createBagHandler             commands.CreateBagCommandHandler
	assignToBagHandler           commands.AssignToBagCommandHandler
	removeFromBagHandler         commands.RemoveFromBagCommandHandler
	sealBagHandler               commands.SealBagCommandHandler
	createManifestHandler        commands.CreateManifestCommandHandler
	addBagToManifestHandler      commands.AddBagToManifestCommandHandler
	removeBagFromManifestHandler commands.RemoveBagFromManifestCommandHandler
	lockManifestHandler          commands.LockManifestCommandHandler
	recordHandoverHandler        commands.RecordHandoverCommandHandler
	recordDepartureHandler       commands.RecordDepartureCommandHandler

	// Query handlers
	getShipmentHandler queries.GetShipmentQueryHandler
	getManifestHandler queries.GetManifestQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	bookShipmentHandler commands.BookShipmentCommandHandler,
	recordIntakeHandler commands.RecordIntakeCommandHandler,
	clearMismatchHandler commands.ClearMismatchCommandHandler,
	recordLabelingHandler commands.RecordLabelingCommandHandler,
	createBagHandler commands.CreateBagCommandHandler,
	assignToBagHandler commands.AssignToBagCommandHandler,
	removeFromBagHandler commands.RemoveFromBagCommandHandler,
	sealBagHandler commands.SealBagCommandHandler,
	createManifestHandler commands.CreateManifestCommandHandler,
	addBagToManifestHandler commands.AddBagToManifestCommandHandler,
	removeBagFromManifestHandler commands.RemoveBagFromManifestCommandHandler,
	lockManifestHandler commands.LockManifestCommandHandler,
	recordHandoverHandler commands.RecordHandoverCommandHandler,
	recordDepartureHandler commands.RecordDepartureCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getManifestHandler queries.GetManifestQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:        createShipmentHandler,
		bookShipmentHandler:          bookShipmentHandler,
		recordIntakeHandler:          recordIntakeHandler,
		clearMismatchHandler:         clearMismatchHandler,
		recordLabelingHandler:        recordLabelingHandler,
		createBagHandler:             createBagHandler,
		assignToBagHandler:           assignToBagHandler,
		removeFromBagHandler:         removeFromBagHandler,
		sealBagHandler:               sealBagHandler,
		createManifestHandler:        createManifestHandler,
		addBagToManifestHandler:      addBagToManifestHandler,
		removeBagFromManifestHandler: removeBagFromManifestHandler,
		lockManifestHandler:          lockManifestHandler,
		recordHandoverHandler:        recordHandoverHandler,
		recordDepartureHandler:       recordDepartureHandler,
		getShipmentHandler:           getShipmentHandler,
		getManifestHandler:           getManifestHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/book", s.BookShipment)
	api.POST("/shipments/:id/intake", s.RecordIntake)
	api.POST("/shipments/:id/clear-mismatch", s.ClearMismatch)
	api.POST("/shipments/:id/label", s.RecordLabeling)
	api.GET("/shipments/:awb", s.GetShipment)

	api.POST("/bags", s.CreateBag)
	api.POST("/bags/:id/shipments", s.AssignToBag)
	api.DELETE("/bags/:id/shipments/:shipmentId", s.RemoveFromBag)
	api.POST("/bags/:id/seal", s.SealBag)

	api.POST("/manifests", s.CreateManifest)
	api.POST("/manifests/:id/bags", s.AddBagToManifest)
	api.DELETE("/manifests/:id/bags/:bagId", s.RemoveBagFromManifest)
	api.POST("/manifests/:id/lock", s.LockManifest)
	api.POST("/manifests/:id/handover", s.RecordHandover)
	api.POST("/manifests/:id/departure", s.RecordDeparture)
	api.GET("/manifests/:id", s.GetManifest)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	weight, err := shipment.NewWeight(req.DeclaredWeightKg)
	if err != nil {
		return writeError(ctx, err)
	}
	dims, err := shipment.NewDimensions(req.DeclaredLengthCm, req.DeclaredWidthCm, req.DeclaredHeightCm)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, req.Destination, weight, dims, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// BookShipment handles POST /api/v1/shipments/:id/book.
func (s *Server) BookShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBookShipmentCommand(shipmentID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.bookShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordIntake handles POST /api/v1/shipments/:id/intake.
func (s *Server) RecordIntake(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req RecordIntakeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	weight, err := shipment.NewWeight(req.MeasuredWeightKg)
	if err != nil {
		return writeError(ctx, err)
	}
	dims, err := shipment.NewDimensions(req.MeasuredLengthCm, req.MeasuredWidthCm, req.MeasuredHeightCm)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordIntakeCommand(shipmentID, weight, dims, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordIntakeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClearMismatch handles POST /api/v1/shipments/:id/clear-mismatch.
func (s *Server) ClearMismatch(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req ClearMismatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewClearMismatchCommand(shipmentID, req.Reason, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.clearMismatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordLabeling handles POST /api/v1/shipments/:id/label.
func (s *Server) RecordLabeling(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordLabelingCommand(shipmentID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordLabelingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetShipment handles GET /api/v1/shipments/:awb.
func (s *Server) GetShipment(ctx echo.Context) error {
	awb, err := kernel.AWBFromString(ctx.Param("awb"))
	if err != nil {
		return badRequest(ctx, "Invalid AWB")
	}

	query, err := queries.NewGetShipmentQuery(awb)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFrom(result))
}

// CreateBag handles POST /api/v1/bags.
func (s *Server) CreateBag(ctx echo.Context) error {
	var req CreateBagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	bagID := kernel.NewUUID()
	cmd, err := commands.NewCreateBagCommand(bagID, req.Destination, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bagID.String()})
}

// AssignToBag handles POST /api/v1/bags/:id/shipments.
func (s *Server) AssignToBag(ctx echo.Context) error {
	bagID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid bag ID")
	}

	var req AssignToBagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	cmd, err := commands.NewAssignToBagCommand(shipmentID, bagID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignToBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveFromBag handles DELETE /api/v1/bags/:id/shipments/:shipmentId.
func (s *Server) RemoveFromBag(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	cmd, err := commands.NewRemoveFromBagCommand(shipmentID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeFromBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SealBag handles POST /api/v1/bags/:id/seal.
func (s *Server) SealBag(ctx echo.Context) error {
	bagID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid bag ID")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSealBagCommand(bagID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.sealBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateManifest handles POST /api/v1/manifests.
func (s *Server) CreateManifest(ctx echo.Context) error {
	var req CreateManifestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	departureAt, err := time.Parse(time.RFC3339, req.DepartureAt)
	if err != nil {
		return badRequest(ctx, "Invalid departure time, expected RFC 3339")
	}

	manifestID := kernel.NewUUID()
	cmd, err := commands.NewCreateManifestCommand(manifestID, req.FlightNumber, req.Destination, departureAt, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: manifestID.String()})
}

// AddBagToManifest handles POST /api/v1/manifests/:id/bags.
func (s *Server) AddBagToManifest(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest ID")
	}

	var req AddBagToManifestRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	bagID, err := kernel.UUIDFromString(req.BagID)
	if err != nil {
		return badRequest(ctx, "Invalid bag ID")
	}

	cmd, err := commands.NewAddBagToManifestCommand(manifestID, bagID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addBagToManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveBagFromManifest handles DELETE /api/v1/manifests/:id/bags/:bagId.
func (s *Server) RemoveBagFromManifest(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest ID")
	}

	bagID, err := kernel.UUIDFromString(ctx.Param("bagId"))
	if err != nil {
		return badRequest(ctx, "Invalid bag ID")
	}

	cmd, err := commands.NewRemoveBagFromManifestCommand(manifestID, bagID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeBagFromManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// LockManifest handles POST /api/v1/manifests/:id/lock.
func (s *Server) LockManifest(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest ID")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLockManifestCommand(manifestID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.lockManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordHandover handles POST /api/v1/manifests/:id/handover.
func (s *Server) RecordHandover(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest ID")
	}

	var req RecordHandoverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordHandoverCommand(manifestID, req.CarrierReference, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordDeparture handles POST /api/v1/manifests/:id/departure.
func (s *Server) RecordDeparture(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest ID")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordDepartureCommand(manifestID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordDepartureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetManifest handles GET /api/v1/manifests/:id.
func (s *Server) GetManifest(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest ID")
	}

	query, err := queries.NewGetManifestQuery(manifestID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, manifestResponseFrom(result))
}

// actorFrom reads the operator identity for DELETE endpoints, which carry no
// request body.
func actorFrom(ctx echo.Context) string {
	return ctx.Request().Header.Get("X-Actor")
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// conflictErrors are domain rejections reported as 409: the request was
// well-formed but the aggregate state does not allow it.
var conflictErrors = []error{
	errs.ErrConflict,
	shipment.ErrInvalidTransition,
	shipment.ErrAWBAlreadyAssigned,
	shipment.ErrAlreadyBagged,
	shipment.ErrAlreadyManifested,
	shipment.ErrNotBagged,
	bag.ErrBagSealed,
	bag.ErrBagAlreadySealed,
	bag.ErrBagEmpty,
	bag.ErrBagManifested,
	bag.ErrBagAlreadyManifested,
	bag.ErrShipmentAlreadyInBag,
	bag.ErrShipmentNotInBag,
	manifest.ErrManifestLocked,
	manifest.ErrAlreadyLocked,
	manifest.ErrManifestEmpty,
	manifest.ErrNotLocked,
	manifest.ErrHandoverRequired,
	manifest.ErrBagAlreadyInManifest,
	manifest.ErrBagNotInManifest,
	commands.ErrBagNotSealed,
}

// writeError maps application and domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrIdentifierExhausted):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	}

	for _, conflict := range conflictErrors {
		if errors.Is(err, conflict) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
