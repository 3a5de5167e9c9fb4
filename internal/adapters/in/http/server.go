// Package http implements the inbound HTTP adapter: the generated
// ServerInterface is realized on top of the command and query handlers, with
// JWT authentication and a single domain-error to status-code mapping.
package http

import (
	"net/http"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/application/usecases/queries"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/generated/servers"
	"sendit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/crypto/bcrypt"
)

// Server implements servers.ServerInterface. It coordinates between HTTP
// handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler          commands.RegisterUserCommandHandler
	updateProfileHandler         commands.UpdateProfileCommandHandler
	createDeliveryHandler        commands.CreateDeliveryCommandHandler
	requestDeliveryChangeHandler commands.RequestDeliveryChangeCommandHandler
	correctDeliveryHandler       commands.CorrectDeliveryCommandHandler
	updateDeliveryStatusHandler  commands.UpdateDeliveryStatusCommandHandler
	deleteDeliveryHandler        commands.DeleteDeliveryCommandHandler

	// Query handlers
	getCredentialsHandler queries.GetCredentialsQueryHandler
	getProfileHandler     queries.GetProfileQueryHandler
	getDeliveriesHandler  queries.GetDeliveriesQueryHandler
	getDeliveryHandler    queries.GetDeliveryQueryHandler
	trackDeliveryHandler  queries.TrackDeliveryQueryHandler
	getRidersHandler      queries.GetRidersQueryHandler
	getUsersHandler       queries.GetUsersQueryHandler

	tokens *TokenService
}

// NewServer creates the HTTP server facade over the application use cases.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	requestDeliveryChangeHandler commands.RequestDeliveryChangeCommandHandler,
	correctDeliveryHandler commands.CorrectDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	getCredentialsHandler queries.GetCredentialsQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	trackDeliveryHandler queries.TrackDeliveryQueryHandler,
	getRidersHandler queries.GetRidersQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	tokens *TokenService,
) *Server {
	return &Server{
		registerUserHandler:          registerUserHandler,
		updateProfileHandler:         updateProfileHandler,
		createDeliveryHandler:        createDeliveryHandler,
		requestDeliveryChangeHandler: requestDeliveryChangeHandler,
		correctDeliveryHandler:       correctDeliveryHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		deleteDeliveryHandler:        deleteDeliveryHandler,
		getCredentialsHandler:        getCredentialsHandler,
		getProfileHandler:            getProfileHandler,
		getDeliveriesHandler:         getDeliveriesHandler,
		getDeliveryHandler:           getDeliveryHandler,
		trackDeliveryHandler:         trackDeliveryHandler,
		getRidersHandler:             getRidersHandler,
		getUsersHandler:              getUsersHandler,
		tokens:                       tokens,
	}
}

// RegisterUser handles POST /auth/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req servers.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := auth.RoleFromString(string(req.Role))
	if err != nil {
		return renderError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, string(req.Email), req.Name, req.Phone, req.Password, role,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	principal, err := auth.NewPrincipal(userID, role)
	if err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithAuth(ctx, http.StatusCreated, principal)
}

// LoginUser handles POST /auth/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetCredentialsQuery(string(req.Email))
	if err != nil {
		return unauthorized(ctx, "Invalid email or password")
	}

	creds, err := s.getCredentialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// A missing account answers exactly like a wrong password.
		return unauthorized(ctx, "Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) != nil {
		return unauthorized(ctx, "Invalid email or password")
	}

	role, err := auth.RoleFromString(creds.Role)
	if err != nil {
		return renderError(ctx, err)
	}
	principal, err := auth.NewPrincipal(creds.UserID, role)
	if err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithAuth(ctx, http.StatusOK, principal)
}

// GetProfile handles GET /profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetProfileQuery(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	view, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(view))
}

// UpdateProfile handles PATCH /profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	var req servers.UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(principal, req.Name, req.Phone, req.Password)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithProfile(ctx, principal)
}

// CreateDelivery handles POST /deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	var req servers.CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, principal,
		stringValue(req.OrderName),
		req.Distance, req.Weight, req.Size,
		req.PickupLocation, req.DropOffLocation,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithDelivery(ctx, http.StatusCreated, deliveryID, principal)
}

// GetDeliveries handles GET /deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetDeliveriesQuery(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	views, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]servers.Delivery, len(views))
	for i, view := range views {
		response[i] = toDeliveryResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	id, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithDelivery(ctx, http.StatusOK, id, principal)
}

// DeleteDelivery handles DELETE /deliveries/{deliveryId}.
func (s *Server) DeleteDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	id, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(id, principal)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestDeliveryChange handles PUT /user/deliveries/{deliveryId}.
func (s *Server) RequestDeliveryChange(ctx echo.Context, deliveryId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	var req servers.DeliveryChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	kind, err := commands.ChangeKindFromString(string(req.Action))
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewRequestDeliveryChangeCommand(
		id, principal, kind,
		stringValue(req.NewDestination),
		stringValue(req.Reason),
	)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.requestDeliveryChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithDelivery(ctx, http.StatusOK, id, principal)
}

// CorrectDelivery handles PATCH /admin/deliveries/{deliveryId}.
func (s *Server) CorrectDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	var req servers.DeliveryCorrectionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	var target *delivery.Status
	if req.Status != nil {
		status, statusErr := delivery.StatusFromString(string(*req.Status))
		if statusErr != nil {
			return renderError(ctx, statusErr)
		}
		target = &status
	}

	var assignee *kernel.UUID
	if req.RiderUserId != nil {
		userID, idErr := kernel.UUIDFromBytes((*req.RiderUserId)[:])
		if idErr != nil {
			return renderError(ctx, idErr)
		}
		assignee = &userID
	}

	measurements, err := measurementsFromRequest(req)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewCorrectDeliveryCommand(id, principal, target, assignee, measurements)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.correctDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithDelivery(ctx, http.StatusOK, id, principal)
}

// UpdateDeliveryStatus handles PATCH /driver/deliveries/{deliveryId}.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, deliveryId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	var req servers.DeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	target, err := delivery.StatusFromString(string(req.Status))
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, principal, target)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithDelivery(ctx, http.StatusOK, id, principal)
}

// TrackDelivery handles GET /track/{deliveryId}.
func (s *Server) TrackDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewTrackDeliveryQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	snapshot, err := s.trackDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TrackingSnapshot{
		Id:              snapshot.ID.Bytes(),
		OrderName:       optionalString(snapshot.OrderName),
		Status:          snapshot.Status,
		DropOffLocation: snapshot.DropOffLocation,
	})
}

// GetRiders handles GET /riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetRidersQuery(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	views, err := s.getRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]servers.Rider, len(views))
	for i, view := range views {
		var userID *openapi_types.UUID
		if view.UserID != nil {
			raw := view.UserID.Bytes()
			userID = &raw
		}

		response[i] = servers.Rider{
			Id:        view.ID.Bytes(),
			UserId:    userID,
			Name:      view.Name,
			Phone:     view.Phone,
			Email:     view.Email,
			CreatedAt: view.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUsers handles GET /users.
func (s *Server) GetUsers(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "Missing bearer token")
	}

	query, err := queries.NewGetUsersQuery(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	views, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]servers.User, len(views))
	for i, view := range views {
		response[i] = toUserResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// respondWithAuth issues a token for the principal and returns it together
// with the account read model.
func (s *Server) respondWithAuth(ctx echo.Context, code int, principal auth.Principal) error {
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewGetProfileQuery(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	view, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(code, servers.AuthResponse{
		Token: token,
		User:  toUserResponse(view),
	})
}

func (s *Server) respondWithProfile(ctx echo.Context, principal auth.Principal) error {
	query, err := queries.NewGetProfileQuery(principal)
	if err != nil {
		return renderError(ctx, err)
	}

	view, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(view))
}

// respondWithDelivery loads the delivery read model through the caller's
// authorization scope and writes it out.
func (s *Server) respondWithDelivery(
	ctx echo.Context, code int, id kernel.UUID, principal auth.Principal,
) error {
	query, err := queries.NewGetDeliveryQuery(id, principal)
	if err != nil {
		return renderError(ctx, err)
	}

	view, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(code, toDeliveryResponse(view))
}

func toDeliveryResponse(view queries.DeliveryView) servers.Delivery {
	var riderID *openapi_types.UUID
	if view.RiderID != nil {
		raw := view.RiderID.Bytes()
		riderID = &raw
	}

	return servers.Delivery{
		Id:                      view.ID.Bytes(),
		CustomerId:              view.CustomerID.Bytes(),
		RiderId:                 riderID,
		OrderName:               optionalString(view.OrderName),
		Distance:                view.Distance,
		Weight:                  view.Weight,
		Size:                    view.Size,
		PickupLocation:          view.PickupLocation,
		DropOffLocation:         view.DropOffLocation,
		PreviousDropOffLocation: view.PreviousDropOffLocation,
		TotalPrice:              view.TotalPrice,
		Status:                  servers.DeliveryStatus(view.Status),
		CancellationReason:      view.CancellationReason,
		CreatedAt:               view.CreatedAt,
	}
}

func toUserResponse(view queries.UserView) servers.User {
	return servers.User{
		Id:        view.ID.Bytes(),
		Email:     view.Email,
		Name:      view.Name,
		Phone:     view.Phone,
		Role:      view.Role,
		CreatedAt: view.CreatedAt,
	}
}

// measurementsFromRequest requires the three priced dimensions together so a
// recomputed price never mixes old and new values.
func measurementsFromRequest(req servers.DeliveryCorrectionRequest) (*commands.Measurements, error) {
	if req.Distance == nil && req.Weight == nil && req.Size == nil {
		return nil, nil
	}
	if req.Distance == nil || req.Weight == nil || req.Size == nil {
		return nil, errs.NewValueIsRequiredError("distance, weight and size")
	}

	return &commands.Measurements{
		Distance: *req.Distance,
		Weight:   *req.Weight,
		Size:     *req.Size,
	}, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
