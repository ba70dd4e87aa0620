package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"devicestore/internal/delivery/api/response"
	deliverycontext "devicestore/internal/delivery/context"
	"devicestore/internal/domain/service"
	"devicestore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Session        service.IdentitySession
	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SessionHandler signs the local user in and out.
type SessionHandler struct {
	session        service.IdentitySession
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		session:        params.Session,
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SignInRequest represents the request body for signing in
type SignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SignIn verifies the ID token and signs its user in
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.session.SignIn(ctx, req.IDToken)
	if err != nil {
		if user != nil {
			// Signed in, but registering this device for the user failed.
			deliverycontext.Logger(ctx, h.logger).ErrorContext(ctx, "Sign-in listener failed",
				slog.String("user_id", user.UID),
				slog.Any("error", err),
			)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SignOut removes this device's entry for the user, then signs the user out.
// device_cleanup=false skips the removal and only signs out.
func (h *SessionHandler) SignOut(c echo.Context) error {
	cleanup := true
	if raw := c.QueryParam("device_cleanup"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "device_cleanup must be a boolean")
		}
		cleanup = parsed
	}

	ctx := c.Request().Context()
	if cleanup {
		if err := h.subscriptionUC.SignOut(ctx); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	if err := h.session.SignOut(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.subscriptionUC.State())
}
