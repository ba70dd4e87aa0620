package handler

import (
	"log/slog"
	"net/http"

	"devicestore/internal/delivery/api/response"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessagingHandlerParams holds dependencies for MessagingHandler, injected by Fx.
type MessagingHandlerParams struct {
	fx.In

	Injector service.TokenInjector
	Logger   *slog.Logger
}

// MessagingHandler feeds tokens and permission changes into the local messaging provider.
type MessagingHandler struct {
	injector service.TokenInjector
	logger   *slog.Logger
}

// NewMessagingHandler is the constructor for MessagingHandler
func NewMessagingHandler(params MessagingHandlerParams) *MessagingHandler {
	return &MessagingHandler{
		injector: params.Injector,
		logger:   params.Logger,
	}
}

// SetTokenRequest represents the request body for issuing a token. An empty token revokes.
type SetTokenRequest struct {
	Token *string `json:"token" validate:"required"`
}

// SetPermissionRequest represents the request body for changing notification permission
type SetPermissionRequest struct {
	Granted *bool `json:"granted" validate:"required"`
}

// SetToken publishes a new current token
func (h *MessagingHandler) SetToken(c echo.Context) error {
	if h.injector == nil {
		return response.HandleAppError(c, domainerrors.ErrProviderUnavailable)
	}

	var req SetTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.injector.SetToken(c.Request().Context(), *req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token updated"})
}

// SetPermission changes the notification permission
func (h *MessagingHandler) SetPermission(c echo.Context) error {
	if h.injector == nil {
		return response.HandleAppError(c, domainerrors.ErrProviderUnavailable)
	}

	var req SetPermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	h.injector.SetPermission(*req.Granted)

	return response.Success(c, http.StatusOK, map[string]bool{"granted": *req.Granted})
}
