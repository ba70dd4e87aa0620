package handler

import (
	"log/slog"
	"net/http"

	"devicestore/internal/delivery/api/response"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/service"
	"devicestore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Registry usecase.TokenRegistry
	Identity service.IdentityProvider
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	registry usecase.TokenRegistry
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		registry: params.Registry,
		identity: params.Identity,
		logger:   params.Logger,
	}
}

// ListDevices returns the signed-in user's registered devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	ctx := c.Request().Context()

	user := h.identity.CurrentUser(ctx)
	if user == nil {
		return response.HandleAppError(c, domainerrors.ErrNotSignedIn)
	}

	devices, err := h.registry.ListDevices(ctx, user.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}
