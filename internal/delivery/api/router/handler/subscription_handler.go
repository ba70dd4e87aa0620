package handler

import (
	"log/slog"
	"net/http"

	"devicestore/internal/delivery/api/response"
	deliverycontext "devicestore/internal/delivery/context"
	"devicestore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler drives the subscription controller.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// GetState returns the controller state
func (h *SubscriptionHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.subscriptionUC.State())
}

// Subscribe starts the subscription
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.subscriptionUC.Subscribe(ctx); err != nil {
		deliverycontext.Logger(ctx, h.logger).WarnContext(ctx, "Subscribe failed", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.subscriptionUC.State())
}

// Unsubscribe stops the subscription
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	if err := h.subscriptionUC.Unsubscribe(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.subscriptionUC.State())
}
