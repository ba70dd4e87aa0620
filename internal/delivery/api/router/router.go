// Package router contains routing for the control API.
package router

import (
	"devicestore/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SubscriptionHandler *handler.SubscriptionHandler
	SessionHandler      *handler.SessionHandler
	DeviceHandler       *handler.DeviceHandler
	MessagingHandler    *handler.MessagingHandler
	PushHandler         *handler.PushHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	subscriptionHandler *handler.SubscriptionHandler
	sessionHandler      *handler.SessionHandler
	deviceHandler       *handler.DeviceHandler
	messagingHandler    *handler.MessagingHandler
	pushHandler         *handler.PushHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		subscriptionHandler: params.SubscriptionHandler,
		sessionHandler:      params.SessionHandler,
		deviceHandler:       params.DeviceHandler,
		messagingHandler:    params.MessagingHandler,
		pushHandler:         params.PushHandler,
	}
}

// RegisterRoutes sets up all the control API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Subscription controller
	subscriptionGroup := e.Group("/subscription")
	{
		subscriptionGroup.GET("", r.subscriptionHandler.GetState)
		subscriptionGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
	}

	// Identity session
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("", r.sessionHandler.SignIn)
		sessionGroup.DELETE("", r.sessionHandler.SignOut)
	}

	// Registered devices of the signed-in user
	e.GET("/devices", r.deviceHandler.ListDevices)

	// Local messaging provider inputs
	messagingGroup := e.Group("/messaging")
	{
		messagingGroup.PUT("/token", r.messagingHandler.SetToken)
		messagingGroup.PUT("/permission", r.messagingHandler.SetPermission)
		messagingGroup.POST("/push", r.pushHandler.HandlePush)
	}
}
