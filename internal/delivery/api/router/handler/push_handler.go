package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"devicestore/config"
	deliverycontext "devicestore/internal/delivery/context"
	"devicestore/internal/domain/service"
	"devicestore/internal/infra/messaging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks the OIDC token of a push request.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Injector service.TokenInjector
}

// PushHandler turns Pub/Sub push deliveries of token rotation events into token updates.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	injector       service.TokenInjector
	logger         *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		injector: params.Injector,
		logger:   params.Logger,
	}
	if push := params.Config.Messaging; push != nil && push.Push != nil {
		h.verifyPushAuth = push.Push.VerifyAuth
		h.audience = push.Push.Audience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Non-2xx responses make
// Pub/Sub redeliver, so only listener failures answer 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.injector == nil {
		return c.NoContent(http.StatusConflict)
	}

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequest(ctx, requestID, reqLogger)

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		reqLogger.Error("[Push] Dropping undecodable message data", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := messaging.DecodeTokenEvent(data)
	if err != nil {
		reqLogger.Error("[Push] Dropping malformed token event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if err := h.injector.SetToken(ctx, event.Token); err != nil {
		reqLogger.Warn("[Push] Token listener failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Push] Token event applied", slog.Bool("revoked", event.Token == ""))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the request header, then a new UUID
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
