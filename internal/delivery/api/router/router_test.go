package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devicestore/config"
	apimiddleware "devicestore/internal/delivery/api/middleware"
	"devicestore/internal/delivery/api/router/handler"
	"devicestore/internal/delivery/api/validator"
	"devicestore/internal/domain/entity"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/service"
	"devicestore/internal/errors"
	mockSvc "devicestore/internal/mocks/service"
	mockUsecase "devicestore/internal/mocks/usecase"
	"devicestore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo         *echo.Echo
	subscription *mockUsecase.MockSubscriptionUsecase
	registry     *mockUsecase.MockTokenRegistry
	session      *mockSvc.MockIdentitySession
	identity     *mockSvc.MockIdentityProvider
	injector     *mockSvc.MockTokenInjector
}

func createTestRouter(t *testing.T, withInjector bool) *routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &routerFixtures{
		echo:         echo.New(),
		subscription: mockUsecase.NewMockSubscriptionUsecase(t),
		registry:     mockUsecase.NewMockTokenRegistry(t),
		session:      mockSvc.NewMockIdentitySession(t),
		identity:     mockSvc.NewMockIdentityProvider(t),
		injector:     mockSvc.NewMockTokenInjector(t),
	}

	var injector service.TokenInjector
	if withInjector {
		injector = fx.injector
	}

	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{
			SubscriptionUC: fx.subscription,
			Logger:         logger,
		}),
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
			Session:        fx.session,
			SubscriptionUC: fx.subscription,
			Logger:         logger,
		}),
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			Registry: fx.registry,
			Identity: fx.identity,
			Logger:   logger,
		}),
		MessagingHandler: handler.NewMessagingHandler(handler.MessagingHandlerParams{
			Injector: injector,
			Logger:   logger,
		}),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:   &config.Config{},
			Injector: injector,
			Logger:   logger,
		}),
	})
	r.RegisterRoutes(fx.echo)

	return fx
}

func (fx *routerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t, true)

	rec := fx.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}

func TestRouter_Subscription(t *testing.T) {
	fx := createTestRouter(t, true)
	state := usecase.SubscriptionState{Subscribed: true, UserID: "u1", HasToken: true}

	fx.subscription.EXPECT().Subscribe(mock.Anything).Return(nil).Once()
	fx.subscription.EXPECT().State().Return(state)

	rec := fx.do(http.MethodPost, "/subscription", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"subscribed":true,"user_id":"u1","has_token":true}`, string(decodeEnvelope(t, rec).Data))

	rec = fx.do(http.MethodGet, "/subscription", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	fx.subscription.EXPECT().Unsubscribe(mock.Anything).Return(nil).Once()
	rec = fx.do(http.MethodDelete, "/subscription", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Subscribe_PermissionDenied(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.subscription.EXPECT().
		Subscribe(mock.Anything).
		Return(errors.Wrap(domainerrors.ErrPermissionDenied, "failed to request notification permission")).
		Once()

	rec := fx.do(http.MethodPost, "/subscription", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PERMISSION_DENIED", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_Subscribe_UnexpectedError(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.subscription.EXPECT().Subscribe(mock.Anything).Return(errors.New("boom")).Once()

	rec := fx.do(http.MethodPost, "/subscription", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_SignIn(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.session.EXPECT().SignIn(mock.Anything, "credential").Return(&entity.Identity{UID: "u1"}, nil).Once()

	rec := fx.do(http.MethodPost, "/session", `{"id_token":"credential"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":"u1"}`, string(decodeEnvelope(t, rec).Data))
}

func TestRouter_SignIn_Validation(t *testing.T) {
	fx := createTestRouter(t, true)

	rec := fx.do(http.MethodPost, "/session", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_SignIn_InvalidToken(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.session.EXPECT().
		SignIn(mock.Anything, "expired").
		Return(nil, domainerrors.ErrInvalidIDToken.WithDetails("token expired")).
		Once()

	rec := fx.do(http.MethodPost, "/session", `{"id_token":"expired"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_ID_TOKEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestRouter_SignOut(t *testing.T) {
	fx := createTestRouter(t, true)

	var order []string
	fx.subscription.EXPECT().SignOut(mock.Anything).
		Run(func(context.Context) { order = append(order, "device") }).
		Return(nil).Once()
	fx.session.EXPECT().SignOut(mock.Anything).
		Run(func(context.Context) { order = append(order, "session") }).
		Return(nil).Once()
	fx.subscription.EXPECT().State().Return(usecase.SubscriptionState{Subscribed: true})

	rec := fx.do(http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"device", "session"}, order)
}

func TestRouter_SignOut_WithoutDeviceCleanup(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.session.EXPECT().SignOut(mock.Anything).Return(nil).Once()
	fx.subscription.EXPECT().State().Return(usecase.SubscriptionState{})

	rec := fx.do(http.MethodDelete, "/session?device_cleanup=false", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.subscription.AssertNotCalled(t, "SignOut", mock.Anything)
}

func TestRouter_SignOut_CleanupFailureKeepsSession(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.subscription.EXPECT().SignOut(mock.Anything).
		Return(domainerrors.NewTransactionError(errors.New("unavailable"), "delete token")).
		Once()

	rec := fx.do(http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "TRANSACTION_FAILED", decodeEnvelope(t, rec).Error.Code)
	fx.session.AssertNotCalled(t, "SignOut", mock.Anything)
}

func TestRouter_SignOut_InvalidQuery(t *testing.T) {
	fx := createTestRouter(t, true)

	rec := fx.do(http.MethodDelete, "/session?device_cleanup=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ListDevices(t *testing.T) {
	fx := createTestRouter(t, true)
	devices := []entity.Device{{DeviceID: "d1", FCMToken: "T1", Name: "Chrome", OS: "Linux", Type: entity.DeviceTypeWeb}}

	fx.identity.EXPECT().CurrentUser(mock.Anything).Return(&entity.Identity{UID: "u1"}).Once()
	fx.registry.EXPECT().ListDevices(mock.Anything, "u1").Return(devices, nil).Once()

	rec := fx.do(http.MethodGet, "/devices", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"deviceId":"d1","fcmToken":"T1","name":"Chrome","os":"Linux","type":"Web"}]`,
		string(decodeEnvelope(t, rec).Data),
	)
}

func TestRouter_ListDevices_NotSignedIn(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.identity.EXPECT().CurrentUser(mock.Anything).Return(nil).Once()

	rec := fx.do(http.MethodGet, "/devices", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_SIGNED_IN", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_SetToken(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.injector.EXPECT().SetToken(mock.Anything, "T2").Return(nil).Once()
	rec := fx.do(http.MethodPut, "/messaging/token", `{"token":"T2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// An empty token is a revocation, not a validation error.
	fx.injector.EXPECT().SetToken(mock.Anything, "").Return(nil).Once()
	rec = fx.do(http.MethodPut, "/messaging/token", `{"token":""}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPut, "/messaging/token", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SetToken_ListenerFailure(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.injector.EXPECT().SetToken(mock.Anything, "T2").
		Return(domainerrors.NewTransactionError(errors.New("unavailable"), "update token")).
		Once()

	rec := fx.do(http.MethodPut, "/messaging/token", `{"token":"T2"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_SetPermission(t *testing.T) {
	fx := createTestRouter(t, true)

	fx.injector.EXPECT().SetPermission(false).Once()

	rec := fx.do(http.MethodPut, "/messaging/permission", `{"granted":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"granted":false}`, string(decodeEnvelope(t, rec).Data))
}

func TestRouter_Messaging_ProviderUnavailable(t *testing.T) {
	fx := createTestRouter(t, false)

	rec := fx.do(http.MethodPut, "/messaging/token", `{"token":"T2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PROVIDER_UNAVAILABLE", decodeEnvelope(t, rec).Error.Code)

	rec = fx.do(http.MethodPut, "/messaging/permission", `{"granted":true}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
