package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devicestore/config"
	"devicestore/internal/errors"
	mockSvc "devicestore/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushRequest(t *testing.T, data string, attributes map[string]string) *http.Request {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/device-tokens"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/messaging/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func encodeEvent(payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockTokenInjector) {
	injector := mockSvc.NewMockTokenInjector(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Injector: injector,
	})

	return h, injector
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_AppliesToken(t *testing.T) {
	h, injector := newTestPushHandler(t, &config.Config{})

	injector.EXPECT().SetToken(mock.Anything, "T2").Return(nil).Once()

	rec := servePush(h, newPushRequest(t, encodeEvent(`{"token":"T2"}`), map[string]string{"request_id": "req-1"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ListenerFailureRequestsRedelivery(t *testing.T) {
	h, injector := newTestPushHandler(t, &config.Config{})

	injector.EXPECT().SetToken(mock.Anything, "").Return(errors.New("store unavailable")).Once()

	rec := servePush(h, newPushRequest(t, encodeEvent(`{"token":""}`), nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedPayloadIsAcked(t *testing.T) {
	h, injector := newTestPushHandler(t, &config.Config{})

	rec := servePush(h, newPushRequest(t, "%%%", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = servePush(h, newPushRequest(t, encodeEvent("not json"), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	injector.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything)
}

func TestPushHandler_VerifiesAuth(t *testing.T) {
	cfg := &config.Config{
		Messaging: &config.MessagingConfig{
			Provider: config.MessagingProviderPush,
			Push:     &config.PushConfig{VerifyAuth: true, Audience: "https://device.example.com/messaging/push"},
		},
	}
	h, injector := newTestPushHandler(t, cfg)

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	req := newPushRequest(t, encodeEvent(`{"token":"T2"}`), nil)
	rec := servePush(h, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = newPushRequest(t, encodeEvent(`{"token":"T2"}`), nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec = servePush(h, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://device.example.com/messaging/push", gotAudience)

	injector.EXPECT().SetToken(mock.Anything, "T2").Return(nil).Once()
	req = newPushRequest(t, encodeEvent(`{"token":"T2"}`), nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = servePush(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_WithoutInjector(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	rec := servePush(h, newPushRequest(t, encodeEvent(`{"token":"T2"}`), nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
