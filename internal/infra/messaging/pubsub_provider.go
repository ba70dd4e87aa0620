package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TokenEvent is the payload of a token rotation message. An empty token
// means the platform revoked the previous one.
type TokenEvent struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at,omitempty"`
}

// PubSubProvider receives token rotations from a Google Pub/Sub subscription.
type PubSubProvider struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionPath string
	logger           *slog.Logger
	feed             *tokenFeed

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPubSubProvider connects to the subscription delivering this installation's tokens.
func NewPubSubProvider(ctx context.Context, projectID, subscriptionID string, logger *slog.Logger) (*PubSubProvider, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	subscriber := client.Subscriber(subscriptionID)
	// One message at a time keeps listener invocations serial and in order.
	subscriber.ReceiveSettings.MaxOutstandingMessages = 1

	logger.Info("Google Pub/Sub token provider initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &PubSubProvider{
		client:           client,
		subscriber:       subscriber,
		subscriptionPath: fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID),
		logger:           logger,
		feed:             newTokenFeed(),
	}, nil
}

// RequestPermission checks that this installation may read its token subscription.
func (p *PubSubProvider) RequestPermission(ctx context.Context) error {
	_, err := p.client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: p.subscriptionPath,
	})
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return domainerrors.ErrPermissionDenied.WithDetails(err.Error())
	default:
		return errors.Wrapf(err, "failed to get subscription %s", p.subscriptionPath)
	}
}

// GetToken returns the last token received, or "" before the first message.
func (p *PubSubProvider) GetToken(_ context.Context) (string, error) {
	return p.feed.current(), nil
}

// OnTokenRefresh registers fn for token rotations.
func (p *PubSubProvider) OnTokenRefresh(fn service.TokenRefreshFunc) service.ListenerHandle {
	return p.feed.subscribe(fn)
}

// Start begins receiving token events in the background.
func (p *PubSubProvider) Start(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return nil
	}

	// The receive loop outlives the start hook's context.
	receiveCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		if err := p.subscriber.Receive(receiveCtx, p.handleMessage); err != nil && !errors.Is(err, context.Canceled) {
			p.logger.Error("[PubSubToken] Receive stopped", slog.Any("error", err))
		}
	}()

	return nil
}

func (p *PubSubProvider) handleMessage(ctx context.Context, msg *pubsub.Message) {
	event, err := DecodeTokenEvent(msg.Data)
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		p.logger.Error("[PubSubToken] Dropping malformed token event",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		msg.Ack()

		return
	}

	if err := p.feed.publish(ctx, event.Token); err != nil {
		p.logger.Warn("[PubSubToken] Token listener failed, requesting redelivery",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		msg.Nack()

		return
	}

	msg.Ack()
}

// Close stops receiving and releases the client.
func (p *PubSubProvider) Close(ctx context.Context) error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}

	return errors.WithStack(p.client.Close())
}

// DecodeTokenEvent parses a token rotation payload.
func DecodeTokenEvent(data []byte) (*TokenEvent, error) {
	var event TokenEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode token event")
	}

	return &event, nil
}
