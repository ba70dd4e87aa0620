package impl

import (
	"context"
	"log/slog"
	"sync"

	"devicestore/internal/domain/entity"
	"devicestore/internal/domain/service"
	"devicestore/internal/errors"
	"devicestore/internal/usecase"

	"go.uber.org/fx"
)

// SubscriptionServiceParams holds dependencies for the subscription service, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	Registry  usecase.TokenRegistry
	Messaging service.MessagingProvider
	Identity  service.IdentityProvider
	Logger    *slog.Logger
}

// subscriptionService owns the cached token and identity of one installation.
//
// reconcileMu serialises every sequence of "read cache, write store, update cache"
// so the cached token always matches the last write. mu guards the fields and is
// never held across a call to a collaborator.
type subscriptionService struct {
	registry  usecase.TokenRegistry
	messaging service.MessagingProvider
	identity  service.IdentityProvider
	logger    *slog.Logger

	reconcileMu sync.Mutex

	mu                sync.Mutex
	subscribed        bool
	generation        uint64
	currentToken      string
	currentUser       *entity.Identity
	authSubscription  service.ListenerHandle
	tokenSubscription service.ListenerHandle
}

// NewSubscriptionService creates a controller in the unsubscribed state.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		registry:  params.Registry,
		messaging: params.Messaging,
		identity:  params.Identity,
		logger:    params.Logger,
	}
}

// Subscribe requests permission, registers the current token and starts listening.
func (s *subscriptionService) Subscribe(ctx context.Context) error {
	gen, started, err := s.start(ctx)
	if err != nil || !started {
		return err
	}

	// Callbacks outlive the caller's request but keep its values.
	listenCtx := context.WithoutCancel(ctx)

	authHandle := s.identity.OnAuthStateChanged(func(_ context.Context, user *entity.Identity) error {
		return s.handleAuthStateChanged(listenCtx, gen, user)
	})
	tokenHandle := s.messaging.OnTokenRefresh(func(_ context.Context) error {
		return s.handleTokenRefresh(listenCtx, gen)
	})

	s.mu.Lock()
	if !s.subscribed || s.generation != gen {
		// Unsubscribe ran while the listeners were being registered.
		s.mu.Unlock()
		authHandle.Detach()
		tokenHandle.Detach()

		return nil
	}
	s.authSubscription = authHandle
	s.tokenSubscription = tokenHandle
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Device subscription started")

	return nil
}

// start runs the permission, fetch and initial registration steps.
// started is false when the controller was already subscribed.
func (s *subscriptionService) start(ctx context.Context) (gen uint64, started bool, err error) {
	s.reconcileMu.Lock()
	defer s.reconcileMu.Unlock()

	s.mu.Lock()
	if s.subscribed {
		s.mu.Unlock()

		return 0, false, nil
	}
	s.mu.Unlock()

	if err := s.messaging.RequestPermission(ctx); err != nil {
		return 0, false, errors.Wrap(err, "failed to request notification permission")
	}

	s.mu.Lock()
	s.subscribed = true
	s.generation++
	gen = s.generation
	s.mu.Unlock()

	token, err := s.messaging.GetToken(ctx)
	if err != nil {
		s.rollback(gen)

		return 0, false, errors.Wrap(err, "failed to get push token")
	}
	user := s.identity.CurrentUser(ctx)

	s.mu.Lock()
	if !s.subscribed || s.generation != gen {
		// Unsubscribe ran during the fetch and already cleared the cache.
		s.mu.Unlock()

		return 0, false, nil
	}
	s.currentToken = token
	s.currentUser = user
	s.mu.Unlock()

	if token != "" && user != nil {
		if err := s.registry.AddToken(ctx, user.UID, token); err != nil {
			s.rollback(gen)

			return 0, false, errors.Wrap(err, "failed to register push token")
		}
	}

	return gen, true, nil
}

// rollback returns a failed Subscribe to the unsubscribed state.
func (s *subscriptionService) rollback(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return
	}
	s.subscribed = false
	s.currentToken = ""
	s.currentUser = nil
}

func (s *subscriptionService) handleAuthStateChanged(ctx context.Context, gen uint64, user *entity.Identity) error {
	s.reconcileMu.Lock()
	defer s.reconcileMu.Unlock()

	s.mu.Lock()
	if !s.subscribed || s.generation != gen {
		s.mu.Unlock()

		return nil
	}
	cachedUser := s.currentUser
	token := s.currentToken
	s.mu.Unlock()

	switch {
	case user != nil && cachedUser == nil && token != "":
		if err := s.registry.AddToken(ctx, user.UID, token); err != nil {
			s.logger.ErrorContext(ctx, "Failed to register token after sign-in",
				slog.String("user_id", user.UID),
				slog.Any("error", err),
			)

			return err
		}

		s.mu.Lock()
		s.currentUser = user
		s.mu.Unlock()

	case user == nil && cachedUser != nil:
		// The stored entry for this device is left in place.
		s.logger.WarnContext(ctx, "SignOut must be called on the device store before signing the user out",
			slog.String("user_id", cachedUser.UID),
		)

		s.mu.Lock()
		s.currentUser = nil
		s.mu.Unlock()
	}

	return nil
}

func (s *subscriptionService) handleTokenRefresh(ctx context.Context, gen uint64) error {
	s.reconcileMu.Lock()
	defer s.reconcileMu.Unlock()

	s.mu.Lock()
	if !s.subscribed || s.generation != gen {
		s.mu.Unlock()

		return nil
	}
	cachedToken := s.currentToken
	user := s.currentUser
	s.mu.Unlock()

	token, err := s.messaging.GetToken(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get refreshed push token", slog.Any("error", err))

		return errors.Wrap(err, "failed to get refreshed push token")
	}

	if token != cachedToken && user != nil {
		if err := s.registry.UpdateToken(ctx, user.UID, cachedToken, token); err != nil {
			s.logger.ErrorContext(ctx, "Failed to rotate push token",
				slog.String("user_id", user.UID),
				slog.Any("error", err),
			)

			return err
		}
	}

	s.mu.Lock()
	if s.subscribed && s.generation == gen {
		s.currentToken = token
	}
	s.mu.Unlock()

	return nil
}

// Unsubscribe detaches both listeners and clears the cache. Stored data is untouched.
func (s *subscriptionService) Unsubscribe(ctx context.Context) error {
	s.mu.Lock()
	if !s.subscribed {
		s.mu.Unlock()

		return nil
	}
	authHandle := s.authSubscription
	tokenHandle := s.tokenSubscription
	s.authSubscription = nil
	s.tokenSubscription = nil
	s.currentToken = ""
	s.currentUser = nil
	s.subscribed = false
	s.mu.Unlock()

	if authHandle != nil {
		authHandle.Detach()
	}
	if tokenHandle != nil {
		tokenHandle.Detach()
	}

	s.logger.InfoContext(ctx, "Device subscription stopped")

	return nil
}

// SignOut removes this device's entry for the cached user, then forgets the user.
// The cached token and the subscription stay as they are.
func (s *subscriptionService) SignOut(ctx context.Context) error {
	s.reconcileMu.Lock()
	defer s.reconcileMu.Unlock()

	s.mu.Lock()
	user := s.currentUser
	token := s.currentToken
	s.mu.Unlock()

	if user != nil && token != "" {
		if err := s.registry.DeleteToken(ctx, user.UID, token); err != nil {
			return errors.Wrap(err, "failed to remove push token")
		}
	}

	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()

	return nil
}

// State returns the current controller state.
func (s *subscriptionService) State() usecase.SubscriptionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := usecase.SubscriptionState{
		Subscribed: s.subscribed,
		HasToken:   s.currentToken != "",
	}
	if s.currentUser != nil {
		state.UserID = s.currentUser.UID
	}

	return state
}
