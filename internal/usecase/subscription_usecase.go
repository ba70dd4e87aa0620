package usecase

import (
	"context"
)

// SubscriptionState is a point-in-time view of the controller.
type SubscriptionState struct {
	Subscribed bool   `json:"subscribed"`
	UserID     string `json:"user_id,omitempty"`
	HasToken   bool   `json:"has_token"`
}

// SubscriptionUsecase keeps this installation's push token registered for the signed-in user.
type SubscriptionUsecase interface {
	// Subscribe requests permission, registers the current token and starts
	// tracking auth and token changes. Calling it again while subscribed is a no-op.
	Subscribe(ctx context.Context) error

	// Unsubscribe stops tracking. Stored devices are left untouched.
	Unsubscribe(ctx context.Context) error

	// SignOut removes this device's entry for the cached user and forgets the user.
	SignOut(ctx context.Context) error

	// State returns the current controller state.
	State() SubscriptionState
}
