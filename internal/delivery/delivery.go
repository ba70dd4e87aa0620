// Package delivery defines the entry points that drive the application.
package delivery

import "context"

// Delivery serves requests until ctx is done or the server is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
