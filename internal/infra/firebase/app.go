// Package firebase builds the Firebase app shared by the Firestore store and the identity provider.
package firebase

import (
	"context"
	"sync"

	"devicestore/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp initializes a Firebase app from cfg.Firebase. Without a credentials
// path the application default credentials are used.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)

	if cfg.Firebase != nil {
		if cfg.Firebase.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// AppProvider creates the Firebase app on first use so deployments that use
// neither Firestore nor Firebase Auth never need credentials.
type AppProvider struct {
	ctx  context.Context
	cfg  *config.Config
	once sync.Once
	app  *firebase.App
	err  error
}

// NewAppProvider returns a lazy Firebase app provider.
func NewAppProvider(ctx context.Context, cfg *config.Config) *AppProvider {
	return &AppProvider{ctx: ctx, cfg: cfg}
}

// App returns the shared Firebase app, creating it on the first call.
func (p *AppProvider) App() (*firebase.App, error) {
	p.once.Do(func() {
		p.app, p.err = NewApp(p.ctx, p.cfg)
	})

	return p.app, p.err
}
